package net

// Message types for the JSON protocol over TCP. The same envelopes are sent
// over WebSocket by the web UI and returned by the MCP tools.

// --- Server → Client messages ---

// Server message types.
const (
	MsgReport  = "report"
	MsgRunOver = "run_over"
	MsgError   = "error"
)

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type  string `json:"type"`
	RunID string `json:"run_id,omitempty"`

	// For "report" and "run_over"
	Card   *CardView   `json:"card,omitempty"` // card examined by this request, if any
	Report *ReportView `json:"report,omitempty"`
	Events []EventView `json:"events,omitempty"`

	// For "run_over"
	Result string `json:"result,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a simplified run event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Step    int    `json:"step"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Ability string `json:"ability,omitempty"`
	Details string `json:"details"`
}

// AbilityView describes one ability.
type AbilityView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Card     string   `json:"card,omitempty"`
	Requires []string `json:"requires,omitempty"`
	Produces []string `json:"produces,omitempty"`
	Payoff   bool     `json:"payoff,omitempty"`
	Enabled  bool     `json:"enabled"`
}

// CardView describes a card and its abilities.
type CardView struct {
	Name      string        `json:"name"`
	Role      string        `json:"role,omitempty"`
	Type      string        `json:"type"`
	Abilities []AbilityView `json:"abilities,omitempty"`
}

// ReportView is the activation report plus the surrounding run state.
type ReportView struct {
	Active    []string      `json:"active"`
	Activated []AbilityView `json:"activated,omitempty"`
	Passes    int           `json:"passes"`
	Payoff    bool          `json:"payoff"`

	Steps        int           `json:"steps"`
	Hand         []string      `json:"hand"`
	LibraryCount int           `json:"library_count"`
	Abilities    []AbilityView `json:"abilities"` // whole catalog in intake order
	Seed         int64         `json:"seed"`
	Over         bool          `json:"over"`
}

// --- Client → Server messages ---

// Client message types.
const (
	MsgJoin    = "join"
	MsgStart   = "start"
	MsgDraw    = "draw"
	MsgDrawAll = "draw_all"
	MsgState   = "state"
	MsgQuit    = "quit"
)

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "join"/"start" (initial handshake)
	DeckNumber int   `json:"deck_number,omitempty"`
	Seed       int64 `json:"seed,omitempty"`

	// For "start" only; TCP runs use the host's settings
	NoShuffle    bool `json:"no_shuffle,omitempty"`
	StopAtPayoff bool `json:"stop_at_payoff,omitempty"`
}
