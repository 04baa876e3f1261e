package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterkuimelis/grinder/internal/game"
	grindernet "github.com/peterkuimelis/grinder/internal/net"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	RunID  string                 `json:"run_id"`
	Deck   string                 `json:"deck,omitempty"`
	Card   *grindernet.CardView   `json:"card,omitempty"`
	Events []grindernet.EventView `json:"events"`
	Report *grindernet.ReportView `json:"report,omitempty"`
	Over   bool                   `json:"over"`
	Result string                 `json:"result,omitempty"`
}

// RunSession holds the state of a single MCP run.
type RunSession struct {
	*grindernet.Session
	deck string
}

// RunOptions configures a new run session.
type RunOptions struct {
	Deck         int   // 1-indexed deck number in the decks file
	Seed         int64 // 0 for random
	NoShuffle    bool
	StopAtPayoff bool
}

// NewRunSession loads the deck and starts a run: the library is shuffled
// and the commander examined before it returns.
func NewRunSession(decksFile string, opts RunOptions) (*RunSession, *ToolResponse, error) {
	lib, err := game.DeckByNumber(decksFile, opts.Deck)
	if err != nil {
		return nil, nil, fmt.Errorf("load deck: %w", err)
	}

	sess := &RunSession{
		Session: grindernet.NewSession(game.RunConfig{
			Library:      lib,
			Seed:         opts.Seed,
			NoShuffle:    opts.NoShuffle,
			StopAtPayoff: opts.StopAtPayoff,
		}),
		deck: lib.Name,
	}

	resp, err := sess.respond(sess.Start())
	if err != nil {
		return nil, nil, err
	}
	return sess, resp, nil
}

// respond converts a session reply into a ToolResponse.
func (s *RunSession) respond(msg grindernet.ServerMessage) (*ToolResponse, error) {
	if msg.Type == grindernet.MsgError {
		return nil, errors.New(msg.Error)
	}

	resp := &ToolResponse{
		RunID:  s.ID.String(),
		Deck:   s.deck,
		Card:   msg.Card,
		Events: msg.Events,
		Report: msg.Report,
		Over:   msg.Type == grindernet.MsgRunOver,
		Result: msg.Result,
	}

	// Ensure events is never null in JSON
	if resp.Events == nil {
		resp.Events = []grindernet.EventView{}
	}
	return resp, nil
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
