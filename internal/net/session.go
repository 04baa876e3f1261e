package net

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/peterkuimelis/grinder/internal/combo"
	"github.com/peterkuimelis/grinder/internal/game"
	"github.com/peterkuimelis/grinder/internal/log"
)

// eventSource is a logger whose events can be read back incrementally.
// Both MemoryLogger and TextLogger satisfy it.
type eventSource interface {
	log.EventLogger
	EventsSince(seq int) []log.GameEvent
}

// Session drives one run on behalf of a remote client (TCP, WebSocket or
// MCP). Every reply carries the events logged since the previous reply.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	run     *game.Run
	events  eventSource
	lastSeq int
}

// NewSession creates a session around a new run. If cfg.Logger cannot be
// read back, it is replaced with a MemoryLogger.
func NewSession(cfg game.RunConfig) *Session {
	src, ok := cfg.Logger.(eventSource)
	if !ok {
		src = log.NewMemoryLogger()
	}
	cfg.Logger = src
	return &Session{
		ID:     uuid.New(),
		run:    game.NewRun(cfg),
		events: src,
	}
}

// Over reports whether the run has finished.
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run.Over()
}

// Start shuffles the library and examines the commander.
func (s *Session) Start() ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.run.Start()
	return s.message(res.Card, res.Report, true)
}

// Draw examines the next card.
func (s *Session) Draw() ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.run.Step()
	return s.message(res.Card, res.Report, true)
}

// DrawAll draws until the run is over. The report lists every ability
// activated along the way.
func (s *Session) DrawAll(ctx context.Context) ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.run.Start()
	var activated []*combo.Ability
	passes := 0
	for !s.run.Over() {
		if err := ctx.Err(); err != nil {
			return ErrorMessage(fmt.Errorf("draw all: %w", err))
		}
		res := s.run.Step()
		activated = append(activated, res.Report.Activated...)
		passes += res.Report.Passes
	}

	report := s.run.Engine().Snapshot()
	report.Activated = activated
	report.Passes = passes
	return s.message(nil, report, true)
}

// State returns the current report without consuming pending events.
func (s *Session) State() ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message(nil, s.run.Engine().Snapshot(), false)
}

// Handle dispatches one client request. quit is true when the client asked
// to end the session.
func (s *Session) Handle(ctx context.Context, msg ClientMessage) (reply ServerMessage, quit bool) {
	switch msg.Type {
	case MsgDraw:
		return s.Draw(), false
	case MsgDrawAll:
		return s.DrawAll(ctx), false
	case MsgState:
		return s.State(), false
	case MsgQuit:
		return ServerMessage{}, true
	default:
		return ErrorMessage(fmt.Errorf("unknown message type %q", msg.Type)), false
	}
}

func (s *Session) message(card *game.Card, report combo.Report, drain bool) ServerMessage {
	msg := ServerMessage{
		Type:   MsgReport,
		RunID:  s.ID.String(),
		Report: BuildReportView(s.run, report),
	}
	if card != nil {
		cv := BuildCardView(s.run, card)
		msg.Card = &cv
	}
	if drain {
		for _, e := range s.events.EventsSince(s.lastSeq) {
			msg.Events = append(msg.Events, BuildEventView(e))
			s.lastSeq = e.Seq
		}
	}
	if s.run.Over() {
		msg.Type = MsgRunOver
		msg.Result = s.run.Result()
	}
	return msg
}

// ErrorMessage wraps err in an "error" message.
func ErrorMessage(err error) ServerMessage {
	return ServerMessage{Type: MsgError, Error: err.Error()}
}

// BuildReportView converts an activation report and the run around it into
// its wire form.
func BuildReportView(run *game.Run, report combo.Report) *ReportView {
	rv := &ReportView{
		Active:       append([]string{}, report.Active.Names()...),
		Passes:       report.Passes,
		Payoff:       report.Payoff,
		Steps:        run.Steps(),
		Hand:         append([]string{}, run.Hand().Names()...),
		LibraryCount: run.Library().Count(),
		Abilities:    []AbilityView{},
		Seed:         run.Seed(),
		Over:         run.Over(),
	}
	for _, a := range report.Activated {
		rv.Activated = append(rv.Activated, BuildAbilityView(run, a))
	}
	for _, a := range run.Engine().Catalog().Abilities() {
		rv.Abilities = append(rv.Abilities, BuildAbilityView(run, a))
	}
	return rv
}

// BuildAbilityView describes an ability. run may be nil for abilities that
// have not been examined.
func BuildAbilityView(run *game.Run, a *combo.Ability) AbilityView {
	av := AbilityView{
		ID:       a.ID.String(),
		Name:     a.Name,
		Requires: a.Requires.Names(),
		Produces: a.Produces.Names(),
		Payoff:   a.Payoff,
		Enabled:  a.Enabled(),
	}
	if run != nil {
		if c := run.CardFor(a); c != nil {
			av.Card = c.Name
		}
	}
	return av
}

// BuildCardView describes a card. run may be nil.
func BuildCardView(run *game.Run, c *game.Card) CardView {
	cv := CardView{
		Name: c.Name,
		Role: c.Role,
		Type: c.Type.String(),
	}
	for _, a := range c.Abilities {
		cv.Abilities = append(cv.Abilities, BuildAbilityView(run, a))
	}
	return cv
}

// BuildEventView converts a logged event.
func BuildEventView(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Step:    e.Step,
		Type:    e.Type.String(),
		Card:    e.Card,
		Ability: e.Ability,
		Details: e.Details,
	}
}
