package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging run events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// EventsSince returns the events with a sequence number greater than seq.
func (l *MemoryLogger) EventsSince(seq int) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Seq > seq {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	// Pad type to 9 chars for alignment
	for len(kind) < 9 {
		kind += " "
	}
	return fmt.Sprintf("#%-3d %s| %s", e.Step, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewShuffleEvent(library string, cards int) GameEvent {
	return GameEvent{
		Type:    EventShuffle,
		Details: fmt.Sprintf("Library %s shuffled (%d cards)", library, cards),
	}
}

func NewDrawEvent(step int, cardName string, remaining int) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("Draws %s (%d left in library)", cardName, remaining),
	}
}

func NewExamineEvent(step int, cardName, cardType string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventExamine,
		Card:    cardName,
		Details: fmt.Sprintf("Examining card: %s | %s", cardName, cardType),
	}
}

func NewActivateEvent(step int, cardName, abilityName, produces string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventActivate,
		Card:    cardName,
		Ability: abilityName,
		Details: fmt.Sprintf("%s activated! → %s", abilityName, produces),
	}
}

func NewPayoffEvent(step int, cardName, abilityName string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventPayoff,
		Card:    cardName,
		Ability: abilityName,
		Details: fmt.Sprintf("Success! Payoff ability %s has been activated!", abilityName),
	}
}

func NewConvergeEvent(step int, passes int, active string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventConverge,
		Details: fmt.Sprintf("Converged after %d pass(es), active %s", passes, active),
	}
}

func NewStuckEvent(step int, abilityName, missing string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventStuck,
		Ability: abilityName,
		Details: fmt.Sprintf("%s never activated (missing %s)", abilityName, missing),
	}
}

func NewRunEndEvent(step int, result string) GameEvent {
	return GameEvent{
		Step:    step,
		Type:    EventRunEnd,
		Details: result,
	}
}
