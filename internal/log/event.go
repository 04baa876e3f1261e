package log

// EventType enumerates all observable run events.
type EventType int

const (
	EventShuffle EventType = iota
	EventDraw
	EventExamine
	EventActivate
	EventPayoff
	EventConverge
	EventStuck // run ended with abilities that never activated
	EventRunEnd
)

func (e EventType) String() string {
	switch e {
	case EventShuffle:
		return "Shuffle"
	case EventDraw:
		return "Draw"
	case EventExamine:
		return "Examine"
	case EventActivate:
		return "Activate"
	case EventPayoff:
		return "Payoff"
	case EventConverge:
		return "Converge"
	case EventStuck:
		return "Stuck"
	case EventRunEnd:
		return "RunEnd"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a run.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Step    int       // which draw step (0 = commander/setup)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Ability string    // ability name (if applicable)
	Details string    // human-readable detail string
}
