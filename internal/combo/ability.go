package combo

import (
	"fmt"

	"github.com/google/uuid"
)

// Ability maps a set of required pieces to a set of produced pieces.
//
// Identity is the ID assigned at construction, not the content: two copies
// of the same card carry abilities with equal pieces but different IDs, and
// each activates on its own.
type Ability struct {
	ID       uuid.UUID
	Name     string
	Requires PieceSet
	Produces PieceSet
	Payoff   bool // activation signals the win condition

	enabled bool
}

// NewAbility creates a disabled, non-payoff ability with a fresh ID.
func NewAbility(name string, requires, produces PieceSet) *Ability {
	return &Ability{
		ID:       uuid.New(),
		Name:     name,
		Requires: requires,
		Produces: produces,
	}
}

// AsPayoff marks the ability as a payoff and returns it.
func (a *Ability) AsPayoff() *Ability {
	a.Payoff = true
	return a
}

// AsStarting marks the ability as enabled from the start (e.g. a commander's
// static ability). Its effect is applied as soon as an engine takes it in.
func (a *Ability) AsStarting() *Ability {
	a.enabled = true
	return a
}

// Enabled reports whether the ability has been activated.
func (a *Ability) Enabled() bool {
	return a.enabled
}

// Copy returns an independent ability with a new ID and the same pieces
// and flags as a has right now.
func (a *Ability) Copy() *Ability {
	return &Ability{
		ID:       uuid.New(),
		Name:     a.Name,
		Requires: a.Requires,
		Produces: a.Produces,
		Payoff:   a.Payoff,
		enabled:  a.enabled,
	}
}

func (a *Ability) String() string {
	if a == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s %s -> %s", a.Name, a.Requires, a.Produces)
}

// enable flips the ability on. It never flips back.
func (a *Ability) enable() {
	a.enabled = true
}
