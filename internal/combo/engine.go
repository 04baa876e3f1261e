// Package combo implements combo-piece propagation: abilities become active
// once all of their required pieces are active, and active abilities add
// their produced pieces, which may unlock further abilities.
//
// An Engine is owned by a single run and is not safe for concurrent use.
package combo

// Report describes the engine state after an intake or convergence call.
type Report struct {
	Active    PieceSet   // snapshot of the active piece set
	Activated []*Ability // abilities enabled during the call, in activation order
	Passes    int        // passes that activated at least one ability
	Payoff    bool       // whether a payoff ability has ever activated
}

// Engine owns the active piece set, the ability catalog and the payoff flag
// for one run.
type Engine struct {
	active  PieceSet
	catalog *Catalog
	payoff  bool
}

// NewEngine returns an engine with no active pieces and an empty catalog.
func NewEngine() *Engine {
	return &Engine{catalog: NewCatalog()}
}

// Active returns a snapshot of the active piece set.
func (e *Engine) Active() PieceSet {
	return e.active
}

// PayoffReached reports whether any payoff ability has activated.
func (e *Engine) PayoffReached() bool {
	return e.payoff
}

// Catalog returns the abilities seen so far.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Snapshot reports the current state without activating anything.
func (e *Engine) Snapshot() Report {
	return Report{Active: e.active, Payoff: e.payoff}
}

// IntakeAbilities adds every ability not already in the catalog. Abilities
// that are already enabled apply their effect immediately. Returns whether
// any ability was added, i.e. whether convergence needs to run.
func (e *Engine) IntakeAbilities(abilities []*Ability) bool {
	added, _ := e.intake(abilities)
	return added
}

func (e *Engine) intake(abilities []*Ability) (bool, []*Ability) {
	added := false
	var seeded []*Ability
	for _, a := range abilities {
		if a == nil || !e.catalog.Add(a) {
			continue
		}
		added = true
		if a.Enabled() {
			e.apply(a)
			seeded = append(seeded, a)
		}
	}
	return added, seeded
}

// Converge activates abilities until a full pass over the catalog activates
// nothing. Each pass checks prerequisites against the active set as it was
// when the pass started, so the outcome does not depend on catalog order.
func (e *Engine) Converge() Report {
	var activated []*Ability
	passes := fixpoint(func() bool {
		ready := readyAbilities(e.catalog.abilities, e.active)
		for _, a := range ready {
			a.enable()
			e.apply(a)
		}
		activated = append(activated, ready...)
		return len(ready) > 0
	})
	return Report{
		Active:    e.active,
		Activated: activated,
		Passes:    passes,
		Payoff:    e.payoff,
	}
}

// ProcessCard takes in a card's abilities and converges if any were new.
func (e *Engine) ProcessCard(abilities []*Ability) Report {
	added, seeded := e.intake(abilities)
	if !added {
		return e.Snapshot()
	}
	report := e.Converge()
	report.Activated = append(seeded, report.Activated...)
	return report
}

// apply unions the ability's results into the active set and records payoff.
func (e *Engine) apply(a *Ability) {
	e.active = e.active.Union(a.Produces)
	if a.Payoff {
		e.payoff = true
	}
}

// readyAbilities returns the disabled abilities whose requirements are all
// in snapshot. It does not modify anything.
func readyAbilities(abilities []*Ability, snapshot PieceSet) []*Ability {
	var ready []*Ability
	for _, a := range abilities {
		if !a.Enabled() && snapshot.Contains(a.Requires) {
			ready = append(ready, a)
		}
	}
	return ready
}

// fixpoint calls step until it reports no progress and returns the number of
// calls that made progress.
func fixpoint(step func() bool) int {
	passes := 0
	for step() {
		passes++
	}
	return passes
}
