package game

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/peterkuimelis/grinder/internal/combo"
	"github.com/peterkuimelis/grinder/internal/log"
)

// RunConfig holds configuration for creating a new run.
type RunConfig struct {
	Library      *Library
	Logger       log.EventLogger
	Seed         int64 // RNG seed (0 for random)
	NoShuffle    bool  // skip library shuffle (for deterministic tests)
	StopAtPayoff bool  // end the run as soon as a payoff activates
}

// StepResult is the outcome of examining one card.
type StepResult struct {
	Card   *Card
	Report combo.Report
	Done   bool
}

// Run draws cards from a library one at a time and feeds their abilities to
// a combo engine. A Run is not safe for concurrent use.
type Run struct {
	Logger log.EventLogger

	engine  *combo.Engine
	library *Library
	hand    *Hand
	rng     *rand.Rand
	seed    int64
	owners  map[uuid.UUID]*Card

	noShuffle    bool
	stopAtPayoff bool

	step    int
	started bool
	over    bool
	result  string
}

// NewRun creates a run from the given config.
func NewRun(cfg RunConfig) *Run {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	lib := cfg.Library
	if lib == nil {
		lib = NewLibrary("")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}

	return &Run{
		Logger:       logger,
		engine:       combo.NewEngine(),
		library:      lib,
		hand:         &Hand{},
		rng:          rand.New(rand.NewSource(seed)),
		seed:         seed,
		owners:       make(map[uuid.UUID]*Card),
		noShuffle:    cfg.NoShuffle,
		stopAtPayoff: cfg.StopAtPayoff,
	}
}

// maxSeed bounds generated seeds so they survive a round trip through a
// JSON number (float64 in Go, Number in browsers).
const maxSeed = 1<<53 - 1

// newSeed generates a seed in [1, maxSeed] from crypto/rand, falling back to 1.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) & maxSeed)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Engine returns the run's combo engine.
func (r *Run) Engine() *combo.Engine { return r.engine }

// Hand returns the cards examined so far.
func (r *Run) Hand() *Hand { return r.hand }

// Library returns the remaining library.
func (r *Run) Library() *Library { return r.library }

// Seed returns the seed used for shuffling.
func (r *Run) Seed() int64 { return r.seed }

// Steps returns the number of cards drawn from the library.
func (r *Run) Steps() int { return r.step }

// Over reports whether the run has finished.
func (r *Run) Over() bool { return r.over }

// Result returns a human-readable summary once the run is over.
func (r *Run) Result() string { return r.result }

// PayoffReached reports whether the engine reached a payoff.
func (r *Run) PayoffReached() bool { return r.engine.PayoffReached() }

// CardFor returns the card an ability was examined from, or nil.
func (r *Run) CardFor(a *combo.Ability) *Card {
	return r.owners[a.ID]
}

// Start shuffles the library and examines the commander. Calling it again
// is a no-op.
func (r *Run) Start() StepResult {
	if r.started {
		return StepResult{Report: r.engine.Snapshot(), Done: r.over}
	}
	r.started = true

	if !r.noShuffle {
		r.library.Shuffle(r.rng)
		r.log(log.NewShuffleEvent(r.library.Name, r.library.Count()))
	}

	res := StepResult{Report: r.engine.Snapshot()}
	if c := r.library.Commander; c != nil {
		r.hand.AddCard(c)
		res.Card = c
		res.Report = r.examine(c)
	}
	if r.library.Count() == 0 || (r.stopAtPayoff && r.engine.PayoffReached()) {
		r.finish()
	}
	res.Done = r.over
	return res
}

// Step draws the next card, adds it to the hand and examines it.
func (r *Run) Step() StepResult {
	if !r.started {
		r.Start()
	}
	if r.over {
		return StepResult{Report: r.engine.Snapshot(), Done: true}
	}

	card := r.library.Draw()
	if card == nil {
		r.finish()
		return StepResult{Report: r.engine.Snapshot(), Done: true}
	}
	r.step++
	r.log(log.NewDrawEvent(r.step, card.Name, r.library.Count()))
	r.hand.AddCard(card)

	report := r.examine(card)
	if r.library.Count() == 0 || (r.stopAtPayoff && report.Payoff) {
		r.finish()
	}
	return StepResult{Card: card, Report: report, Done: r.over}
}

// RunToCompletion steps until the run is over. Returns whether payoff was reached.
func (r *Run) RunToCompletion(ctx context.Context) (bool, error) {
	r.Start()
	for !r.over {
		if err := ctx.Err(); err != nil {
			return r.engine.PayoffReached(), err
		}
		r.Step()
	}
	return r.engine.PayoffReached(), nil
}

// examine feeds a card's abilities to the engine and logs what activated.
func (r *Run) examine(card *Card) combo.Report {
	r.log(log.NewExamineEvent(r.step, card.Name, card.Type.String()))
	for _, a := range card.Abilities {
		if _, ok := r.owners[a.ID]; !ok {
			r.owners[a.ID] = card
		}
	}

	report := r.engine.ProcessCard(card.Abilities)
	for _, a := range report.Activated {
		owner := card.Name
		if c := r.owners[a.ID]; c != nil {
			owner = c.Name
		}
		r.log(log.NewActivateEvent(r.step, owner, a.Name, a.Produces.String()))
		if a.Payoff {
			r.log(log.NewPayoffEvent(r.step, owner, a.Name))
		}
	}
	if report.Passes > 0 {
		r.log(log.NewConvergeEvent(r.step, report.Passes, report.Active.String()))
	}
	return report
}

// finish ends the run, logging every ability that never activated.
func (r *Run) finish() {
	if r.over {
		return
	}
	r.over = true

	active := r.engine.Active()
	for _, a := range r.engine.Catalog().Disabled() {
		r.log(log.NewStuckEvent(r.step, a.Name, a.Requires.Without(active).String()))
	}

	if r.engine.PayoffReached() {
		r.result = fmt.Sprintf("Payoff reached after %d draw(s), active %s", r.step, active)
	} else {
		r.result = fmt.Sprintf("No payoff after %d draw(s), active %s", r.step, active)
	}
	r.log(log.NewRunEndEvent(r.step, r.result))
}

func (r *Run) log(event log.GameEvent) {
	r.Logger.Log(event)
}
