package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/grinder/internal/combo"
	"github.com/peterkuimelis/grinder/internal/log"
)

// --- Test card helpers ---

func comboCard(name string, requires, produces []combo.Piece) *Card {
	return &Card{
		Name: name,
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility(name+" Ability", combo.NewPieceSet(requires...), combo.NewPieceSet(produces...)),
		},
	}
}

func payoffCard(name string, requires ...combo.Piece) *Card {
	c := comboCard(name, requires, []combo.Piece{combo.InfiniteDamage})
	c.Abilities[0].AsPayoff()
	return c
}

func vanillaCard(name string) *Card {
	return &Card{Name: name, Type: CardTypeLand}
}

func makeLibrary(commander *Card, cards ...*Card) *Library {
	lib := NewLibrary("Test")
	lib.Commander = commander
	for _, c := range cards {
		lib.AddCard(c)
	}
	return lib
}

// runToCompletion runs a library in draw order and returns the run and logger.
func runToCompletion(t *testing.T, cfg RunConfig) (*Run, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	cfg.NoShuffle = true // deterministic tests

	run := NewRun(cfg)
	payoff, err := run.RunToCompletion(context.Background())
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Run error: %v", err)
	}

	t.Logf("Run result: payoff=%v (%s)", payoff, run.Result())
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))

	return run, logger
}
