package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterkuimelis/grinder/internal/combo"
)

const testDecks = `
cards:
  - name: Forest
    role: Land
    type: land
    abilities:
      - name: Custom Forest Ability
        requires: [InfiniteLandUntaps]
        produces: [InfiniteMana]
  - name: Win Button
    type: Artifact
    abilities:
      - name: Press
        produces: [InfiniteDamage]
        payoff: true
        starting: true
decks:
  - name: Green
    commander: Ashaya, Soul of the Wild
    cards:
      - name: Forest
        count: 3
      - name: Ley Weaver
        count: 1
      - name: Nylea, Keen-Eyed
        count: 1
  - name: Button
    cards:
      - name: Win Button
        count: 1
      - name: Mountain
        count: 0
`

func writeDecks(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDeckByNumber(t *testing.T) {
	path := writeDecks(t, testDecks)

	lib, err := DeckByNumber(path, 1)
	if err != nil {
		t.Fatalf("DeckByNumber: %v", err)
	}
	if lib.Name != "Green" || lib.Count() != 5 {
		t.Fatalf("Unexpected library %s with %d cards", lib.Name, lib.Count())
	}
	if lib.Commander == nil || lib.Commander.Name != "Ashaya, Soul of the Wild" {
		t.Fatalf("Unexpected commander %v", lib.Commander)
	}

	// Custom definition overrides the registry Forest.
	if got := lib.Cards[0].Abilities[0].Name; got != "Custom Forest Ability" {
		t.Errorf("Expected custom Forest ability, got %q", got)
	}
	if lib.Cards[0].Type != CardTypeLand {
		t.Errorf("Expected Land type, got %s", lib.Cards[0].Type)
	}

	// Every Forest copy has its own ability identity.
	seen := make(map[string]bool)
	for _, c := range lib.Cards[:3] {
		id := c.Abilities[0].ID.String()
		if seen[id] {
			t.Errorf("Forest copies share ability ID %s", id)
		}
		seen[id] = true
	}

	button, err := DeckByNumber(path, 2)
	if err != nil {
		t.Fatalf("DeckByNumber(2): %v", err)
	}
	if button.Count() != 1 || button.Commander != nil {
		t.Errorf("Zero-count entries should be skipped, got %v", button.Names())
	}
	press := button.Cards[0].Abilities[0]
	if !press.Payoff || !press.Enabled() {
		t.Errorf("Expected starting payoff ability, got payoff=%v enabled=%v", press.Payoff, press.Enabled())
	}

	if _, err := DeckByNumber(path, 3); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("Expected ErrDeckNotFound, got %v", err)
	}
	if _, err := DeckByNumber(filepath.Join(t.TempDir(), "missing.yaml"), 1); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseDeckFile(t *testing.T) {
	libs, err := ParseDeckFile(writeDecks(t, testDecks))
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}
	if len(libs) != 2 || libs["Green"] == nil || libs["Button"] == nil {
		t.Errorf("Unexpected libraries %v", libs)
	}
}

func TestDeckFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown card",
			yaml:    "decks:\n  - name: Bad\n    cards:\n      - {name: Black Lotus, count: 1}\n",
			wantErr: ErrUnknownCard,
		},
		{
			name:    "unknown commander",
			yaml:    "decks:\n  - name: Bad\n    commander: Nobody\n",
			wantErr: ErrUnknownCard,
		},
		{
			name: "unknown piece",
			yaml: "cards:\n  - name: X\n    abilities:\n      - {name: A, requires: [InfiniteTurns]}\n" +
				"decks:\n  - name: Bad\n    cards:\n      - {name: X, count: 1}\n",
			wantErr: combo.ErrUnknownPiece,
		},
		{
			name: "unknown type",
			yaml: "cards:\n  - {name: X, type: Planeswalker}\n" +
				"decks:\n  - name: Bad\n    cards:\n      - {name: X, count: 1}\n",
			wantErr: ErrUnknownCardType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := ParseDeckData([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseDeckData: %v", err)
			}
			if _, err := df.Library(1); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := ParseDeckData([]byte("decks: [")); err == nil {
		t.Error("Expected YAML syntax error")
	}
}

func TestRegistryCardsBuild(t *testing.T) {
	for _, name := range RegistryNames() {
		c := LookupCard(name)
		if c.Name != name {
			t.Errorf("Registry entry %q builds card named %q", name, c.Name)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected LookupCard to panic for unknown names")
		}
	}()
	LookupCard("Black Lotus")
}
