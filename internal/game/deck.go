package game

import (
	"fmt"
	"os"

	"github.com/peterkuimelis/grinder/internal/combo"
	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Cards []CardDef   `yaml:"cards"`
	Decks []DeckEntry `yaml:"decks"`
}

// CardDef defines a custom card. A definition overrides a registry card
// with the same name.
type CardDef struct {
	Name      string       `yaml:"name"`
	Role      string       `yaml:"role"`
	Type      string       `yaml:"type"`
	Abilities []AbilityDef `yaml:"abilities"`
}

// AbilityDef defines one ability of a custom card. Pieces are given by name.
type AbilityDef struct {
	Name     string   `yaml:"name"`
	Requires []string `yaml:"requires"`
	Produces []string `yaml:"produces"`
	Payoff   bool     `yaml:"payoff"`
	Starting bool     `yaml:"starting"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name      string      `yaml:"name"`
	Commander string      `yaml:"commander"`
	Cards     []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckData parses YAML deck data.
func ParseDeckData(data []byte) (DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DeckFile{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	return df, nil
}

// ReadDeckFile reads and parses a YAML deck file.
func ReadDeckFile(path string) (DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckFile{}, err
	}
	return ParseDeckData(data)
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → library.
func ParseDeckFile(path string) (map[string]*Library, error) {
	df, err := ReadDeckFile(path)
	if err != nil {
		return nil, err
	}

	libs := make(map[string]*Library)
	for _, deck := range df.Decks {
		lib, err := df.Build(deck)
		if err != nil {
			return nil, err
		}
		libs[deck.Name] = lib
	}
	return libs, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (*Library, error) {
	df, err := ReadDeckFile(path)
	if err != nil {
		return nil, err
	}
	return df.Library(n)
}

// Library builds the Nth deck (1-indexed).
func (df DeckFile) Library(n int) (*Library, error) {
	if n < 1 || n > len(df.Decks) {
		return nil, fmt.Errorf("%w: deck %d (have %d decks)", ErrDeckNotFound, n, len(df.Decks))
	}
	return df.Build(df.Decks[n-1])
}

// Build creates a library for the given deck entry. Every counted copy after
// the first is made with Card.Copy, so each copy has its own abilities.
func (df DeckFile) Build(deck DeckEntry) (*Library, error) {
	lib := NewLibrary(deck.Name)
	if deck.Commander != "" {
		commander, err := df.NewCard(deck.Commander)
		if err != nil {
			return nil, fmt.Errorf("deck %q commander: %w", deck.Name, err)
		}
		lib.Commander = commander
	}

	for _, entry := range deck.Cards {
		if entry.Count <= 0 {
			continue
		}
		proto, err := df.NewCard(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
		}
		lib.AddCard(proto)
		for i := 1; i < entry.Count; i++ {
			lib.AddCard(proto.Copy())
		}
	}
	return lib, nil
}

// NewCard returns a fresh card by name, preferring custom definitions over
// the registry.
func (df DeckFile) NewCard(name string) (*Card, error) {
	for _, def := range df.Cards {
		if def.Name == name {
			return def.Card()
		}
	}
	if ctor, ok := CardRegistry[name]; ok {
		return ctor(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}

// Card builds a card from its definition.
func (def CardDef) Card() (*Card, error) {
	ct, err := ParseCardType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("card %q: %w", def.Name, err)
	}

	card := &Card{Name: def.Name, Role: def.Role, Type: ct}
	for _, ad := range def.Abilities {
		requires, err := parsePieces(ad.Requires)
		if err != nil {
			return nil, fmt.Errorf("card %q ability %q requires: %w", def.Name, ad.Name, err)
		}
		produces, err := parsePieces(ad.Produces)
		if err != nil {
			return nil, fmt.Errorf("card %q ability %q produces: %w", def.Name, ad.Name, err)
		}

		a := combo.NewAbility(ad.Name, requires, produces)
		if ad.Payoff {
			a.AsPayoff()
		}
		if ad.Starting {
			a.AsStarting()
		}
		card.Abilities = append(card.Abilities, a)
	}
	return card, nil
}

func parsePieces(names []string) (combo.PieceSet, error) {
	var set combo.PieceSet
	for _, name := range names {
		p, err := combo.ParsePiece(name)
		if err != nil {
			return 0, err
		}
		set = set.Add(p)
	}
	return set, nil
}
