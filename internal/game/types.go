package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterkuimelis/grinder/internal/combo"
)

var (
	ErrUnknownCard     = errors.New("unknown card")
	ErrUnknownCardType = errors.New("unknown card type")
	ErrDeckNotFound    = errors.New("deck not found")
)

// --- Enums ---

type CardType int

const (
	CardTypeArtifact CardType = iota
	CardTypeCreature
	CardTypeEnchantment
	CardTypeInstant
	CardTypeLand
	CardTypeSorcery
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeArtifact:
		return "Artifact"
	case CardTypeCreature:
		return "Creature"
	case CardTypeEnchantment:
		return "Enchantment"
	case CardTypeInstant:
		return "Instant"
	case CardTypeLand:
		return "Land"
	case CardTypeSorcery:
		return "Sorcery"
	default:
		return "Unknown"
	}
}

// ParseCardType returns the card type with the given name (case-insensitive).
// An empty name defaults to Artifact.
func ParseCardType(name string) (CardType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CardTypeArtifact, nil
	}
	for ct := CardTypeArtifact; ct <= CardTypeSorcery; ct++ {
		if strings.EqualFold(ct.String(), name) {
			return ct, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCardType, name)
}

// --- Card ---

// Card is a named card carrying zero or more abilities. Name, role and type
// are display-only as far as the engine is concerned.
type Card struct {
	Name      string
	Role      string // e.g. "Commander", "Land", "Payoff"
	Type      CardType
	Abilities []*combo.Ability
}

func (c *Card) String() string {
	return c.Name
}

// DisplayString returns "name | type" for the event log.
func (c *Card) DisplayString() string {
	if c == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s | %s", c.Name, c.Type)
}

// Copy returns a card whose abilities are independent copies with new
// identities, so every copy in a deck activates on its own.
func (c *Card) Copy() *Card {
	cp := &Card{
		Name: c.Name,
		Role: c.Role,
		Type: c.Type,
	}
	for _, a := range c.Abilities {
		cp.Abilities = append(cp.Abilities, a.Copy())
	}
	return cp
}

// HasPayoff reports whether any of the card's abilities is a payoff.
func (c *Card) HasPayoff() bool {
	for _, a := range c.Abilities {
		if a.Payoff {
			return true
		}
	}
	return false
}
