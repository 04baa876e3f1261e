package game

import "github.com/peterkuimelis/grinder/internal/combo"

func pieces(ps ...combo.Piece) combo.PieceSet {
	return combo.NewPieceSet(ps...)
}

// Ashaya — Commander Creature. Static: creatures you control are lands.
func Ashaya() *Card {
	return &Card{
		Name: "Ashaya, Soul of the Wild",
		Role: "Commander",
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility("Ashaya Ability", pieces(), pieces(combo.CreaturesAreLands)).AsStarting(),
		},
	}
}

// Forest — Land. With infinite land untaps, taps for infinite mana.
func Forest() *Card {
	return &Card{
		Name: "Forest",
		Role: "Land",
		Type: CardTypeLand,
		Abilities: []*combo.Ability{
			combo.NewAbility("Forest Ability", pieces(combo.InfiniteLandUntaps), pieces(combo.InfiniteMana)),
		},
	}
}

// LeyWeaver — Creature. Untaps lands; once creatures are lands it untaps itself forever.
func LeyWeaver() *Card {
	return &Card{
		Name: "Ley Weaver",
		Role: "Untap",
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility("Ley Weaver Ability", pieces(combo.CreaturesAreLands), pieces(combo.InfiniteLandUntaps)),
		},
	}
}

// Nylea — Creature payoff. Infinite mana into infinite damage.
func Nylea() *Card {
	return &Card{
		Name: "Nylea, Keen-Eyed",
		Role: "Payoff",
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility("Nylea Ability", pieces(combo.InfiniteMana), pieces(combo.InfiniteDamage)).AsPayoff(),
		},
	}
}

// FreedFromTheReal — Enchantment. Spends mana to untap a creature repeatedly.
func FreedFromTheReal() *Card {
	return &Card{
		Name: "Freed from the Real",
		Role: "Untap",
		Type: CardTypeEnchantment,
		Abilities: []*combo.Ability{
			combo.NewAbility("Freed Ability", pieces(combo.InfiniteMana), pieces(combo.InfiniteCreatureUntaps)),
		},
	}
}

// QuirionRanger — Creature. Returns a land-creature to untap a creature.
func QuirionRanger() *Card {
	return &Card{
		Name: "Quirion Ranger",
		Role: "Untap",
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility("Quirion Ranger Ability",
				pieces(combo.CreaturesAreLands, combo.InfiniteCreatureUntaps),
				pieces(combo.InfiniteLandUntaps)),
		},
	}
}

// TemurSabertooth — Creature. Bounces land-creatures to untap them.
func TemurSabertooth() *Card {
	return &Card{
		Name: "Temur Sabertooth",
		Role: "Untap",
		Type: CardTypeCreature,
		Abilities: []*combo.Ability{
			combo.NewAbility("Sabertooth Ability",
				pieces(combo.InfiniteMana, combo.CreaturesAreLands),
				pieces(combo.InfiniteLandUntaps, combo.InfiniteCreatureUntaps)),
		},
	}
}

// AggravatedAssault — Enchantment payoff. Infinite combat phases.
func AggravatedAssault() *Card {
	return &Card{
		Name: "Aggravated Assault",
		Role: "Payoff",
		Type: CardTypeEnchantment,
		Abilities: []*combo.Ability{
			combo.NewAbility("Aggravated Assault Ability",
				pieces(combo.InfiniteMana, combo.InfiniteCreatureUntaps),
				pieces(combo.InfiniteDamage)).AsPayoff(),
		},
	}
}

// WalkingBallista — Artifact payoff. Pumps and pings with infinite mana.
func WalkingBallista() *Card {
	return &Card{
		Name: "Walking Ballista",
		Role: "Payoff",
		Type: CardTypeArtifact,
		Abilities: []*combo.Ability{
			combo.NewAbility("Walking Ballista Ability", pieces(combo.InfiniteMana), pieces(combo.InfiniteDamage)).AsPayoff(),
		},
	}
}

// Mountain — Land with no combo abilities.
func Mountain() *Card {
	return &Card{Name: "Mountain", Role: "Land", Type: CardTypeLand}
}

// LlanowarElves — Creature with no combo abilities.
func LlanowarElves() *Card {
	return &Card{Name: "Llanowar Elves", Role: "Ramp", Type: CardTypeCreature}
}

// GreenLibrary builds the reference Green deck: Ashaya as commander, five
// Forests, Ley Weaver and Nylea.
func GreenLibrary() *Library {
	lib := NewLibrary("Green")
	lib.Commander = Ashaya()
	forest := Forest()
	lib.AddCard(forest)
	for i := 0; i < 4; i++ {
		lib.AddCard(forest.Copy())
	}
	lib.AddCard(LeyWeaver())
	lib.AddCard(Nylea())
	return lib
}
