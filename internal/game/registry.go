package game

import (
	"fmt"
	"sort"
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Ashaya, Soul of the Wild": Ashaya,
	"Forest":                   Forest,
	"Ley Weaver":               LeyWeaver,
	"Nylea, Keen-Eyed":         Nylea,
	"Freed from the Real":      FreedFromTheReal,
	"Quirion Ranger":           QuirionRanger,
	"Temur Sabertooth":         TemurSabertooth,
	"Aggravated Assault":       AggravatedAssault,
	"Walking Ballista":         WalkingBallista,
	"Mountain":                 Mountain,
	"Llanowar Elves":           LlanowarElves,
}

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}

// RegistryNames returns the registered card names in sorted order.
func RegistryNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
