package web

import (
	"sort"

	"github.com/peterkuimelis/grinder/internal/game"
	grindernet "github.com/peterkuimelis/grinder/internal/net"
)

// loadCards lists every card a deck can name: the decks file's own
// definitions plus the registry cards they do not override, sorted by name.
func loadCards(path string) ([]grindernet.CardView, error) {
	df, err := game.ReadDeckFile(path)
	if err != nil {
		return nil, err
	}

	cards := []grindernet.CardView{}
	custom := make(map[string]bool)
	for _, def := range df.Cards {
		if custom[def.Name] {
			continue
		}
		c, err := def.Card()
		if err != nil {
			return nil, err
		}
		cards = append(cards, grindernet.BuildCardView(nil, c))
		custom[def.Name] = true
	}
	for _, name := range game.RegistryNames() {
		if !custom[name] {
			cards = append(cards, grindernet.BuildCardView(nil, game.LookupCard(name)))
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
	return cards, nil
}

// loadDeckInfos lists the decks in a decks file with their unique card names.
func loadDeckInfos(path string) ([]DeckInfo, error) {
	df, err := game.ReadDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := []DeckInfo{}
	for i, d := range df.Decks {
		di := DeckInfo{
			Number:    i + 1,
			Name:      d.Name,
			Commander: d.Commander,
			Cards:     []string{},
		}
		// Unique card names for display
		seen := make(map[string]bool)
		for _, c := range d.Cards {
			if c.Count <= 0 {
				continue
			}
			di.Size += c.Count
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		decks = append(decks, di)
	}
	return decks, nil
}
