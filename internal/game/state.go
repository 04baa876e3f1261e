package game

import "math/rand"

// Library is an ordered pile of cards plus an optional commander that starts
// in hand. The top of the library is the first element.
type Library struct {
	Name      string
	Commander *Card
	Cards     []*Card
}

// NewLibrary creates an empty library.
func NewLibrary(name string) *Library {
	return &Library{Name: name}
}

// Count returns the number of cards remaining in the library.
func (l *Library) Count() int {
	return len(l.Cards)
}

// AddCard puts a card at the bottom of the library.
func (l *Library) AddCard(card *Card) {
	l.Cards = append(l.Cards, card)
}

// Draw removes and returns the top card, or nil if the library is empty.
func (l *Library) Draw() *Card {
	if len(l.Cards) == 0 {
		return nil
	}
	card := l.Cards[0]
	l.Cards = l.Cards[1:]
	return card
}

// Shuffle randomizes the library order using rng.
func (l *Library) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(l.Cards), func(i, j int) {
		l.Cards[i], l.Cards[j] = l.Cards[j], l.Cards[i]
	})
}

// ReturnCards moves every card in hand to the bottom of the library.
func (l *Library) ReturnCards(h *Hand) {
	l.Cards = append(l.Cards, h.Cards...)
	h.Cards = nil
}

// Names returns the card names in library order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Cards))
	for _, c := range l.Cards {
		names = append(names, c.Name)
	}
	return names
}

// Hand holds the cards drawn so far in a run.
type Hand struct {
	Cards []*Card
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(card *Card) {
	h.Cards = append(h.Cards, card)
}

// Count returns the number of cards in hand.
func (h *Hand) Count() int {
	return len(h.Cards)
}

// Names returns the card names in the order they were added.
func (h *Hand) Names() []string {
	names := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		names = append(names, c.Name)
	}
	return names
}
