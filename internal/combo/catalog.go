package combo

import "github.com/google/uuid"

// Catalog is the set of distinct abilities an engine has seen, keyed by ID
// and kept in intake order.
type Catalog struct {
	abilities []*Ability
	index     map[uuid.UUID]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[uuid.UUID]int)}
}

// Contains reports whether an ability with the same ID is already known.
// A nil ability is never known.
func (c *Catalog) Contains(a *Ability) bool {
	if a == nil {
		return false
	}
	_, ok := c.index[a.ID]
	return ok
}

// Add inserts a unless it is nil or already known. Returns true if it was
// inserted.
func (c *Catalog) Add(a *Ability) bool {
	if a == nil || c.Contains(a) {
		return false
	}
	c.index[a.ID] = len(c.abilities)
	c.abilities = append(c.abilities, a)
	return true
}

// Len returns the number of known abilities.
func (c *Catalog) Len() int {
	return len(c.abilities)
}

// Abilities returns all known abilities in intake order.
func (c *Catalog) Abilities() []*Ability {
	result := make([]*Ability, len(c.abilities))
	copy(result, c.abilities)
	return result
}

// Enabled returns the activated abilities in intake order.
func (c *Catalog) Enabled() []*Ability {
	var result []*Ability
	for _, a := range c.abilities {
		if a.Enabled() {
			result = append(result, a)
		}
	}
	return result
}

// Disabled returns the abilities not yet activated, in intake order.
func (c *Catalog) Disabled() []*Ability {
	var result []*Ability
	for _, a := range c.abilities {
		if !a.Enabled() {
			result = append(result, a)
		}
	}
	return result
}
