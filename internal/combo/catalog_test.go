package combo

import "testing"

func TestCatalogAddDedupByIdentity(t *testing.T) {
	c := NewCatalog()
	a := NewAbility("Forest Ability", NewPieceSet(InfiniteLandUntaps), NewPieceSet(InfiniteMana))

	if c.Contains(a) {
		t.Fatal("Empty catalog should not contain anything")
	}
	if !c.Add(a) {
		t.Fatal("First Add should insert")
	}
	if c.Add(a) {
		t.Error("Second Add of the same ability should be a no-op")
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 ability, got %d", c.Len())
	}

	// A copy has identical content but its own identity.
	cp := a.Copy()
	if c.Contains(cp) {
		t.Error("Copy should not be considered already known")
	}
	if !c.Add(cp) {
		t.Error("Copy should be inserted")
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 abilities, got %d", c.Len())
	}
}

func TestCatalogIgnoresNil(t *testing.T) {
	c := NewCatalog()
	if c.Contains(nil) {
		t.Error("Catalog should not contain nil")
	}
	if c.Add(nil) {
		t.Error("Add(nil) should not insert")
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty catalog, got %d abilities", c.Len())
	}
}

func TestCatalogPartitions(t *testing.T) {
	c := NewCatalog()
	on := NewAbility("On", 0, NewPieceSet(InfiniteMana)).AsStarting()
	off := NewAbility("Off", NewPieceSet(InfiniteMana), 0)
	c.Add(off)
	c.Add(on)

	all := c.Abilities()
	if len(all) != 2 || all[0] != off || all[1] != on {
		t.Fatalf("Abilities should be in intake order, got %v", all)
	}
	all[0] = nil
	if c.Abilities()[0] != off {
		t.Error("Abilities must return a copy")
	}

	if en := c.Enabled(); len(en) != 1 || en[0] != on {
		t.Errorf("Unexpected enabled partition %v", en)
	}
	if dis := c.Disabled(); len(dis) != 1 || dis[0] != off {
		t.Errorf("Unexpected disabled partition %v", dis)
	}
}

func TestAbilityCopy(t *testing.T) {
	orig := NewAbility("Nylea Ability", NewPieceSet(InfiniteMana), NewPieceSet(InfiniteDamage)).AsPayoff()
	cp := orig.Copy()

	if cp.ID == orig.ID {
		t.Error("Copy must get a new ID")
	}
	if cp.Name != orig.Name || cp.Requires != orig.Requires || cp.Produces != orig.Produces || !cp.Payoff {
		t.Errorf("Copy content differs: %s vs %s", cp, orig)
	}

	cp.Requires = cp.Requires.Add(CreaturesAreLands)
	if orig.Requires.Has(CreaturesAreLands) {
		t.Error("Copy pieces must be independent of the original")
	}

	started := NewAbility("Ashaya Ability", 0, NewPieceSet(CreaturesAreLands)).AsStarting()
	if !started.Copy().Enabled() {
		t.Error("Copy should keep the enabled flag it had at copy time")
	}
}
