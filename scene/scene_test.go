package scene

import (
	"testing"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/habitat"
)

var testBounds = habitat.Bounds{Width: 120, Height: 80}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

func collect(s *Scene) map[int]Position {
	out := make(map[int]Position)
	s.Each(func(pos Position, _ Extent, spr Sprite) {
		out[spr.ModuleID] = pos
	})
	return out
}

func TestApplyMirrorsMutations(t *testing.T) {
	cat := testCatalog(t)
	st := habitat.NewState(cat)
	sc := New()

	m, ch, err := st.Place("solar-array", 10, 10, testBounds)
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	sc.Apply(ch, st, cat)

	if sc.Len() != 1 {
		t.Fatalf("scene has %d entities, want 1", sc.Len())
	}
	got := collect(sc)
	if pos, ok := got[m.ID]; !ok || pos.X != 10 || pos.Y != 10 {
		t.Errorf("mirrored position = %+v ok=%v", pos, ok)
	}

	// Move updates the mirrored position in place
	ch, err = st.Move(m.ID, 30, 20, testBounds)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	sc.Apply(ch, st, cat)
	if pos := collect(sc)[m.ID]; pos.X != 30 || pos.Y != 20 {
		t.Errorf("position after move = %+v", pos)
	}

	// Remove drops the entity
	ch, _ = st.Remove(m.ID)
	sc.Apply(ch, st, cat)
	if sc.Len() != 0 {
		t.Errorf("scene has %d entities after removal", sc.Len())
	}
}

func TestApplyClear(t *testing.T) {
	cat := testCatalog(t)
	st := habitat.NewState(cat)
	sc := New()

	for i := 0; i < 3; i++ {
		_, ch, err := st.Place("airlock", float64(i*10), 0, testBounds)
		if err != nil {
			t.Fatalf("placement %d failed: %v", i, err)
		}
		sc.Apply(ch, st, cat)
	}

	sc.Apply(st.Clear(), st, cat)
	if sc.Len() != 0 {
		t.Errorf("scene has %d entities after clear", sc.Len())
	}
}

func TestApplyUnknownTypeSprite(t *testing.T) {
	cat := testCatalog(t)
	st := habitat.NewState(cat)
	sc := New()

	ch, err := st.Restore([]habitat.PlacedModule{
		{ID: 1, TypeID: "fusion-reactor", X: 5, Y: 5},
	})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	sc.Apply(ch, st, cat)

	var got Sprite
	var ext Extent
	sc.Each(func(_ Position, e Extent, spr Sprite) {
		got = spr
		ext = e
	})
	if got.TypeID != "fusion-reactor" || got.Label != "fusion-reactor" {
		t.Errorf("unknown-type sprite = %+v", got)
	}
	if ext.W != 0 || ext.H != 0 {
		t.Errorf("unknown type should have zero extent, got %+v", ext)
	}
}

func TestTypeColorStable(t *testing.T) {
	r1, g1, b1 := TypeColor("greenhouse")
	r2, g2, b2 := TypeColor("greenhouse")
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Error("type color not stable")
	}
	r, g, b := TypeColor("never-heard-of-it")
	if r != 150 || g != 150 || b != 150 {
		t.Errorf("fallback color = %d,%d,%d", r, g, b)
	}
}
