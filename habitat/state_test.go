package habitat

import (
	"errors"
	"testing"

	"github.com/lokito-h/outpost/catalog"
)

var testBounds = Bounds{Width: 120, Height: 80}

func newTestState(t *testing.T) *State {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return NewState(cat)
}

func TestPlaceAssignsSequentialIDs(t *testing.T) {
	st := newTestState(t)

	a, ch, err := st.Place("solar-array", 0, 0, testBounds)
	if err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	if a.ID != 1 {
		t.Errorf("first id = %d, want 1", a.ID)
	}
	if len(ch.Added) != 1 || ch.Added[0] != 1 {
		t.Errorf("change = %+v, want Added [1]", ch)
	}

	b, _, err := st.Place("airlock", 0, 20, testBounds)
	if err != nil {
		t.Fatalf("second placement failed: %v", err)
	}
	if b.ID != 2 {
		t.Errorf("second id = %d, want 2", b.ID)
	}
}

func TestPlaceUnknownType(t *testing.T) {
	st := newTestState(t)

	_, _, err := st.Place("cheese-cave", 0, 0, testBounds)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonUnknownType {
		t.Fatalf("expected unknown-type rejection, got %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("rejected placement mutated state: %d modules", st.Len())
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	st := newTestState(t)

	// solar-array is 16x8: flush with the right edge fits, one unit past does not
	if _, _, err := st.Place("solar-array", 104, 0, testBounds); err != nil {
		t.Fatalf("flush placement should succeed: %v", err)
	}
	_, _, err := st.Place("solar-array", 105, 20, testBounds)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonOutOfBounds {
		t.Fatalf("expected out-of-bounds rejection, got %v", err)
	}
}

func TestPlaceOverlap(t *testing.T) {
	st := newTestState(t)

	first, _, err := st.Place("solar-array", 10, 10, testBounds)
	if err != nil {
		t.Fatalf("setup placement failed: %v", err)
	}

	// Overlapping the existing array is rejected and names the blocker
	_, _, err = st.Place("airlock", 12, 12, testBounds)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonOverlap {
		t.Fatalf("expected overlap rejection, got %v", err)
	}
	if verr.With != first.ID {
		t.Errorf("overlap names module %d, want %d", verr.With, first.ID)
	}

	// Abutting it exactly is fine: touching edges are not overlap
	if _, _, err := st.Place("airlock", 26, 10, testBounds); err != nil {
		t.Errorf("abutting placement should succeed: %v", err)
	}
}

func TestUnknownTypeBeatsOutOfBounds(t *testing.T) {
	st := newTestState(t)

	// Both failures apply; the unknown type is reported
	_, _, err := st.Place("cheese-cave", -500, -500, testBounds)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonUnknownType {
		t.Fatalf("expected unknown-type to take precedence, got %v", err)
	}
}

func TestMoveExcludesSelf(t *testing.T) {
	st := newTestState(t)

	m, _, err := st.Place("airlock", 10, 10, testBounds)
	if err != nil {
		t.Fatalf("setup placement failed: %v", err)
	}

	// Moving onto its own footprint must not self-collide
	ch, err := st.Move(m.ID, 12, 10, testBounds)
	if err != nil {
		t.Fatalf("move over own footprint failed: %v", err)
	}
	if len(ch.Moved) != 1 || ch.Moved[0] != m.ID {
		t.Errorf("change = %+v, want Moved [%d]", ch, m.ID)
	}

	got, _ := st.ByID(m.ID)
	if got.X != 12 || got.Y != 10 {
		t.Errorf("module at (%g, %g), want (12, 10)", got.X, got.Y)
	}
}

func TestMoveRejectionLeavesPositionIntact(t *testing.T) {
	st := newTestState(t)

	blocker, _, _ := st.Place("solar-array", 50, 50, testBounds)
	m, _, err := st.Place("airlock", 10, 10, testBounds)
	if err != nil {
		t.Fatalf("setup placement failed: %v", err)
	}

	_, err = st.Move(m.ID, 52, 52, testBounds)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonOverlap || verr.With != blocker.ID {
		t.Fatalf("expected overlap with %d, got %v", blocker.ID, err)
	}

	got, _ := st.ByID(m.ID)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("rejected move shifted module to (%g, %g)", got.X, got.Y)
	}
}

func TestMoveUnknownIDIsNoOp(t *testing.T) {
	st := newTestState(t)

	ch, err := st.Move(99, 10, 10, testBounds)
	if err != nil {
		t.Fatalf("move of unknown id errored: %v", err)
	}
	if !ch.Empty() {
		t.Errorf("move of unknown id reported change %+v", ch)
	}
}

func TestRemoveNeverReusesIDs(t *testing.T) {
	st := newTestState(t)

	a, _, _ := st.Place("airlock", 0, 0, testBounds)
	b, _, _ := st.Place("airlock", 10, 0, testBounds)

	ch, ok := st.Remove(b.ID)
	if !ok || len(ch.Removed) != 1 || ch.Removed[0] != b.ID {
		t.Fatalf("remove reported (%+v, %v)", ch, ok)
	}

	c, _, err := st.Place("airlock", 10, 0, testBounds)
	if err != nil {
		t.Fatalf("replacement placement failed: %v", err)
	}
	if c.ID != b.ID+1 {
		t.Errorf("id after removal = %d, want %d (ids are never reused)", c.ID, b.ID+1)
	}
	if _, ok := st.ByID(a.ID); !ok {
		t.Error("unrelated module disappeared")
	}
}

func TestRemoveUnknownID(t *testing.T) {
	st := newTestState(t)
	if ch, ok := st.Remove(42); ok || !ch.Empty() {
		t.Errorf("remove of unknown id reported (%+v, %v)", ch, ok)
	}
}

func TestClearKeepsCounting(t *testing.T) {
	st := newTestState(t)
	st.Place("airlock", 0, 0, testBounds)
	st.Place("airlock", 10, 0, testBounds)

	ch := st.Clear()
	if len(ch.Removed) != 2 || st.Len() != 0 {
		t.Fatalf("clear reported %+v with %d modules left", ch, st.Len())
	}

	m, _, err := st.Place("airlock", 0, 0, testBounds)
	if err != nil {
		t.Fatalf("placement after clear failed: %v", err)
	}
	if m.ID != 3 {
		t.Errorf("id after clear = %d, want 3", m.ID)
	}
}

func TestRestoreSeedsNextID(t *testing.T) {
	st := newTestState(t)

	ch, err := st.Restore([]PlacedModule{
		{ID: 3, TypeID: "airlock", X: 0, Y: 0},
		{ID: 7, TypeID: "solar-array", X: 20, Y: 0},
	})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if len(ch.Added) != 2 {
		t.Errorf("restore change = %+v", ch)
	}
	if st.NextID() != 8 {
		t.Errorf("next id after restore = %d, want 8", st.NextID())
	}

	m, _, err := st.Place("airlock", 40, 0, testBounds)
	if err != nil {
		t.Fatalf("placement after restore failed: %v", err)
	}
	if m.ID != 8 {
		t.Errorf("id after restore = %d, want 8", m.ID)
	}
}

func TestRestoreKeepsUnknownTypes(t *testing.T) {
	st := newTestState(t)

	_, err := st.Restore([]PlacedModule{
		{ID: 1, TypeID: "fusion-reactor", X: 5, Y: 5},
		{ID: 2, TypeID: "airlock", X: 30, Y: 5},
	})
	if err != nil {
		t.Fatalf("restore with unknown type failed: %v", err)
	}

	m, ok := st.ByID(1)
	if !ok || m.TypeID != "fusion-reactor" || m.X != 5 {
		t.Errorf("unknown-type module not kept positionally: %+v ok=%v", m, ok)
	}

	// Unknown types occupy no footprint, so placing over them is allowed
	if _, _, err := st.Place("storage", 5, 5, testBounds); err != nil {
		t.Errorf("placement over unknown-type module rejected: %v", err)
	}
}

func TestRestoreRejectsBadIDs(t *testing.T) {
	st := newTestState(t)
	st.Place("airlock", 0, 0, testBounds)

	for _, modules := range [][]PlacedModule{
		{{ID: 0, TypeID: "airlock"}},
		{{ID: -2, TypeID: "airlock"}},
		{{ID: 4, TypeID: "airlock"}, {ID: 4, TypeID: "storage", X: 50}},
	} {
		if _, err := st.Restore(modules); err == nil {
			t.Errorf("restore accepted invalid ids %+v", modules)
		}
	}

	// Failed restores leave the prior state intact
	if st.Len() != 1 {
		t.Errorf("failed restore clobbered state: %d modules", st.Len())
	}
}

func TestModuleAtPrefersTopmost(t *testing.T) {
	st := newTestState(t)

	// Restore skips validation, so it can set up overlapping footprints;
	// the later entry is higher in z-order and wins the hit test.
	_, err := st.Restore([]PlacedModule{
		{ID: 1, TypeID: "storage", X: 10, Y: 10},
		{ID: 2, TypeID: "storage", X: 15, Y: 15},
	})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got, ok := st.ModuleAt(17, 17)
	if !ok || got.ID != 2 {
		t.Errorf("ModuleAt(17,17) = (%+v, %v), want module 2", got, ok)
	}
	got, ok = st.ModuleAt(11, 11)
	if !ok || got.ID != 1 {
		t.Errorf("ModuleAt(11,11) = (%+v, %v), want module 1", got, ok)
	}
	if _, ok := st.ModuleAt(100, 70); ok {
		t.Error("ModuleAt over empty surface should miss")
	}
}
