package habitat

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"identical", Rect{X: 10, Y: 10, W: 10, H: 10}, true},
		{"partial overlap", Rect{X: 15, Y: 15, W: 10, H: 10}, true},
		{"contained", Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 20, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"touching corner", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.r); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.r, got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.r.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(15, 15) {
		t.Error("center should be inside")
	}
	if r.Contains(20, 15) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(15, 20) {
		t.Error("bottom edge is exclusive")
	}
	if r.Contains(9.99, 15) {
		t.Error("point left of rect should be outside")
	}
}

func TestFitsWithin(t *testing.T) {
	b := Bounds{Width: 120, Height: 80}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"interior", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"flush with all edges", Rect{X: 0, Y: 0, W: 120, H: 80}, true},
		{"flush with right edge", Rect{X: 100, Y: 0, W: 20, H: 20}, true},
		{"one past right edge", Rect{X: 101, Y: 0, W: 20, H: 20}, false},
		{"one past bottom edge", Rect{X: 0, Y: 61, W: 20, H: 20}, false},
		{"negative x", Rect{X: -1, Y: 0, W: 20, H: 20}, false},
		{"negative y", Rect{X: 0, Y: -0.5, W: 20, H: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.FitsWithin(tt.r); got != tt.want {
				t.Errorf("FitsWithin(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
