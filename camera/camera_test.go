package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1200, 800, 120, 80)

	// Should be centered on the surface
	if cam.X != 60 || cam.Y != 40 {
		t.Errorf("expected camera at (60, 40), got (%f, %f)", cam.X, cam.Y)
	}
	// fitZoom = min(1200/120, 800/80) = 10, default zoom keeps a margin
	if math.Abs(float64(cam.Zoom-9.0)) > 0.001 {
		t.Errorf("expected zoom 9.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1200, 800, 120, 80)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(60, 40)
	if math.Abs(float64(sx-600)) > 0.01 || math.Abs(float64(sy-400)) > 0.01 {
		t.Errorf("expected screen center (600, 400), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1200, 800, 120, 80)

	testCases := []struct{ sx, sy float32 }{
		{600, 400}, // center
		{100, 100}, // top-left
		{1100, 700}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanClamps(t *testing.T) {
	cam := New(1200, 800, 120, 80)

	// Pan far past the left edge: the center clamps at 0, never wraps
	cam.Pan(-100000, 0)
	if cam.X != 0 {
		t.Errorf("expected X clamped to 0, got %f", cam.X)
	}

	// Pan far past the bottom edge
	cam.Pan(0, 100000)
	if cam.Y != 80 {
		t.Errorf("expected Y clamped to 80, got %f", cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1200, 800, 120, 80)

	// fitZoom = 10, so MinZoom = 2.5 and MaxZoom = 80
	if math.Abs(float64(cam.MinZoom-2.5)) > 0.001 {
		t.Errorf("expected MinZoom 2.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(1000) // Above max
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestResizeRecomputesLimits(t *testing.T) {
	cam := New(1200, 800, 120, 80)
	cam.SetZoom(cam.MinZoom)

	// Shrinking the viewport lowers fitZoom and with it the zoom limits
	cam.Resize(600, 400)
	if math.Abs(float64(cam.MinZoom-1.25)) > 0.001 {
		t.Errorf("expected MinZoom 1.25 after resize, got %f", cam.MinZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f outside limits [%f, %f] after resize", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(1200, 800, 120, 80)
	cam.SetZoom(10)

	// At zoom 10 the viewport covers 120x80 surface units around the center
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if math.Abs(float64(minX)) > 0.01 || math.Abs(float64(minY)) > 0.01 {
		t.Errorf("expected visible bounds to start at origin, got (%f, %f)", minX, minY)
	}
	if math.Abs(float64(maxX-120)) > 0.01 || math.Abs(float64(maxY-80)) > 0.01 {
		t.Errorf("expected visible bounds to end at (120, 80), got (%f, %f)", maxX, maxY)
	}
}

func TestReset(t *testing.T) {
	cam := New(1200, 800, 120, 80)
	cam.Pan(500, 300)
	cam.SetZoom(25)

	cam.Reset()

	if cam.X != 60 || cam.Y != 40 {
		t.Errorf("expected position (60, 40), got (%f, %f)", cam.X, cam.Y)
	}
	if math.Abs(float64(cam.Zoom-9.0)) > 0.001 {
		t.Errorf("expected zoom 9.0, got %f", cam.Zoom)
	}
}
