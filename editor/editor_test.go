package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lokito-h/outpost/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func TestSnap(t *testing.T) {
	// Default grid step is 2 surface units
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.9, 0},
		{1, 2},
		{2.9, 2},
		{3.1, 4},
		{-0.9, 0},
		{-1.1, -2},
	}
	for _, tt := range tests {
		if got := snap(tt.in); got != tt.want {
			t.Errorf("snap(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestLatestLayout(t *testing.T) {
	dir := t.TempDir()

	if _, err := latestLayout(dir); err == nil {
		t.Error("expected error for empty directory")
	}

	for _, name := range []string{
		"layout_20260101_120000.json",
		"layout_20260301_090000.json",
		"layout_20260215_180000.json",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := latestLayout(dir)
	if err != nil {
		t.Fatalf("latestLayout failed: %v", err)
	}
	if filepath.Base(path) != "layout_20260301_090000.json" {
		t.Errorf("latest = %s, want layout_20260301_090000.json", filepath.Base(path))
	}
}
