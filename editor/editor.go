// Package editor is the interactive shell composing the habitat state,
// catalog, scene, camera, and UI into the layout editor.
package editor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lokito-h/outpost/camera"
	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/config"
	"github.com/lokito-h/outpost/habitat"
	"github.com/lokito-h/outpost/inspector"
	"github.com/lokito-h/outpost/layout"
	"github.com/lokito-h/outpost/resources"
	"github.com/lokito-h/outpost/scene"
	"github.com/lokito-h/outpost/telemetry"
	"github.com/lokito-h/outpost/ui"
)

// Options configures an editor session.
type Options struct {
	LayoutPath string // Layout to restore on startup (empty = start blank)
	OutputDir  string // Directory for CSV history and config snapshot
	SaveDir    string // Directory for saved layouts (empty = config default)
	LogStats   bool   // Log a telemetry record after every mutation
}

// dragState tracks an in-progress module drag. The habitat keeps the
// pre-drag position until the drop validates; only the preview moves.
type dragState struct {
	active           bool
	id               int
	offsetX, offsetY float64 // Grab point relative to the module origin
	candX, candY     float64 // Current candidate position
}

// Editor holds the complete editor state.
type Editor struct {
	cat   *catalog.Catalog
	state *habitat.State
	scene *scene.Scene
	cam   *camera.Camera

	// UI
	hud        *ui.HUD
	palette    *ui.Palette
	resPanel   *ui.ResourcePanel
	alertPanel *ui.AlertPanel
	effPanel   *ui.EfficiencyPanel
	inspect    *inspector.Inspector
	showReport bool
	showGrid   bool

	// Derived views, recomputed after every mutation
	snapshot resources.Snapshot
	alerts   []resources.Alert
	scores   resources.Scores
	recs     []resources.Recommendation

	// Telemetry
	output   *telemetry.OutputManager
	history  *telemetry.History
	logStats bool
	seq      int

	// Interaction
	selectedType string
	selectedID   int
	drag         dragState
	notice       string
	noticeFrames int

	saveDir string

	screenWidth, screenHeight float32
}

// New creates an editor, optionally restoring a saved layout.
func New(opts Options) (*Editor, error) {
	cfg := config.Cfg()

	cat := catalog.MustLoad()
	st := habitat.NewState(cat)
	sc := scene.New()

	saveDir := opts.SaveDir
	if saveDir == "" {
		saveDir = cfg.Layout.SaveDir
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("telemetry output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	const paletteWidth, panelWidth = 200, 240
	e := &Editor{
		cat:          cat,
		state:        st,
		scene:        sc,
		cam:          camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.SurfaceW32, cfg.Derived.SurfaceH32),
		hud:          ui.NewHUD(),
		palette:      ui.NewPalette(cat, 10, 100, paletteWidth),
		resPanel:     ui.NewResourcePanel(int32(cfg.Screen.Width)-panelWidth-10, 10, panelWidth),
		alertPanel:   ui.NewAlertPanel(int32(cfg.Screen.Width)-panelWidth-10, 170, panelWidth),
		effPanel:     ui.NewEfficiencyPanel(int32(cfg.Screen.Width)-panelWidth-10, 340, panelWidth),
		inspect:      inspector.NewInspector(int32(cfg.Screen.Width), int32(cfg.Screen.Height)),
		showGrid:     true,
		output:       output,
		history:      telemetry.NewHistory(cfg.Telemetry.HistorySize),
		logStats:     opts.LogStats,
		saveDir:      saveDir,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	if opts.LayoutPath != "" {
		if err := e.restoreFrom(opts.LayoutPath); err != nil {
			return nil, err
		}
	}

	e.recompute("init")
	return e, nil
}

// Unload releases session resources.
func (e *Editor) Unload() {
	if err := e.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}

// State exposes the habitat state for headless reporting.
func (e *Editor) State() *habitat.State { return e.state }

// Snapshot returns the current aggregate view.
func (e *Editor) Snapshot() resources.Snapshot { return e.snapshot }

// Alerts returns the current safety report.
func (e *Editor) Alerts() []resources.Alert { return e.alerts }

// Report returns the current efficiency scores and recommendations.
func (e *Editor) Report() (resources.Scores, []resources.Recommendation) {
	return e.scores, e.recs
}

// bounds reads the surface bounds fresh on every call; the core never
// caches them.
func (e *Editor) bounds() habitat.Bounds {
	cfg := config.Cfg().Surface
	return habitat.Bounds{Width: cfg.Width, Height: cfg.Height}
}

// recompute rebuilds every derived view from the full module list and
// records a telemetry entry for the mutation that triggered it.
func (e *Editor) recompute(event string) {
	e.snapshot = resources.Aggregate(e.state.Modules(), e.cat)
	e.alerts = resources.Alerts(e.snapshot)
	e.scores, e.recs = resources.Report(e.snapshot)

	e.seq++
	rec := telemetry.NewRecord(e.seq, event, e.snapshot, e.alerts, e.scores)
	e.history.Add(rec)
	if err := e.output.WriteRecord(rec); err != nil {
		slog.Error("writing telemetry record", "error", err)
	}
	if e.logStats {
		rec.LogStats()
	}
}

// placeAt validates and places the selected module type at (x, y).
func (e *Editor) placeAt(x, y float64) {
	m, ch, err := e.state.Place(e.selectedType, x, y, e.bounds())
	if err != nil {
		e.rejectPlacement(err)
		return
	}
	e.scene.Apply(ch, e.state, e.cat)
	e.selectedID = m.ID
	e.recompute("place")
	logPlaced(m)
}

// moveTo commits a drag; the habitat rolls back to the pre-drag position
// when validation fails.
func (e *Editor) moveTo(id int, x, y float64) {
	ch, err := e.state.Move(id, x, y, e.bounds())
	if err != nil {
		e.rejectPlacement(err)
		return
	}
	e.scene.Apply(ch, e.state, e.cat)
	e.recompute("move")
	logMoved(id, x, y)
}

// removeModule deletes a module; unknown ids are a no-op.
func (e *Editor) removeModule(id int) {
	ch, ok := e.state.Remove(id)
	if !ok {
		return
	}
	e.scene.Apply(ch, e.state, e.cat)
	if e.selectedID == id {
		e.selectedID = 0
	}
	e.recompute("remove")
	logRemoved(id)
}

// clearAll removes every placed module.
func (e *Editor) clearAll() {
	if e.state.Len() == 0 {
		return
	}
	ch := e.state.Clear()
	e.scene.Apply(ch, e.state, e.cat)
	e.selectedID = 0
	e.recompute("clear")
	slog.Info("habitat cleared")
}

// rejectPlacement surfaces a validation failure as a transient notice.
func (e *Editor) rejectPlacement(err error) {
	e.notice = err.Error()
	e.noticeFrames = 180
	logRejected(err)
}

// saveLayout writes the current layout to a timestamped file.
func (e *Editor) saveLayout() {
	cfg := config.Cfg()
	doc := layout.FromState(e.state, cfg.Layout.Version, time.Now())
	name := fmt.Sprintf("layout_%s.json", time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(e.saveDir, name)
	if err := layout.Save(doc, path); err != nil {
		slog.Error("saving layout", "error", err)
		e.notice = "Save failed"
		e.noticeFrames = 180
		return
	}
	slog.Info("layout saved", "path", path, "modules", len(doc.Modules))
	e.notice = "Saved " + name
	e.noticeFrames = 180
}

// loadLayout restores the most recently saved layout.
func (e *Editor) loadLayout() {
	path, err := latestLayout(e.saveDir)
	if err != nil {
		slog.Error("finding layout", "error", err)
		e.notice = "No saved layout found"
		e.noticeFrames = 180
		return
	}
	if err := e.restoreFrom(path); err != nil {
		slog.Error("restoring layout", "error", err)
		e.notice = "Load failed: " + err.Error()
		e.noticeFrames = 180
		return
	}
	e.recompute("restore")
	e.notice = "Loaded " + filepath.Base(path)
	e.noticeFrames = 180
}

// restoreFrom replaces the habitat with a saved layout. The document is
// validated before any live state mutates, so a malformed file leaves
// the current layout intact.
func (e *Editor) restoreFrom(path string) error {
	doc, err := layout.LoadFile(path)
	if err != nil {
		return err
	}
	ch, err := doc.Restore(e.state)
	if err != nil {
		return err
	}
	e.scene.Apply(ch, e.state, e.cat)
	e.selectedID = 0
	slog.Info("layout restored", "path", path, "modules", e.state.Len())
	return nil
}

// latestLayout returns the lexically newest layout file in dir.
// Timestamped names make lexical order chronological.
func latestLayout(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no layout files in %s", dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}

// snap rounds a coordinate to the configured grid step.
func snap(v float64) float64 {
	step := config.Cfg().Surface.GridStep
	if step <= 0 {
		return v
	}
	steps := int(v/step + 0.5)
	if v < 0 {
		steps = int(v/step - 0.5)
	}
	return float64(steps) * step
}
