package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/config"
	"github.com/lokito-h/outpost/editor"
	"github.com/lokito-h/outpost/habitat"
	"github.com/lokito-h/outpost/layout"
	"github.com/lokito-h/outpost/resources"
)

func main() {
	configPath := flag.String("config", "", "path to config yaml (optional)")
	headless := flag.Bool("headless", false, "print a layout report and exit without opening a window")
	layoutPath := flag.String("layout", "", "layout json to restore on startup")
	outputDir := flag.String("output-dir", "", "directory for telemetry csv output")
	saveDir := flag.String("save-dir", "", "directory for saved layouts (overrides config)")
	logStats := flag.Bool("log-stats", false, "log a telemetry record after every mutation")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *headless {
		if err := runHeadless(*layoutPath); err != nil {
			slog.Error("headless report failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Outpost")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0)

	ed, err := editor.New(editor.Options{
		LayoutPath: *layoutPath,
		OutputDir:  *outputDir,
		SaveDir:    *saveDir,
		LogStats:   *logStats,
	})
	if err != nil {
		slog.Error("failed to start editor", "error", err)
		os.Exit(1)
	}
	defer ed.Unload()

	for !rl.WindowShouldClose() {
		ed.Update()
		ed.Draw()
	}
}

// runHeadless loads a layout, aggregates it and writes the report to stdout.
// No window is opened, so it works over ssh and in CI.
func runHeadless(layoutPath string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	st := habitat.NewState(cat)
	if layoutPath != "" {
		doc, err := layout.LoadFile(layoutPath)
		if err != nil {
			return err
		}
		if _, err := doc.Restore(st); err != nil {
			return err
		}
	}

	snap := resources.Aggregate(st.Modules(), cat)
	alerts := resources.Alerts(snap)
	scores, recs := resources.Report(snap)

	slog.Info("layout report", "layout", layoutPath, "resources", snap)

	fmt.Printf("Modules: %d  Crew: %d  Area: %.0f\n", snap.ModuleCount, snap.CrewCapacity, snap.TotalArea)
	fmt.Printf("Power:   +%.0f / -%.0f (balance %+.0f)\n", snap.PowerGeneration, snap.PowerConsumption, snap.PowerBalance)
	fmt.Printf("Oxygen:  +%.0f / -%.0f (balance %+.0f)\n", snap.OxygenProduction, snap.OxygenConsumption, snap.OxygenBalance)
	fmt.Println()
	for _, a := range alerts {
		fmt.Printf("[%s] %s\n", a.Severity, a.Message)
	}
	fmt.Println()
	fmt.Printf("Efficiency: overall %.0f (power %.0f, oxygen %.0f, space %.0f, crew %.0f)\n",
		scores.Overall, scores.Power, scores.Oxygen, scores.Space, scores.Crew)
	for i, rec := range recs {
		fmt.Printf("%d. %s\n", i+1, rec.Message)
	}
	return nil
}
