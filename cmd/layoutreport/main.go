// Package main scores a directory of saved habitat layouts and summarizes
// the results, so a batch of candidate layouts can be compared without
// opening the editor for each one.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/config"
	"github.com/lokito-h/outpost/habitat"
	"github.com/lokito-h/outpost/layout"
	"github.com/lokito-h/outpost/resources"
)

type layoutResult struct {
	name    string
	snap    resources.Snapshot
	scores  resources.Scores
	dangers int
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	layoutDir := flag.String("layouts", "layouts", "Directory of layout JSON files to score")
	outputPath := flag.String("output", "", "CSV file for per-layout results (empty = stdout summary only)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("failed to load module catalog: %v", err)
	}

	paths, err := filepath.Glob(filepath.Join(*layoutDir, "*.json"))
	if err != nil {
		log.Fatalf("failed to list layouts: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no layout files found in %s", *layoutDir)
	}
	sort.Strings(paths)

	results := make([]layoutResult, 0, len(paths))
	for _, path := range paths {
		res, err := scoreLayout(path, cat)
		if err != nil {
			log.Printf("skipping %s: %v", filepath.Base(path), err)
			continue
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		log.Fatal("no layouts could be scored")
	}

	if *outputPath != "" {
		if err := writeCSV(*outputPath, results); err != nil {
			log.Fatalf("failed to write results: %v", err)
		}
		fmt.Printf("Per-layout results saved to: %s\n", *outputPath)
	}

	printSummary(results)
}

func scoreLayout(path string, cat *catalog.Catalog) (layoutResult, error) {
	doc, err := layout.LoadFile(path)
	if err != nil {
		return layoutResult{}, err
	}

	st := habitat.NewState(cat)
	if _, err := doc.Restore(st); err != nil {
		return layoutResult{}, err
	}

	snap := resources.Aggregate(st.Modules(), cat)
	alerts := resources.Alerts(snap)
	scores := resources.Score(snap)

	return layoutResult{
		name:    filepath.Base(path),
		snap:    snap,
		scores:  scores,
		dangers: resources.CountBySeverity(alerts)[resources.SeverityDanger],
	}, nil
}

func writeCSV(path string, results []layoutResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"layout", "modules", "crew", "area",
		"power_balance", "oxygen_balance", "dangers",
		"power_score", "oxygen_score", "space_score", "crew_score", "overall_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.name,
			strconv.Itoa(r.snap.ModuleCount),
			strconv.Itoa(r.snap.CrewCapacity),
			fmt.Sprintf("%.1f", r.snap.TotalArea),
			fmt.Sprintf("%.1f", r.snap.PowerBalance),
			fmt.Sprintf("%.1f", r.snap.OxygenBalance),
			strconv.Itoa(r.dangers),
			fmt.Sprintf("%.1f", r.scores.Power),
			fmt.Sprintf("%.1f", r.scores.Oxygen),
			fmt.Sprintf("%.1f", r.scores.Space),
			fmt.Sprintf("%.1f", r.scores.Crew),
			fmt.Sprintf("%.1f", r.scores.Overall),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []layoutResult) {
	overall := make([]float64, len(results))
	for i, r := range results {
		overall[i] = r.scores.Overall
	}
	sort.Float64s(overall)

	mean, std := stat.MeanStdDev(overall, nil)
	median := stat.Quantile(0.5, stat.Empirical, overall, nil)

	best := results[0]
	for _, r := range results[1:] {
		if r.scores.Overall > best.scores.Overall {
			best = r
		}
	}

	fmt.Printf("Scored %d layouts\n", len(results))
	fmt.Printf("Overall score: mean=%.1f std=%.1f median=%.1f min=%.1f max=%.1f\n",
		mean, std, median, overall[0], overall[len(overall)-1])
	fmt.Printf("Best layout: %s (overall %.1f, %d modules, crew %d, %d dangers)\n",
		best.name, best.scores.Overall, best.snap.ModuleCount, best.snap.CrewCapacity, best.dangers)
}
