// Command floor-sweep measures how the repopulation floor shapes long-run
// population across seed-cell counts, history depths and seeds.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"stalagmite/internal/config"
	"stalagmite/internal/life"
	"stalagmite/internal/telemetry"
)

type paramSet struct {
	cells  int
	levels int
}

func (p paramSet) String() string {
	return fmt.Sprintf("cells=%d floor=%d levels=%d", p.cells, life.PopulationFloor(p.cells), p.levels)
}

type scenarioResult struct {
	params paramSet
	seed   int64
	stats  telemetry.WindowStats
}

// summaryRow is one CSV row per parameter set, aggregated over seeds.
type summaryRow struct {
	Cells         int     `csv:"cells"`
	Floor         int     `csv:"floor"`
	Levels        int     `csv:"levels"`
	Seeds         int     `csv:"seeds"`
	PopMean       float64 `csv:"pop_mean"`
	PopMeanStd    float64 `csv:"pop_mean_std"`
	PopMin        float64 `csv:"pop_min"`
	RepopFraction float64 `csv:"repop_fraction"`
	InjectedMean  float64 `csv:"injected_mean"`
}

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	steps := flag.Int("steps", 600, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "write per-parameter summaries to this CSV file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	base, err := flags.Resolve()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cellOptions := []int{10, 25, 50, 100, 200}
	levelOptions := []int{0, 10, 30}

	var sets []paramSet
	for _, cells := range cellOptions {
		for _, levels := range levelOptions {
			sets = append(sets, paramSet{cells: cells, levels: levels})
		}
	}

	slog.Info("sweeping",
		"sets", len(sets),
		"seeds", *seeds,
		"workers", *workers,
		"steps", *steps,
		"rows", base.Grid.Rows,
		"cols", base.Grid.Cols,
	)

	type job struct {
		params paramSet
		seed   int64
	}
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(base.Life(), j.params, j.seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for s := 0; s < *seeds; s++ {
				jobs <- job{params: params, seed: base.Population.Seed + int64(s)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	bySet := make(map[paramSet][]scenarioResult)
	for res := range results {
		bySet[res.params] = append(bySet[res.params], res)
	}

	rows := make([]summaryRow, 0, len(sets))
	for _, params := range sets {
		rows = append(rows, summarize(params, bySet[params], *steps))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PopMean > rows[j].PopMean })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, r := range rows {
		fmt.Printf("%2d) cells=%d floor=%d levels=%d pop=%.1f±%.1f min=%.0f repop=%.1f%% injected/step=%.2f\n",
			i+1, r.Cells, r.Floor, r.Levels, r.PopMean, r.PopMeanStd, r.PopMin, r.RepopFraction*100, r.InjectedMean)
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			slog.Error("writing summaries", "error", err)
			os.Exit(1)
		}
		slog.Info("summaries written", "path", *csvPath)
	}
}

func runScenario(base life.Config, params paramSet, seed int64, steps int) scenarioResult {
	cfg := base
	cfg.Cells = params.cells
	cfg.Levels = params.levels
	cfg.Seed = seed

	sim, err := life.New(cfg)
	if err != nil {
		panic(fmt.Sprintf("scenario %s: %v", params, err))
	}
	collector := telemetry.NewCollector(0)
	for i := 0; i < steps; i++ {
		collector.Record(sim.Step())
	}
	return scenarioResult{params: params, seed: seed, stats: collector.Flush()}
}

func summarize(params paramSet, results []scenarioResult, steps int) summaryRow {
	row := summaryRow{
		Cells:  params.cells,
		Floor:  life.PopulationFloor(params.cells),
		Levels: params.levels,
		Seeds:  len(results),
	}
	if len(results) == 0 || steps <= 0 {
		return row
	}
	means := make([]float64, len(results))
	repops := make([]float64, len(results))
	injected := make([]float64, len(results))
	row.PopMin = results[0].stats.PopMin
	for i, res := range results {
		means[i] = res.stats.PopMean
		repops[i] = float64(res.stats.Repopulations) / float64(steps)
		injected[i] = float64(res.stats.Injected) / float64(steps)
		if res.stats.PopMin < row.PopMin {
			row.PopMin = res.stats.PopMin
		}
	}
	row.PopMean, row.PopMeanStd = stat.MeanStdDev(means, nil)
	if len(means) < 2 {
		row.PopMeanStd = 0
	}
	row.RepopFraction = stat.Mean(repops, nil)
	row.InjectedMean = stat.Mean(injected, nil)
	return row
}

func writeCSV(path string, rows []summaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.Marshal(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
