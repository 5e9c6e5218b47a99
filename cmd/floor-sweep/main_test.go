package main

import (
	"testing"

	"stalagmite/internal/life"
)

func TestRunScenarioHoldsFloor(t *testing.T) {
	base := life.Config{Rows: 12, Cols: 12, Cells: 0, Levels: 0, Seed: 1}
	params := paramSet{cells: 40, levels: 3}
	res := runScenario(base, params, 4, 50)
	if res.stats.WindowStart != 1 || res.stats.WindowEnd != 50 {
		t.Fatalf("window = [%d,%d], want [1,50]", res.stats.WindowStart, res.stats.WindowEnd)
	}
	if res.stats.Injected > 0 && res.stats.Repopulations == 0 {
		t.Fatalf("injections without repopulation steps: %+v", res.stats)
	}
	if res.stats.PopMax == 0 {
		t.Fatal("population never rose above zero")
	}
}

func TestSummarizeAggregatesSeeds(t *testing.T) {
	params := paramSet{cells: 20, levels: 5}
	var results []scenarioResult
	for seed := int64(1); seed <= 3; seed++ {
		results = append(results, runScenario(life.Config{Rows: 10, Cols: 10, Seed: 9}, params, seed, 40))
	}
	row := summarize(params, results, 40)
	if row.Floor != 10 || row.Seeds != 3 || row.Levels != 5 {
		t.Fatalf("summary header = %+v", row)
	}
	for _, res := range results {
		if res.stats.PopMin < row.PopMin {
			t.Fatalf("summary min %v above scenario min %v", row.PopMin, res.stats.PopMin)
		}
	}
	if row.RepopFraction < 0 || row.RepopFraction > 1 {
		t.Fatalf("repop fraction = %v", row.RepopFraction)
	}

	empty := summarize(params, nil, 40)
	if empty.Seeds != 0 || empty.PopMean != 0 {
		t.Fatalf("empty summary = %+v", empty)
	}
}
