package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stalagmite/internal/config"
	"stalagmite/internal/life"
)

func step(gen uint64, pop, born, died, injected int) life.StepResult {
	return life.StepResult{Generation: gen, Population: pop, Born: born, Died: died, Injected: injected, HistoryDepth: int(gen)}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(4)
	pops := []int{10, 20, 30, 40}
	for i, p := range pops[:3] {
		if _, ok := c.Record(step(uint64(i+1), p, 2, 1, 0)); ok {
			t.Fatalf("window flushed early at step %d", i+1)
		}
	}
	stats, ok := c.Record(step(4, pops[3], 2, 1, 5))
	if !ok {
		t.Fatal("window not flushed after four steps")
	}
	if stats.WindowStart != 1 || stats.WindowEnd != 4 {
		t.Fatalf("window bounds = [%d,%d], want [1,4]", stats.WindowStart, stats.WindowEnd)
	}
	if stats.PopMean != 25 || stats.PopMin != 10 || stats.PopMax != 40 {
		t.Fatalf("population stats = %+v", stats)
	}
	// Sample standard deviation of 10,20,30,40.
	if want := math.Sqrt(500.0 / 3); math.Abs(stats.PopStd-want) > 1e-9 {
		t.Fatalf("pop std = %v, want %v", stats.PopStd, want)
	}
	if stats.Births != 8 || stats.Deaths != 4 || stats.Injected != 5 || stats.Repopulations != 1 {
		t.Fatalf("event totals = %+v", stats)
	}
	if c.Pending() != 0 {
		t.Fatalf("collector kept %d pending steps after flush", c.Pending())
	}
}

func TestCollectorSingleSampleAndEmpty(t *testing.T) {
	c := NewCollector(0)
	if got := c.Flush(); got != (WindowStats{}) {
		t.Fatalf("empty flush = %+v", got)
	}
	if _, ok := c.Record(step(7, 12, 0, 0, 0)); ok {
		t.Fatal("window 0 flushed automatically")
	}
	stats := c.Flush()
	if stats.PopStd != 0 || stats.PopMean != 12 || stats.WindowStart != 7 || stats.WindowEnd != 7 {
		t.Fatalf("single sample stats = %+v", stats)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := om.WriteGeneration(RecordFromStep(step(uint64(i), 10*i, 1, 2, 0))); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteWindow(WindowStats{WindowStart: 1, WindowEnd: 3}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "generations.csv"))
	if len(lines) != 4 {
		t.Fatalf("generations.csv has %d lines, want header + 3: %q", len(lines), lines)
	}
	if lines[0] != "generation,population,born,died,injected,history_depth" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[3] != "3,30,1,2,0,3" {
		t.Fatalf("last row = %q", lines[3])
	}
	if windows := readLines(t, filepath.Join(dir, "windows.csv")); len(windows) != 2 {
		t.Fatalf("windows.csv = %q", windows)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config snapshot unreadable: %v", err)
	}
}

func TestNilOutputManagerIsDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteGeneration(GenerationRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRecorderFlushesPartialWindow(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRecorder(NewCollector(2), om, false)
	for i := 1; i <= 5; i++ {
		r.Observe(step(uint64(i), i, 0, 0, 0))
	}
	r.Finish()
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
	if r.Err() != nil {
		t.Fatalf("recorder error: %v", r.Err())
	}
	// Header plus windows [1,2], [3,4] and the partial [5,5].
	if windows := readLines(t, filepath.Join(dir, "windows.csv")); len(windows) != 4 {
		t.Fatalf("windows.csv = %q", windows)
	}
	if gens := readLines(t, filepath.Join(dir, "generations.csv")); len(gens) != 6 {
		t.Fatalf("generations.csv has %d lines", len(gens))
	}
}
