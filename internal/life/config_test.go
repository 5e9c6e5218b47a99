package life

import (
	"errors"
	"testing"
)

func TestFloorHalvesCells(t *testing.T) {
	for cells, want := range map[int]int{0: 0, 1: 0, 7: 3, 50: 25} {
		if got := (Config{Cells: cells}).Floor(); got != want {
			t.Fatalf("Floor with %d cells = %d, want %d", cells, got, want)
		}
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	err := Config{Rows: 0, Cols: -1, Cells: -2, Levels: -3}.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate error = %v, want ErrInvalidConfig", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate error %T does not join multiple errors", err)
	}
	if n := len(joined.Unwrap()); n != 4 {
		t.Fatalf("Validate reported %d violations, want 4", n)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
