package paint_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

func TestNewGrid(t *testing.T) {
	g := paint.NewGrid(16)

	if g.Size != 16 || len(g.Cells) != 256 {
		t.Fatalf("expected 16x16 grid, got size %d with %d cells", g.Size, len(g.Cells))
	}
	for i, c := range g.Cells {
		if c != paint.NewCell() {
			t.Fatalf("cell %d not fresh: %+v", i, c)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := paint.NewGrid(5)

	testCases := []struct {
		coord    paint.Coord
		expected bool
	}{
		{paint.C(0, 0), true},
		{paint.C(4, 4), true},
		{paint.C(-1, 0), false},
		{paint.C(0, -1), false},
		{paint.C(5, 0), false},
		{paint.C(0, 5), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestGridApply(t *testing.T) {
	g := paint.NewGrid(4)
	d := paint.NewDispatcher(paint.DispatcherOptions{Seed: 1})
	state := paint.AppState{Mode: paint.ModeNormal, Current: "#ff0000"}

	if err := g.Apply(paint.C(1, 2), d, state); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	cell, ok := g.At(paint.C(1, 2))
	if !ok || cell.Rendered != "#ff0000" {
		t.Errorf("expected painted cell, got %+v", cell)
	}
	// Row-major storage.
	if g.Cells[2*4+1] != cell {
		t.Error("cell not stored at y*size+x")
	}

	// Off-grid is ignored.
	if err := g.Apply(paint.C(9, 9), d, state); err != nil {
		t.Errorf("off-grid Apply returned %v", err)
	}
	if _, ok := g.At(paint.C(9, 9)); ok {
		t.Error("At should report off-grid coordinates")
	}
}

func TestGridApplyUnknownModeLeavesCell(t *testing.T) {
	g := paint.NewGrid(2)
	d := paint.NewDispatcher(paint.DispatcherOptions{})

	err := g.Apply(paint.C(0, 0), d, paint.AppState{Mode: paint.Mode(-1)})
	if !errors.Is(err, paint.ErrUnrecognizedMode) {
		t.Fatalf("expected ErrUnrecognizedMode, got %v", err)
	}
	if cell, _ := g.At(paint.C(0, 0)); cell != paint.NewCell() {
		t.Errorf("cell changed: %+v", cell)
	}
}

func TestGridClearAndResize(t *testing.T) {
	g := paint.NewGrid(3)
	d := paint.NewDispatcher(paint.DispatcherOptions{})
	state := paint.AppState{Mode: paint.ModeDarken}

	for i := 0; i < 3; i++ {
		if err := g.Apply(paint.C(0, 0), d, state); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	g.Clear()
	if cell, _ := g.At(paint.C(0, 0)); cell != paint.NewCell() {
		t.Errorf("Clear left %+v", cell)
	}

	g.Resize(10)
	if g.Size != 10 || len(g.Cells) != 100 {
		t.Errorf("Resize(10) gave size %d, %d cells", g.Size, len(g.Cells))
	}

	g.Resize(0)
	if g.Size != 1 {
		t.Errorf("Resize(0) should clamp to 1, got %d", g.Size)
	}
}

func TestGridCounts(t *testing.T) {
	g := paint.NewGrid(3)
	d := paint.NewDispatcher(paint.DispatcherOptions{})

	if err := g.Apply(paint.C(0, 0), d, paint.AppState{Mode: paint.ModeNormal, Current: "#00ff00"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < paint.MaxDarkness; i++ {
		if err := g.Apply(paint.C(1, 1), d, paint.AppState{Mode: paint.ModeDarken}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Apply(paint.C(2, 2), d, paint.AppState{Mode: paint.ModeDarken}); err != nil {
		t.Fatal(err)
	}

	got := g.Counts()
	want := paint.Counts{Painted: 3, Darkened: 2, Black: 1}
	if got != want {
		t.Errorf("Counts() = %+v, expected %+v", got, want)
	}
}
