package metrics

import (
	"testing"

	"github.com/tesso57/socialfeed/internal/domain/layout"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		cols      int
		rows      int
		wantTier  layout.Tier
		wantLeft  int
		wantMain  int
		wantRight int
	}{
		{name: "Narrow", cols: 80, rows: 30, wantTier: layout.Narrow, wantMain: 80},
		{name: "MediumBoundary", cols: 96, rows: 30, wantTier: layout.Medium, wantLeft: 30, wantMain: 66},
		{name: "Medium", cols: 120, rows: 30, wantTier: layout.Medium, wantLeft: 30, wantMain: 90},
		{name: "WideBoundary", cols: 128, rows: 30, wantTier: layout.Wide, wantLeft: 30, wantMain: 62, wantRight: 36},
		{name: "Wide", cols: 200, rows: 50, wantTier: layout.Wide, wantLeft: 30, wantMain: 134, wantRight: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layout.ForViewport(float64(tt.cols*8), float64(tt.rows*16))
			f := Project(l, tt.cols, tt.rows, 8, 16)
			if f.Layout.Tier != tt.wantTier {
				t.Errorf("tier = %v, want %v", f.Layout.Tier, tt.wantTier)
			}
			if f.LeftCols != tt.wantLeft || f.MainCols != tt.wantMain || f.RightCols != tt.wantRight {
				t.Errorf("cols = %d/%d/%d, want %d/%d/%d",
					f.LeftCols, f.MainCols, f.RightCols, tt.wantLeft, tt.wantMain, tt.wantRight)
			}
			if f.HeaderRows != 4 {
				t.Errorf("header rows = %d, want 4", f.HeaderRows)
			}
			if f.BodyRows != tt.rows-4 {
				t.Errorf("body rows = %d, want %d", f.BodyRows, tt.rows-4)
			}
		})
	}
}

func TestProject_ColumnsTileWidth(t *testing.T) {
	for _, cell := range []int{6, 7, 8, 9, 10} {
		for cols := 1; cols <= 300; cols++ {
			l := layout.ForViewport(float64(cols*cell), 480)
			f := Project(l, cols, 30, cell, 16)
			if got := f.LeftCols + f.MainCols + f.RightCols; got != cols {
				t.Fatalf("cell %d cols %d: regions sum to %d", cell, cols, got)
			}
			if f.MainCols < 0 || f.ContentCols > f.MainCols || f.ContentPad < 0 {
				t.Fatalf("cell %d cols %d: bad frame %+v", cell, cols, f)
			}
			if !f.Visible(layout.LeftNav) && f.LeftCols != 0 {
				t.Fatalf("cell %d cols %d: hidden left nav has columns", cell, cols)
			}
		}
	}
}

func TestProject_WideCellsKeepSidebars(t *testing.T) {
	// 3 cells of 600px is a wide viewport where 240px rounds to no cells.
	l := layout.ForViewport(3*600, 480)
	f := Project(l, 3, 30, 600, 16)
	if !f.Visible(layout.LeftNav) || !f.Visible(layout.RightRail) {
		t.Fatalf("expected both sidebars visible, got tier %v", f.Layout.Tier)
	}
	if f.LeftCols != 1 || f.RightCols != 1 || f.MainCols != 1 {
		t.Errorf("cols = %d/%d/%d, want 1/1/1", f.LeftCols, f.MainCols, f.RightCols)
	}
}

func TestProject_ContentBox(t *testing.T) {
	l := layout.ForViewport(300*8, 40*16)
	f := Project(l, 300, 40, 8, 16)
	if f.ContentCols != 112 {
		t.Errorf("content cols = %d, want 112", f.ContentCols)
	}
	if want := (f.MainCols - 112) / 2; f.ContentPad != want {
		t.Errorf("content pad = %d, want %d", f.ContentPad, want)
	}
}

func TestProject_ShortTerminal(t *testing.T) {
	l := layout.ForViewport(100*8, 2*16)
	f := Project(l, 100, 2, 8, 16)
	if f.HeaderRows != 2 || f.BodyRows != 0 {
		t.Errorf("rows = %d/%d, want 2/0", f.HeaderRows, f.BodyRows)
	}
	f = Project(l, -5, -1, 0, 0)
	if f.Width != 0 || f.Height != 0 || f.MainCols != 0 {
		t.Errorf("negative input should clamp to zero, got %+v", f)
	}
}
