// Package metrics projects the pixel page layout onto terminal cells.
package metrics

import (
	"math"

	"github.com/tesso57/socialfeed/internal/domain/layout"
)

const (
	RegionBorderWidth = 1
	CardGap           = 1

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)

// Frame is a layout expressed in terminal cells. Visible body columns always
// sum to Width.
type Frame struct {
	Layout      layout.Layout
	Width       int
	Height      int
	HeaderRows  int
	BodyRows    int
	LeftCols    int
	MainCols    int
	RightCols   int
	ContentCols int
	ContentPad  int
}

// Project converts l into cell dimensions for a page area of width x height
// cells where one cell is cellW x cellH pixels.
func Project(l layout.Layout, width, height, cellW, cellH int) Frame {
	width = max(width, 0)
	height = max(height, 0)
	cellW = max(cellW, 1)
	cellH = max(cellH, 1)

	f := Frame{Layout: l, Width: width, Height: height}
	f.HeaderRows = min(ceilDiv(l.Region(layout.Header).Height, cellH), height)
	f.BodyRows = height - f.HeaderRows

	if l.Visible(layout.LeftNav) {
		f.LeftCols = max(cells(l.Region(layout.LeftNav).Width, cellW), 1)
	}
	if l.Visible(layout.RightRail) {
		f.RightCols = max(cells(l.Region(layout.RightRail).Width, cellW), 1)
	}
	f.LeftCols = min(f.LeftCols, width)
	f.RightCols = min(f.RightCols, width-f.LeftCols)
	f.MainCols = width - f.LeftCols - f.RightCols

	f.ContentCols = min(f.MainCols, cells(layout.ContentMaxWidth, cellW))
	f.ContentPad = (f.MainCols - f.ContentCols) / 2
	return f
}

// Visible reports whether kind has any columns in this frame.
func (f Frame) Visible(kind layout.RegionKind) bool {
	return f.Layout.Visible(kind)
}

func cells(px, cell int) int {
	return int(math.Round(float64(px) / float64(cell)))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
