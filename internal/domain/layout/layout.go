// Package layout computes the responsive page layout: which of the header,
// left navigation, main content and right rail regions are visible at a
// given viewport width, and where each one sits.
//
// All sizes are CSS pixels. The package is pure: every function is a value
// computation with no retained state, so it can run on every resize.
package layout

import (
	"fmt"
	"math"
	"strings"
)

// Breakpoints and fixed region sizes. Sidebar widths are referenced both by
// the sidebar specs and by the main content margins.
const (
	MediumMinWidth  = 768
	WideMinWidth    = 1024
	HeaderHeight    = 64
	LeftNavWidth    = 240
	RightRailWidth  = 288
	ContentMaxWidth = 896
)

// Tier is a discrete viewport width class.
type Tier int

const (
	Narrow Tier = iota
	Medium
	Wide
)

var tierNames = [...]string{Narrow: "narrow", Medium: "medium", Wide: "wide"}

func (t Tier) String() string {
	if t < Narrow || t > Wide {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.normalize().String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range tierNames {
		if n == name {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(text))
}

// MinWidth returns the smallest viewport width classified as t.
func (t Tier) MinWidth() int {
	switch t.normalize() {
	case Wide:
		return WideMinWidth
	case Medium:
		return MediumMinWidth
	default:
		return 0
	}
}

func (t Tier) normalize() Tier {
	if t < Narrow || t > Wide {
		return Narrow
	}
	return t
}

// Classify maps a viewport width to its tier. Widths exactly on a breakpoint
// belong to the wider tier. Negative, zero and non-finite widths are Narrow.
func Classify(widthPx float64) Tier {
	if math.IsNaN(widthPx) || math.IsInf(widthPx, 0) || widthPx <= 0 {
		return Narrow
	}
	switch {
	case widthPx >= WideMinWidth:
		return Wide
	case widthPx >= MediumMinWidth:
		return Medium
	default:
		return Narrow
	}
}

// Compute returns the layout for a tier. Widths that depend on the actual
// viewport width (header, main content) are left at zero; use ForViewport
// when the width is known.
func Compute(tier Tier, viewportHeight int) Layout {
	tier = tier.normalize()
	viewportHeight = max(viewportHeight, 0)
	bodyHeight := max(viewportHeight-HeaderHeight, 0)

	l := Layout{Tier: tier, ViewportHeight: viewportHeight}
	for kind, spec := range specs {
		r := Region{Spec: spec, Visible: tier >= spec.MinTier}
		if r.Visible {
			switch spec.Kind {
			case Header:
				r.Top = 0
				r.Height = HeaderHeight
			default:
				r.Top = HeaderHeight
				r.Height = bodyHeight
				r.Width = spec.Width
			}
		}
		l.Regions[kind] = r
	}

	main := &l.Regions[MainContent]
	main.MarginLeft = reservedWidth(l.Regions[LeftNav])
	main.MarginRight = reservedWidth(l.Regions[RightRail])
	return l
}

// ForViewport classifies the viewport and places every visible region on it.
// Invalid dimensions are treated as zero.
func ForViewport(widthPx, heightPx float64) Layout {
	width := normalizePx(widthPx)
	l := Compute(Classify(widthPx), normalizePx(heightPx))
	l.ViewportWidth = width

	header := &l.Regions[Header]
	header.Width = width

	left := &l.Regions[LeftNav]
	if left.Visible {
		left.Left = 0
	}

	main := &l.Regions[MainContent]
	main.Left = main.MarginLeft
	main.Width = max(width-main.MarginLeft-main.MarginRight, 0)

	right := &l.Regions[RightRail]
	if right.Visible {
		right.Left = width - right.Width
	}

	contentWidth := min(main.Width, ContentMaxWidth)
	l.Content = Box{
		Left:  main.Left + (main.Width-contentWidth)/2,
		Width: contentWidth,
	}
	return l
}

func reservedWidth(r Region) int {
	if !r.Visible {
		return 0
	}
	return r.Spec.Width
}

func normalizePx(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
