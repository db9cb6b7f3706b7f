package layout

import "fmt"

// RegionKind identifies one rectangular area of the page.
type RegionKind int

const (
	Header RegionKind = iota
	LeftNav
	MainContent
	RightRail

	// NumRegions is the number of region kinds.
	NumRegions
)

var regionNames = [...]string{
	Header:      "header",
	LeftNav:     "left_nav",
	MainContent: "main_content",
	RightRail:   "right_rail",
}

func (k RegionKind) String() string {
	if k < 0 || k >= NumRegions {
		return fmt.Sprintf("RegionKind(%d)", int(k))
	}
	return regionNames[k]
}

// Position says whether a region is pinned to the viewport or takes part in
// the document flow.
type Position int

const (
	Flow Position = iota
	Fixed
)

func (p Position) String() string {
	if p == Fixed {
		return "fixed"
	}
	return "flow"
}

// Edge is the viewport edge a fixed region is pinned to.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// ScrollAxis is the direction a region scrolls its own overflow in.
type ScrollAxis int

const (
	ScrollNone ScrollAxis = iota
	ScrollVertical
	ScrollHorizontal
)

func (a ScrollAxis) String() string {
	switch a {
	case ScrollVertical:
		return "vertical"
	case ScrollHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Spec is the static configuration of a region. Width is zero for fluid
// regions; Height is zero when the region fills the space below the header.
type Spec struct {
	Kind     RegionKind
	Position Position
	Edge     Edge
	Width    int
	Height   int
	MinTier  Tier
	Scroll   ScrollAxis
	Z        int
}

var specs = [NumRegions]Spec{
	Header: {
		Kind:     Header,
		Position: Fixed,
		Edge:     EdgeTop,
		Height:   HeaderHeight,
		MinTier:  Narrow,
		Z:        20,
	},
	LeftNav: {
		Kind:     LeftNav,
		Position: Fixed,
		Edge:     EdgeLeft,
		Width:    LeftNavWidth,
		MinTier:  Medium,
		Scroll:   ScrollVertical,
		Z:        10,
	},
	MainContent: {
		Kind:     MainContent,
		Position: Flow,
		MinTier:  Narrow,
		Scroll:   ScrollVertical,
	},
	RightRail: {
		Kind:     RightRail,
		Position: Fixed,
		Edge:     EdgeRight,
		Width:    RightRailWidth,
		MinTier:  Wide,
		Scroll:   ScrollVertical,
		Z:        10,
	},
}

// Specs returns the static region configuration in paint-independent order.
func Specs() [NumRegions]Spec {
	return specs
}

// Region is a spec resolved against a viewport. Hidden regions have a zero
// box: they are omitted from the layout, not merely covered.
type Region struct {
	Spec
	Visible     bool
	Left        int
	Top         int
	Width       int
	Height      int
	MarginLeft  int
	MarginRight int
}

// Right returns the x coordinate just past the region's right edge.
func (r Region) Right() int {
	return r.Left + r.Width
}

// Box is a horizontal span inside the viewport.
type Box struct {
	Left  int
	Width int
}

// Layout is the resolved descriptor for one viewport.
type Layout struct {
	Tier           Tier
	ViewportWidth  int
	ViewportHeight int
	Regions        [NumRegions]Region
	// Content is the max-width bounded, centered box inside MainContent.
	Content Box
}

// Region returns the resolved region of the given kind.
func (l Layout) Region(kind RegionKind) Region {
	if kind < 0 || kind >= NumRegions {
		return Region{}
	}
	return l.Regions[kind]
}

// Visible reports whether the region of the given kind is rendered.
func (l Layout) Visible(kind RegionKind) bool {
	return l.Region(kind).Visible
}

// Body returns the visible regions below the header from left to right.
func (l Layout) Body() []Region {
	out := make([]Region, 0, 3)
	for _, kind := range []RegionKind{LeftNav, MainContent, RightRail} {
		if r := l.Regions[kind]; r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// Tiles reports whether the visible body regions cover the viewport width
// edge to edge without gaps or overlaps.
func (l Layout) Tiles() bool {
	x := 0
	for _, r := range l.Body() {
		if r.Left != x || r.Width < 0 {
			return false
		}
		x = r.Right()
	}
	return x == l.ViewportWidth
}

// TopmostRegion returns the visible region painted above all others.
func (l Layout) TopmostRegion() RegionKind {
	top := MainContent
	z := l.Regions[MainContent].Z
	for kind, r := range l.Regions {
		if r.Visible && r.Z > z {
			top, z = RegionKind(kind), r.Z
		}
	}
	return top
}
