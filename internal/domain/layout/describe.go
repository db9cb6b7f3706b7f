package layout

// RegionDescriptor is the flat, serializable view of a resolved region.
type RegionDescriptor struct {
	Visible     bool `yaml:"visible" json:"visible"`
	MarginLeft  int  `yaml:"margin_left" json:"marginLeft"`
	MarginRight int  `yaml:"margin_right" json:"marginRight"`
	Left        int  `yaml:"left" json:"left"`
	Top         int  `yaml:"top" json:"top"`
	Width       int  `yaml:"width" json:"width"`
	Height      int  `yaml:"height" json:"height"`
	Z           int  `yaml:"z" json:"z"`
}

// Descriptor is a layout keyed by region name.
type Descriptor struct {
	Tier    Tier                        `yaml:"tier" json:"tier"`
	Width   int                         `yaml:"viewport_width" json:"viewportWidth"`
	Height  int                         `yaml:"viewport_height" json:"viewportHeight"`
	Regions map[string]RegionDescriptor `yaml:"regions" json:"regions"`
}

// Describe flattens the layout into a Descriptor.
func (l Layout) Describe() Descriptor {
	d := Descriptor{
		Tier:    l.Tier,
		Width:   l.ViewportWidth,
		Height:  l.ViewportHeight,
		Regions: make(map[string]RegionDescriptor, NumRegions),
	}
	for _, r := range l.Regions {
		d.Regions[r.Kind.String()] = RegionDescriptor{
			Visible:     r.Visible,
			MarginLeft:  r.MarginLeft,
			MarginRight: r.MarginRight,
			Left:        r.Left,
			Top:         r.Top,
			Width:       r.Width,
			Height:      r.Height,
			Z:           r.Z,
		}
	}
	return d
}
