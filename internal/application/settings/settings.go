// Package settings defines application-level configuration data.
package settings

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up           string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down         string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left         string `yaml:"left" kong:"help='Scroll stories left key',default='h,left'"`
	Right        string `yaml:"right" kong:"help='Scroll stories right key',default='l,right'"`
	Top          string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom       string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	NextRegion   string `yaml:"next_region" kong:"help='Focus next region key',default='tab'"`
	PrevRegion   string `yaml:"prev_region" kong:"help='Focus previous region key',default='shift+tab'"`
	Open         string `yaml:"open" kong:"help='Open/activate key',default='enter'"`
	Back         string `yaml:"back" kong:"help='Back key',default='esc'"`
	Search       string `yaml:"search" kong:"help='Header search key',default='/'"`
	ChatSearch   string `yaml:"chat_search" kong:"help='Chat search key',default='ctrl+f'"`
	Like         string `yaml:"like" kong:"help='Like post key',default='L'"`
	Comment      string `yaml:"comment" kong:"help='Comment on post key',default='C'"`
	Share        string `yaml:"share" kong:"help='Share post key',default='S'"`
	Options      string `yaml:"options" kong:"help='Post options key',default='o'"`
	SaveLocation string `yaml:"save_location" kong:"help='Save post location key',default='v'"`
	Quit         string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Primary string `yaml:"primary" kong:"help='Primary (brand) color',default='33'"`
	Accent  string `yaml:"accent" kong:"help='Accent/selection color',default='205'"`
	Muted   string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	Border  string `yaml:"border" kong:"help='Region border color',default='63'"`
}

// DisplayConfig maps terminal cells onto the pixel grid the page layout is
// specified in.
type DisplayConfig struct {
	CellWidth  int  `yaml:"cell_width" kong:"help='Pixels per terminal column',default='8'"`
	CellHeight int  `yaml:"cell_height" kong:"help='Pixels per terminal row',default='16'"`
	NoColor    bool `yaml:"no_color" kong:"help='Disable colors',default='false'"`
}

// DataConfig points at optional local data files.
type DataConfig struct {
	Fixture   string `yaml:"fixture" kong:"help='YAML fixture overriding the built-in data'"`
	PostsFeed string `yaml:"posts_feed" kong:"help='Local RSS/Atom file whose entries become posts'"`
}

// LogConfig configures the diagnostic log.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Diagnostic log file path'"`
	Debug bool   `yaml:"debug" kong:"help='Enable debug logging',default='false'"`
}

// Settings represents the application configuration.
type Settings struct {
	KeyMap  KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme   ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	Display DisplayConfig `yaml:"display" kong:"embed,prefix='display.'"`
	Data    DataConfig    `yaml:"data" kong:"embed,prefix='data.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}

// CellSize returns the pixel size of one terminal cell, falling back to the
// defaults for non-positive values.
func (s Settings) CellSize() (width, height int) {
	width, height = s.Display.CellWidth, s.Display.CellHeight
	if width <= 0 {
		width = DefaultCellWidth
	}
	if height <= 0 {
		height = DefaultCellHeight
	}
	return width, height
}

// Default cell size in pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)
