// Command socialfeed renders a static social feed in the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/application/usecase"
	"github.com/tesso57/socialfeed/internal/domain/layout"
	"github.com/tesso57/socialfeed/internal/infrastructure/config"
	"github.com/tesso57/socialfeed/internal/infrastructure/fixture"
	"github.com/tesso57/socialfeed/internal/infrastructure/logger"
	"github.com/tesso57/socialfeed/internal/presentation/tui"
	"gopkg.in/yaml.v3"
)

var version = "dev"

type cli struct {
	Version kong.VersionFlag `help:"Print version information and exit."`

	Run    runCmd    `cmd:"" default:"withargs" help:"Start the feed (default)."`
	Layout layoutCmd `cmd:"" help:"Print the page layout for a viewport size."`
}

type runCmd struct {
	Config    string `help:"Config file path." type:"path"`
	Debug     bool   `help:"Enable debug logging."`
	Fixture   string `help:"YAML fixture overriding the built-in data." type:"path"`
	PostsFeed string `help:"Local RSS/Atom file whose entries become posts." type:"path"`
	NoColor   bool   `help:"Disable colors."`
}

type layoutCmd struct {
	Width  float64 `required:"" help:"Viewport width in px."`
	Height float64 `default:"800" help:"Viewport height in px."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("socialfeed"),
		kong.Description("A static social feed for the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

func (r *runCmd) Run() error {
	store, err := config.Load(r.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := r.apply(store.Settings)

	cleanup, err := logger.Setup(logger.Config{Path: cfg.Log.File, Debug: cfg.Log.Debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer func() { _ = cleanup() }()
	}
	log := logger.L()

	if cfg.Display.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	feed := usecase.NewFeedService(fixture.FileSource{
		FixturePath:   cfg.Data.Fixture,
		PostsFeedPath: cfg.Data.PostsFeed,
	})
	interactions := usecase.NewInteractionService(usecase.LogHook(log))

	log.Info("app.start", "version", version, "config", store.Path())
	p := tea.NewProgram(tui.NewModel(cfg, feed, interactions, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("app.exit", "err", err)
		return fmt.Errorf("run app: %w", err)
	}
	log.Info("app.exit")
	return nil
}

// apply layers command-line flags over the loaded settings.
func (r *runCmd) apply(cfg settings.Settings) settings.Settings {
	if r.Debug {
		cfg.Log.Debug = true
	}
	if r.Fixture != "" {
		cfg.Data.Fixture = r.Fixture
	}
	if r.PostsFeed != "" {
		cfg.Data.PostsFeed = r.PostsFeed
	}
	if r.NoColor {
		cfg.Display.NoColor = true
	}
	return cfg
}

func (l *layoutCmd) Run(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(layout.ForViewport(l.Width, l.Height).Describe()); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
