// folio renders a personal academic portfolio as a full-screen terminal
// page: hero banner with an optional inline portrait, publication list with
// a detail modal, bio, skills, CV timeline, and contact links.
//
// Usage:
//
//	folio [flags]
//
// Flags:
//
//	-config string     Path to configuration file (default: XDG search)
//	-content string    Path to portfolio content YAML (overrides config)
//	-theme string      Initial theme mode (light|dark)
//	-reduced-motion    Minimize animation and skip the loading delay
//	-no-mouse          Disable mouse support
//	-no-portrait       Disable the hero portrait
//	-check             Validate config and content, then exit
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/folio/pkg/app"
	"gitlab.com/tinyland/lab/folio/pkg/config"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/portrait"
	"gitlab.com/tinyland/lab/folio/pkg/prefs"
	"gitlab.com/tinyland/lab/folio/pkg/terminal"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to configuration file")
		contentPath   = flag.String("content", "", "Path to portfolio content YAML")
		themeMode     = flag.String("theme", "", "Initial theme mode (light|dark)")
		reducedMotion = flag.Bool("reduced-motion", false, "Minimize animation and skip the loading delay")
		noMouse       = flag.Bool("no-mouse", false, "Disable mouse support")
		noPortrait    = flag.Bool("no-portrait", false, "Disable the hero portrait")
		runCheck      = flag.Bool("check", false, "Validate config and content, then exit")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("folio %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration: explicit path wins, otherwise the XDG search.
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file.
	if *contentPath != "" {
		cfg.Content.Path = *contentPath
	}
	if *reducedMotion {
		cfg.Display.ReducedMotion = true
	}
	if *noPortrait {
		cfg.Display.PortraitEnabled = false
	}
	if *themeMode != "" {
		cfg.Theme.Name = *themeMode
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if *runCheck {
		os.Exit(runContentCheck(cfg))
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "folio needs an interactive terminal")
		os.Exit(1)
	}

	// Logging goes to stderr and the configured log file. Stderr is hidden
	// behind the alt screen while the TUI runs but survives in scrollback
	// on abnormal exit.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logWriter := io.Writer(os.Stderr)
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0755); err == nil {
			if f, ferr := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); ferr == nil {
				defer f.Close()
				logWriter = io.MultiWriter(os.Stderr, f)
			}
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	// Optional user palette: registered before the controller resolves, so
	// a palette named after a mode shadows the built-in.
	if cfg.Theme.Palette != "" {
		if data, rerr := os.ReadFile(cfg.Theme.Palette); rerr != nil {
			logger.Warn("palette file unreadable", "path", cfg.Theme.Palette, "error", rerr)
		} else if pal, perr := theme.LoadFromTOML(data); perr != nil {
			logger.Warn("invalid palette file", "path", cfg.Theme.Palette, "error", perr)
		} else {
			theme.Register(pal)
			logger.Debug("registered palette", "name", pal.Name)
		}
	}

	// Theme: the persisted preference wins, then the -theme flag or config,
	// then the terminal background probe.
	store := theme.FileStore{Path: prefs.Path()}
	probe := func() bool {
		if m, ok := theme.ParseMode(cfg.Theme.Name); ok {
			return m == theme.Dark
		}
		return termenv.HasDarkBackground()
	}
	themes := theme.NewController(store, probe)
	defer themes.Close()
	themes.Subscribe(func(m theme.Mode) {
		logger.Debug("theme changed", "mode", m.String())
	})

	// Portrait rendering needs the graphics protocol and cell geometry.
	var renderer *portrait.Renderer
	if cfg.Display.PortraitEnabled {
		proto := terminal.DetectProtocol()
		if forced, ok := terminal.ParseProtocol(cfg.Display.Graphics); ok {
			proto = forced
		}
		size := terminal.GetSize()
		renderer = portrait.NewRenderer(proto, size)
		logger.Debug("portrait renderer", "protocol", proto.String(),
			"cols", size.Cols, "rows", size.Rows)
	}

	var zones *zone.Manager
	if !*noMouse {
		zones = zone.New()
		defer zones.Close()
	}

	model := app.New(cfg, themes, renderer, zones, logger)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if !*noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}

// runContentCheck validates the content and palette files and reports what
// would render.
func runContentCheck(cfg *config.Config) int {
	if cfg.Theme.Palette != "" {
		data, err := os.ReadFile(cfg.Theme.Palette)
		if err != nil {
			fmt.Fprintf(os.Stderr, "palette: %v\n", err)
			return 1
		}
		pal, err := theme.LoadFromTOML(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "palette: %v\n", err)
			return 1
		}
		theme.Register(pal)
	}

	p, err := content.Load(cfg.Content.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "content: %v\n", err)
		return 1
	}
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "content: %v\n", err)
		return 1
	}

	src := cfg.Content.Path
	if src == "" {
		src = "(embedded default)"
	}
	fmt.Printf("content %s: ok\n", src)
	fmt.Printf("  profile:  %s\n", p.Profile.Name)
	fmt.Printf("  papers:   %d\n", len(p.Papers))
	fmt.Printf("  skills:   %d groups\n", len(p.Skills))
	fmt.Printf("  timeline: %d entries\n", len(p.Timeline))
	fmt.Printf("  palettes: %s\n", strings.Join(theme.Names(), ", "))
	return 0
}
