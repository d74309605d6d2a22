// filterdemo shows a filter bar in a window and logs selection changes.
//
// Usage:
//
//	filterdemo [--config bar.yaml] [--titles All,New,Popular] [--selected 1]
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"honnef.co/go/filterbar/config"
	"honnef.co/go/filterbar/f32color"
	ourfont "honnef.co/go/filterbar/font"
	"honnef.co/go/filterbar/theme"
	"honnef.co/go/filterbar/widget"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/pflag"
)

var defaultTitles = []string{"All", "New", "Popular"}

type options struct {
	configPath string
	titles     []string
	selected   int
	debug      bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("filterdemo", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSONC style file")
	flagSet.StringSliceVar(&opts.titles, "titles", nil, "comma-separated segment titles (overrides the config file)")
	flagSet.IntVar(&opts.selected, "selected", -1, "initially selected segment (overrides the config file)")
	flagSet.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// load merges the config file, if any, with the flags.
func load(opts options) (*config.File, error) {
	cfg := &config.File{Titles: defaultTitles}
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		if len(cfg.Titles) == 0 {
			cfg.Titles = defaultTitles
		}
	}
	if len(opts.titles) > 0 {
		cfg.Titles = opts.titles
	}
	if opts.selected >= 0 {
		cfg.Selected = opts.selected
	}
	return cfg, nil
}

func run(logger *slog.Logger, cfg *config.File) error {
	filter, err := widget.NewFilter(cfg.Titles)
	if err != nil {
		return err
	}
	if err := filter.SetSelected(cfg.Selected); err != nil {
		return fmt.Errorf("initial selection: %w", err)
	}

	th := theme.NewTheme(ourfont.Collection())
	style := theme.FilterBar(th, filter)
	if err := cfg.Style.Apply(&style); err != nil {
		return fmt.Errorf("applying style: %w", err)
	}

	mwin := NewMainWindow(th, filter, style)
	filter.SetSelectionHandler(func(selected int, f *widget.Filter) {
		logger.Info("selection changed", "index", selected, "title", f.Title(selected))
		mwin.taps++
	})

	logger.Debug("starting",
		"titles", cfg.Titles,
		"selected", cfg.Selected,
		"bar_color", f32color.Hex(style.BarBackgroundColor),
		"selected_color", f32color.Hex(style.SelectedTitleColor))

	win := app.NewWindow(app.Title("Filter bar"), app.Size(unit.Dp(480), unit.Dp(200)))
	return mwin.Run(win)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logLevel := slog.LevelInfo
	if opts.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := load(opts)
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := run(logger, cfg); err != nil {
			logger.Error("running", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
