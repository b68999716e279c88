package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/appengine-ltd/ideawatch/internal/catalog"
	"github.com/appengine-ltd/ideawatch/internal/config"
	"github.com/appengine-ltd/ideawatch/internal/game"
	"github.com/appengine-ltd/ideawatch/internal/report"
	"github.com/appengine-ltd/ideawatch/internal/sheet"
	"github.com/appengine-ltd/ideawatch/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		showVersion bool
		browse      bool
	)
	fs := flag.NewFlagSet("ideawatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ideawatch [flags] sheet.yaml")
		fs.PrintDefaults()
	}
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&browse, "browse", false, "browse the results interactively")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "report format: table, json or csv")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "report language: en or fr")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML file of item overrides")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "citizens computed in parallel")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintf(stdout, "ideawatch %s (%s) %s\n", version, commit, date)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one sheet file")
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	items, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	s, err := sheet.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if cfg.CatalogPath != "" {
		s.UseItems(items.Items())
	}
	slog.Debug("evaluating sheet", "path", fs.Arg(0), "catalog", cfg.CatalogPath, "workers", cfg.Workers)

	rows, err := s.Run(ctx, game.NewCalculator(items), cfg.Workers)
	if err != nil {
		return err
	}

	if browse {
		return ui.NewApp(ui.AppConfig{Version: version, Lang: cfg.Lang}, rows).Run()
	}
	return report.Write(stdout, rows, report.Options{Format: cfg.Format, Lang: cfg.Lang})
}
