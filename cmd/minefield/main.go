package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/render"
	"github.com/vancomm/minefield/internal/report"
)

const progressTemplate = `{{ counters . }} clumps {{ speed . "%s clumps/s" }}`

var (
	log = logrus.New()

	configPath   string
	renderPath   string
	showProgress bool
)

func init() {
	const usage = "config file path (.json, .yaml or .yml)"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&renderPath, "render", "", "write a PNG of the discovered region to this path")
	flag.BoolVar(&showProgress, "progress", false, "show a progress bar on stderr")
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, fmt.Errorf("unable to apply environment: %w", err)
	}
	if renderPath != "" {
		cfg.RenderPath = renderPath
	}
	if showProgress {
		cfg.Progress = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func writeRender(path string, field mines.Field, region *mines.Region) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, field, region); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// run fills the region described by the flags, the config file and the
// environment, and writes its area to stdout.
func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := config.SetupLogging(cfg, log, mines.Log); err != nil {
		return fmt.Errorf("unable to set up logging: %w", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	var (
		field = cfg.Field()
		opts  = cfg.FillOptions()
		bar   *pb.ProgressBar
	)
	if cfg.Progress {
		bar = pb.New(0).SetTemplateString(progressTemplate).SetWriter(os.Stderr)
		bar.Set(pb.CleanOnFinish, true)
		bar.Start()
		opts.OnDiscover = func(mines.Clump) { bar.Increment() }
	}

	region, err := mines.Fill(ctx, field, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, region.Area); err != nil {
		return err
	}

	summary := report.Summarize(region)
	log.WithFields(summary.Fields()).Info(summary.String())

	if cfg.RenderPath != "" {
		if err := writeRender(cfg.RenderPath, field, region); err != nil {
			return fmt.Errorf("unable to render region to %s: %w", cfg.RenderPath, err)
		}
		log.Infof("region rendered to %s", cfg.RenderPath)
	}

	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := run(mainCtx, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
