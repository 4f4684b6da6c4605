package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/refdocs/internal/build"
	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/config"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
	"git.home.luguber.info/inful/refdocs/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Catalog     string `help:"Metadata catalog (YAML dump or SQLite database); overrides catalog.path" type:"path"`
	ProjectRoot string `name:"project-root" help:"Project root the doc root is resolved against; overrides project_root" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus textfile format" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if b.Catalog != "" {
		cfg.Catalog.Path = b.Catalog
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := RunBuild(ctx, cfg, b.ProjectRoot, b.MetricsFile)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote %d pages for %d entries to %s\n", result.Pages, len(result.Entries), result.DocRoot)
	return nil
}

// RunBuild opens the configured catalog and builds every tree entry.
func RunBuild(ctx context.Context, cfg *config.Config, projectRoot, metricsFile string) (*build.Result, error) {
	if cfg.Catalog.Path == "" {
		return nil, ferrors.ConfigError("no metadata catalog configured (set catalog.path or --catalog)").Build()
	}
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			slog.Warn("Failed to close catalog", logfields.Path(cfg.Catalog.Path), logfields.Error(cerr))
		}
	}()

	svc := build.NewService()
	var reg *prom.Registry
	if metricsFile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	slog.Info("Starting documentation build",
		logfields.Path(cfg.Catalog.Path),
		logfields.Count(len(cfg.Tree)))
	result, err := svc.Run(ctx, build.Request{
		Config:      cfg,
		Classes:     store.Classes(),
		Modules:     store.Modules(),
		ProjectRoot: projectRoot,
	})

	// Metrics are written for failed builds too.
	if reg != nil {
		if werr := metrics.WriteTextfile(metricsFile, reg); werr != nil {
			if err == nil {
				return result, werr
			}
			slog.Warn("Failed to write metrics", logfields.Path(metricsFile), logfields.Error(werr))
		}
	}
	return result, err
}
