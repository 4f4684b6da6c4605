// Package commands implements the refdocs command tree.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/refdocs/internal/config"
)

// LogLevelEnv overrides the log level when --verbose is not given.
const LogLevelEnv = "REFDOCS_LOG_LEVEL"

// Global is passed to every command's Run.
type Global struct {
	// Stdout receives user-facing command output.
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"${config_path}" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Render documentation pages for the configured tree"`
	Plan    PlanCmd    `cmd:"" help:"Print the computed navigation plan without writing pages"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Catalog CatalogCmd `cmd:"" help:"Manage the class metadata catalog"`
}

// Vars are the kong interpolation variables the CLI definition needs.
func Vars(versionString string) kong.Vars {
	return kong.Vars{
		"version":     versionString,
		"config_path": config.DefaultPath,
	}
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel honors --verbose first, then REFDOCS_LOG_LEVEL, then Info.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	raw := strings.TrimSpace(os.Getenv(LogLevelEnv))
	if raw == "" || level.UnmarshalText([]byte(raw)) != nil {
		return slog.LevelInfo
	}
	return level
}
