package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/config"
)

// Service executes documentation builds.
type Service interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request contains all inputs required to execute a build.
type Request struct {
	// Config is the loaded configuration for this build.
	Config *config.Config

	Classes catalog.ClassSource
	Modules catalog.ModuleSource

	// ProjectRoot overrides Config.ProjectRoot when set.
	ProjectRoot string
}

// EntryResult records what one tree entry produced.
type EntryResult struct {
	Index    int
	Title    string
	Builder  string
	NavOrder int
	Pages    []string
	Duration time.Duration
}

// Result contains the outcome of a build.
type Result struct {
	Status  Status
	DocRoot string
	// Entries holds one result per entry that completed, in tree order.
	Entries  []EntryResult
	Pages    int
	Duration time.Duration
}

// Status represents the outcome of a build.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)
