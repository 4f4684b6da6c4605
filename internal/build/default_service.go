package build

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/refdocs/internal/builders"
	"git.home.luguber.info/inful/refdocs/internal/docspace"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
	"git.home.luguber.info/inful/refdocs/internal/metrics"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
)

// DefaultService is the standard Service.
type DefaultService struct {
	registry *builders.Registry
	recorder metrics.Recorder
}

// NewService creates a DefaultService with the built-in builders and no metrics.
func NewService() *DefaultService {
	return &DefaultService{
		registry: builders.DefaultRegistry(),
		recorder: metrics.NoopRecorder{},
	}
}

// WithRegistry replaces the builder registry.
func (s *DefaultService) WithRegistry(r *builders.Registry) *DefaultService {
	s.registry = r
	return s
}

// WithRecorder sets the metrics recorder.
func (s *DefaultService) WithRecorder(r metrics.Recorder) *DefaultService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Run builds with the default service.
func Run(ctx context.Context, req Request) (*Result, error) {
	return NewService().Run(ctx, req)
}

// Run executes the build. The first failing entry stops the build; pages
// already written are left in place.
func (s *DefaultService) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	result := &Result{Status: StatusFailed}
	finish := func(status Status, outcome metrics.BuildOutcomeLabel) {
		result.Status = status
		result.Duration = time.Since(start)
		s.recorder.IncBuildOutcome(outcome)
		s.recorder.ObserveBuildDuration(result.Duration)
	}

	if req.Config == nil {
		finish(StatusFailed, metrics.BuildOutcomeFailed)
		return result, ferrors.ConfigError("config required").Build()
	}
	if req.Classes == nil {
		finish(StatusFailed, metrics.BuildOutcomeFailed)
		return result, ferrors.ConfigError("class catalog required").Build()
	}

	projectRoot := req.ProjectRoot
	if projectRoot == "" {
		projectRoot = req.Config.ProjectRoot
	}
	docRoot, err := docspace.Prepare(projectRoot, req.Config.Output.Directory, req.Config.Output.ShouldClean())
	if err != nil {
		finish(StatusFailed, metrics.BuildOutcomeFailed)
		return result, err
	}
	result.DocRoot = docRoot

	plan := navplan.Compute(req.Config.Tree)
	env := builders.Env{
		Classes:     req.Classes,
		Modules:     req.Modules,
		DocRoot:     docRoot,
		Pages:       req.Config.Site.PageOptions(),
		DefaultArgs: req.Config.DefaultArgs,
	}

	for _, entry := range plan.Entries() {
		if err := ctx.Err(); err != nil {
			finish(StatusCanceled, metrics.BuildOutcomeCanceled)
			return result, ferrors.WrapError(err, ferrors.CategoryBuild, "build canceled").
				WithContext("entry", entry.Title).
				WithContext("index", entry.Index).
				Build()
		}

		er, err := s.runEntry(entry, env)
		if err != nil {
			finish(StatusFailed, metrics.BuildOutcomeFailed)
			return result, err
		}
		result.Entries = append(result.Entries, er)
		result.Pages += len(er.Pages)
	}

	finish(StatusSuccess, metrics.BuildOutcomeSuccess)
	slog.Info("Build complete",
		logfields.Path(docRoot),
		logfields.Count(result.Pages),
		slog.Int("entries", len(result.Entries)),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))
	return result, nil
}

func (s *DefaultService) runEntry(entry navplan.Planned, env builders.Env) (EntryResult, error) {
	kind := navplan.BuilderKind(entry.Builder)
	factory, err := s.registry.Resolve(entry.Builder)
	if err != nil {
		s.recorder.IncEntryResult(kind, metrics.ResultFatal)
		return EntryResult{}, entryError(err, entry)
	}

	slog.Info("Building entry",
		logfields.Index(entry.Index),
		logfields.Entry(entry.Title),
		logfields.Builder(entry.Builder),
		logfields.NavOrder(entry.NavOrder),
		logfields.ChildEntryCount(entry.ChildEntryCount))

	start := time.Now()
	report, err := factory(entry, env).Build()
	elapsed := time.Since(start)
	s.recorder.ObserveEntryDuration(kind, elapsed)
	s.recorder.AddPages(kind, len(report.Pages))
	if err != nil {
		s.recorder.IncEntryResult(kind, metrics.ResultFatal)
		return EntryResult{}, entryError(err, entry)
	}
	s.recorder.IncEntryResult(kind, metrics.ResultSuccess)

	return EntryResult{
		Index:    entry.Index,
		Title:    entry.Title,
		Builder:  entry.Builder,
		NavOrder: entry.NavOrder,
		Pages:    report.Pages,
		Duration: elapsed,
	}, nil
}

// entryError attaches the failing tree entry to err.
func entryError(err error, entry navplan.Planned) error {
	where := ferrors.ErrorContext{"entry": entry.Title, "index": entry.Index}
	if ce, ok := ferrors.AsClassified(err); ok && ce == err {
		return ce.WithContextMap(where)
	}
	return ferrors.WrapError(err, ferrors.CategoryBuild, "builder failed").
		Fatal().
		WithContext("entry", entry.Title).
		WithContext("index", entry.Index).
		Build()
}
