package metrics

import "time"

// ResultLabel enumerates per-entry result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// BuildOutcomeLabel is the final status of a whole build.
type BuildOutcomeLabel string

const (
	BuildOutcomeSuccess  BuildOutcomeLabel = "success"
	BuildOutcomeFailed   BuildOutcomeLabel = "failed"
	BuildOutcomeCanceled BuildOutcomeLabel = "canceled"
)

// Recorder defines observability hooks for a documentation build.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcomeLabel)
	// ObserveEntryDuration times one builder invocation. builder is the
	// builder kind, not the full identifier.
	ObserveEntryDuration(builder string, d time.Duration)
	IncEntryResult(builder string, result ResultLabel)
	AddPages(builder string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)          {}
func (NoopRecorder) IncBuildOutcome(BuildOutcomeLabel)           {}
func (NoopRecorder) ObserveEntryDuration(string, time.Duration) {}
func (NoopRecorder) IncEntryResult(string, ResultLabel)         {}
func (NoopRecorder) AddPages(string, int)                       {}
