package builders

import (
	"errors"
	"strings"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
	"git.home.luguber.info/inful/refdocs/internal/pages"
)

// ErrUnknownBuilder indicates a tree entry named a builder that is not registered.
var ErrUnknownBuilder = errors.New("unknown builder")

// Env holds the collaborators shared by every builder in a run.
type Env struct {
	Classes catalog.ClassSource
	// Modules is unused by the built-in builders; it is there for builders
	// added with Registry.Register that document module records.
	Modules catalog.ModuleSource
	// DocRoot is the prepared output root. It is passed explicitly to every
	// builder; there is no process-wide current root.
	DocRoot string
	Pages   pages.Options
	// DefaultArgs documents common constructor arguments when neither the
	// class nor its ancestors do.
	DefaultArgs map[string]string
}

// Report lists what a builder wrote.
type Report struct {
	Pages []string
}

// Builder renders one planned entry.
type Builder interface {
	Build() (Report, error)
}

// Factory instantiates a builder for an entry.
type Factory func(entry navplan.Planned, env Env) Builder

// Registry maps builder kinds to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// DefaultRegistry returns a registry with the built-in builders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(navplan.BuilderModule, NewModule)
	r.Register(navplan.BuilderSingleClass, NewSingleClass)
	r.Register(navplan.BuilderSingleClassToSection, NewSingleClassToSection)
	return r
}

// Register adds or replaces the factory for kind. Kinds match case-insensitively.
func (r *Registry) Register(kind string, f Factory) {
	r.factories[strings.ToLower(kind)] = f
}

// Kinds returns the number of registered builder kinds.
func (r *Registry) Kinds() int { return len(r.factories) }

// Resolve finds the factory for a builder identifier such as
// "clearskies_doc_builder.builders.Module".
func (r *Registry) Resolve(builderID string) (Factory, error) {
	if f, ok := r.factories[strings.ToLower(navplan.BuilderKind(builderID))]; ok {
		return f, nil
	}
	return nil, ferrors.ConfigError("builder does not resolve to a known builder").
		WithContext("builder", builderID).
		WithCause(ErrUnknownBuilder).
		Build()
}
