package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
)

// Dump is the on-disk metadata format written by the introspection step.
type Dump struct {
	Modules []*Module `yaml:"modules"`
	Classes []*Class  `yaml:"classes"`
}

// Memory serves a Dump from memory.
type Memory struct {
	classes *Index[*Class]
	modules *Index[*Module]
}

// NewMemory indexes a dump.
func NewMemory(d *Dump) *Memory {
	if d == nil {
		d = &Dump{}
	}
	return &Memory{
		classes: NewIndex("class", d.Classes),
		modules: NewIndex("module", d.Modules),
	}
}

// Classes returns the class lookup.
func (m *Memory) Classes() ClassSource { return m.classes }

// Modules returns the module lookup.
func (m *Memory) Modules() ModuleSource { return m.modules }

// Dump returns the records backing m.
func (m *Memory) Dump() *Dump {
	return &Dump{Modules: m.modules.All(), Classes: m.classes.All()}
}

// DecodeDump reads a YAML metadata dump.
func DecodeDump(r io.Reader) (*Dump, error) {
	var d Dump
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return nil, ferrors.WrapError(err, ferrors.CategoryCatalog, "failed to decode metadata dump").Fatal().Build()
	}
	for i, c := range d.Classes {
		if c == nil || c.ImportPath == "" {
			return nil, ferrors.ValidationError(fmt.Sprintf("class record %d has no import_path", i)).Build()
		}
	}
	for i, m := range d.Modules {
		if m == nil || m.ImportPath == "" {
			return nil, ferrors.ValidationError(fmt.Sprintf("module record %d has no import_path", i)).Build()
		}
	}
	return &d, nil
}

// LoadDumpFile reads a YAML metadata dump from disk.
func LoadDumpFile(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryCatalog, "failed to open metadata dump").
			Fatal().
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()
	return DecodeDump(f)
}
