package catalog

// Attribute is a documented attribute declared on a class body.
type Attribute struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Doc         string `yaml:"doc,omitempty" json:"doc,omitempty"`
	Attribute   string `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	ParentClass string `yaml:"parent_class,omitempty" json:"parent_class,omitempty"`
}

// Init describes a class constructor.
type Init struct {
	// AllArgs lists every constructor argument in declaration order,
	// including the implicit self reference.
	AllArgs []string `yaml:"all_args" json:"all_args"`
	// Kwargs maps arguments that have a default to the default's source text.
	Kwargs map[string]string `yaml:"kwargs,omitempty" json:"kwargs,omitempty"`
}

// HasDefault reports whether arg carries a default value.
func (i Init) HasDefault(arg string) bool {
	_, ok := i.Kwargs[arg]
	return ok
}

// Class is an introspected class record.
type Class struct {
	ID          string      `yaml:"id,omitempty" json:"id,omitempty"`
	Type        string      `yaml:"type,omitempty" json:"type,omitempty"`
	SourceFile  string      `yaml:"source_file,omitempty" json:"source_file,omitempty"`
	ImportPath  string      `yaml:"import_path" json:"import_path"`
	Name        string      `yaml:"name" json:"name"`
	Doc         string      `yaml:"doc,omitempty" json:"doc,omitempty"`
	Module      string      `yaml:"module,omitempty" json:"module,omitempty"`
	BaseClasses []string    `yaml:"base_classes,omitempty" json:"base_classes,omitempty"`
	Attributes  []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Methods     []string    `yaml:"methods,omitempty" json:"methods,omitempty"`
	Init        Init        `yaml:"init" json:"init"`
}

// Field returns the value of a queryable field.
func (c *Class) Field(name string) (string, bool) {
	switch name {
	case FieldImportPath:
		return c.ImportPath, true
	case FieldName:
		return c.Name, true
	case FieldID:
		return c.ID, true
	}
	return "", false
}

// Module is an introspected module record.
type Module struct {
	ID         string   `yaml:"id,omitempty" json:"id,omitempty"`
	ImportPath string   `yaml:"import_path" json:"import_path"`
	SourceFile string   `yaml:"source_file,omitempty" json:"source_file,omitempty"`
	IsBuiltin  bool     `yaml:"is_builtin,omitempty" json:"is_builtin,omitempty"`
	Name       string   `yaml:"name" json:"name"`
	Doc        string   `yaml:"doc,omitempty" json:"doc,omitempty"`
	Module     string   `yaml:"module,omitempty" json:"module,omitempty"`
	Classes    []string `yaml:"classes,omitempty" json:"classes,omitempty"`
}

// Field returns the value of a queryable field.
func (m *Module) Field(name string) (string, bool) {
	switch name {
	case FieldImportPath:
		return m.ImportPath, true
	case FieldName:
		return m.Name, true
	case FieldID:
		return m.ID, true
	}
	return "", false
}
