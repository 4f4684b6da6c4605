package catalog

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
)

// Queryable record fields.
const (
	FieldImportPath = "import_path"
	FieldName       = "name"
	FieldID         = "id"
)

// Query is a parsed field filter.
type Query struct {
	Field string
	Value string
}

// String renders the query in its field=value form.
func (q Query) String() string { return q.Field + "=" + q.Value }

// ByImportPath builds the query used for tree sources and class lists.
func ByImportPath(importPath string) string {
	return FieldImportPath + "=" + importPath
}

// ParseQuery splits "field=value". The value may itself contain '='.
func ParseQuery(raw string) (Query, error) {
	field, value, ok := strings.Cut(raw, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return Query{}, ferrors.ValidationError("catalog query must be field=value").
			WithContext("query", raw).
			WithCause(ErrInvalidQuery).
			Build()
	}
	switch field {
	case FieldImportPath, FieldName, FieldID:
	default:
		return Query{}, ferrors.ValidationError(fmt.Sprintf("unsupported catalog query field %q", field)).
			WithContext("query", raw).
			WithCause(ErrInvalidQuery).
			Build()
	}
	return Query{Field: field, Value: value}, nil
}

func notFound(kind string, q Query) error {
	return ferrors.NotFoundError(kind+" record not found").
		WithContext("identifier", q.Value).
		WithContext("query", q.String()).
		WithCause(ErrRecordNotFound).
		Build()
}
