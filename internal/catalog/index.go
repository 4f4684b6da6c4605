package catalog

// Record is anything the catalog can filter by field.
type Record interface {
	Field(name string) (string, bool)
}

// Finder resolves a field-filter query to a single record.
type Finder[T Record] interface {
	Find(query string) (T, error)
}

// ClassSource and ModuleSource are the lookups builders depend on.
type (
	ClassSource  = Finder[*Class]
	ModuleSource = Finder[*Module]
)

// Index is an in-memory Finder. The first record in insertion order wins when
// several share a field value.
type Index[T Record] struct {
	kind    string
	records []T
	byField map[string]map[string]int
}

// NewIndex indexes records for the queryable fields.
func NewIndex[T Record](kind string, records []T) *Index[T] {
	idx := &Index[T]{
		kind:    kind,
		records: records,
		byField: map[string]map[string]int{},
	}
	for _, field := range []string{FieldImportPath, FieldName, FieldID} {
		values := make(map[string]int, len(records))
		for i, r := range records {
			v, _ := r.Field(field)
			if v == "" {
				continue
			}
			if _, dup := values[v]; !dup {
				values[v] = i
			}
		}
		idx.byField[field] = values
	}
	return idx
}

// Find implements Finder.
func (idx *Index[T]) Find(query string) (T, error) {
	var zero T
	q, err := ParseQuery(query)
	if err != nil {
		return zero, err
	}
	i, ok := idx.byField[q.Field][q.Value]
	if !ok {
		return zero, notFound(idx.kind, q)
	}
	return idx.records[i], nil
}

// Len returns the number of indexed records.
func (idx *Index[T]) Len() int { return len(idx.records) }

// All returns the indexed records in insertion order.
func (idx *Index[T]) All() []T { return idx.records }
