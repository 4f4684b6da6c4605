package catalog

import "errors"

var (
	// ErrRecordNotFound indicates a query matched no record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidQuery indicates a query was not of the form field=value or named an unsupported field.
	ErrInvalidQuery = errors.New("invalid catalog query")
)
