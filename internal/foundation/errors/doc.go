// Package errors provides the classified error primitives used across refdocs.
//
// Every failure a reference build can hit (missing catalog record, unknown
// builder, unwritable docspace) is a ClassifiedError carrying a category, a
// severity and a context map naming the offending tree entry and identifier.
// The CLI adapter turns the category into a process exit code.
//
// Example usage:
//
//	err := errors.NotFoundError("class record not found").
//		WithContext("identifier", importPath).
//		WithCause(catalog.ErrRecordNotFound).
//		Build()
package errors
