// Package catalog serves introspected class and module records to the page
// builders.
//
// Records are looked up with field-filter queries of the form
// "import_path=<value>" (also "name=" and "id="). Two stores are provided: an
// in-memory index loaded from a YAML metadata dump, and a SQLite database
// holding the same records. A missing record is always an error naming the
// identifier that failed to resolve.
package catalog
