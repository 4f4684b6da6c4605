package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyEntry           = "entry"
	KeyIndex           = "index"
	KeyBuilder         = "builder"
	KeySection         = "section"
	KeyPath            = "path"
	KeyFile            = "file"
	KeyClass           = "class"
	KeyIdentifier      = "identifier"
	KeyNavOrder        = "nav_order"
	KeyChildEntryCount = "child_entry_count"
	KeyCount           = "count"
	KeyDurationMS      = "duration_ms"
	KeyError           = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Entry(title string) slog.Attr    { return slog.String(KeyEntry, title) }
func Index(i int) slog.Attr           { return slog.Int(KeyIndex, i) }
func Builder(id string) slog.Attr     { return slog.String(KeyBuilder, id) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Class(c string) slog.Attr        { return slog.String(KeyClass, c) }
func Identifier(id string) slog.Attr  { return slog.String(KeyIdentifier, id) }
func NavOrder(n int) slog.Attr        { return slog.Int(KeyNavOrder, n) }
func ChildEntryCount(n int) slog.Attr { return slog.Int(KeyChildEntryCount, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
