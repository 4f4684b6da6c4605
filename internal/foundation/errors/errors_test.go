package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifiedError_BuilderCarriesContext(t *testing.T) {
	cause := stderrors.New("record not found")
	err := NotFoundError("class record not found").
		WithContext("identifier", "pkg.Cursor").
		WithCause(cause).
		Build()

	require.Equal(t, CategoryNotFound, err.Category())
	require.True(t, err.IsFatal())
	require.ErrorIs(t, err, cause)

	id, ok := err.Context().GetString("identifier")
	require.True(t, ok)
	require.Equal(t, "pkg.Cursor", id)
	require.Equal(t, `[not_found:fatal] class record not found (identifier=pkg.Cursor): record not found`, err.Error())
}

func TestClassifiedError_WithContextMapDoesNotMutateOriginal(t *testing.T) {
	base := BuildError("render failed").WithContext("path", "a.md").Build()
	derived := base.WithContextMap(ErrorContext{"entry": "Cursors"})

	_, ok := base.Context().Get("entry")
	require.False(t, ok)
	entry, ok := derived.Context().GetString("entry")
	require.True(t, ok)
	require.Equal(t, "Cursors", entry)
	path, _ := derived.Context().GetString("path")
	require.Equal(t, "a.md", path)
}

func TestAsClassified_FindsWrappedError(t *testing.T) {
	inner := ConfigError("unknown builder").Build()
	wrapped := fmt.Errorf("entry 3: %w", inner)

	classified, ok := AsClassified(wrapped)
	require.True(t, ok)
	require.Same(t, inner, classified)
	require.True(t, HasCategory(wrapped, CategoryConfig))
	require.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestErrorContext_Merge(t *testing.T) {
	a := ErrorContext{"shared": "original", "a": 1}
	b := ErrorContext{"shared": "overridden", "b": 2}

	merged := a.Merge(b)
	require.Equal(t, "overridden", merged["shared"])
	require.Equal(t, 1, merged["a"])
	require.Equal(t, 2, merged["b"])
	require.Equal(t, "original", a["shared"])
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad query").Build(), 2},
		{"config", ConfigError("unknown builder").Build(), 7},
		{"not found", NotFoundError("missing").Build(), 11},
		{"filesystem", FileSystemError("mkdir").Build(), 11},
		{"internal", InternalError("boom").Build(), 10},
		{"wrapped", fmt.Errorf("ctx: %w", ConfigError("x").Build()), 7},
		{"unclassified", stderrors.New("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatErrorNamesEntryAndIdentifier(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)
	err := NotFoundError("class record not found").
		WithContext("identifier", "pkg.Missing").
		WithContext("entry", "Cursors").
		Build()

	require.Equal(t, `Error: class record not found (identifier "pkg.Missing") in tree entry "Cursors"`, adapter.FormatError(err))
	require.Equal(t, "Error: plain", adapter.FormatError(stderrors.New("plain")))
}

func TestCLIErrorAdapter_HandleErrorWritesMessage(t *testing.T) {
	var logs, stderr bytes.Buffer
	adapter := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.stderr = &stderr

	code := adapter.HandleError(ConfigError("unknown builder").WithContext("builder", "x.Nope").Build())
	require.Equal(t, 7, code)
	require.Contains(t, stderr.String(), "unknown builder")
	require.Contains(t, logs.String(), "builder=x.Nope")
}
