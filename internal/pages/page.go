package pages

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inful/mdfp"

	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/frontmatter"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
)

// Page is a fully assembled page ready to be written.
type Page struct {
	Header Header
	Body   string
}

// Render serializes the page: frontmatter, then body.
func Render(p Page, opts Options) ([]byte, error) {
	fields := p.Header.Fields(opts)
	if opts.PageIDs && p.Header.Permalink != "" {
		fields = fields.Set(uidField, UID(p.Header.Permalink))
	}
	if opts.Fingerprint {
		fp, err := Fingerprint(fields, p.Body)
		if err != nil {
			return nil, err
		}
		fields = fields.Set(mdfp.FingerprintField, fp)
	}
	fm, err := frontmatter.Serialize(fields)
	if err != nil {
		return nil, err
	}
	return frontmatter.Join(fm, []byte(p.Body)), nil
}

// Write renders p and writes it to path, creating parent folders.
func Write(path string, p Page, opts Options) error {
	content, err := Render(p, opts)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryBuild, "failed to render page").
			Fatal().
			WithContext("path", path).
			Build()
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write page").
			Fatal().
			WithContext("path", path).
			Build()
	}
	slog.Debug("Wrote page", logfields.Path(path), logfields.NavOrder(p.Header.EffectiveNavOrder()))
	return nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create section folder").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	return nil
}
