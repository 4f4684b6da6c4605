// Package docspace prepares the output root that builders write into.
//
// The root is always returned to the caller and threaded explicitly through
// the build; nothing here keeps a process-wide notion of the current root.
package docspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
)

// DefaultDir is the doc root below the project root when none is configured.
const DefaultDir = "docs"

// Prepare resolves dir against projectRoot, optionally clears it, and makes
// sure it exists. It returns the absolute doc root.
//
// Clearing removes the folder's contents but keeps the folder itself so
// servers or watchers holding it open are not confused. A doc root that is
// the project root or one of its ancestors is never cleared.
func Prepare(projectRoot, dir string, clean bool) (string, error) {
	if projectRoot == "" {
		projectRoot = "."
	}
	if dir == "" {
		dir = DefaultDir
	}
	root := dir
	if !filepath.IsAbs(root) {
		root = filepath.Join(projectRoot, dir)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", fsError(err, "failed to resolve doc root", root)
	}

	if clean {
		project, err := filepath.Abs(projectRoot)
		if err != nil {
			return "", fsError(err, "failed to resolve project root", projectRoot)
		}
		if contains(root, project) {
			return "", ferrors.ConfigError("refusing to clear a doc root that contains the project root; set output.directory").
				WithContext("path", root).
				WithContext("project_root", project).
				Build()
		}
		if err := clearDir(root); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(root, 0o750); err != nil {
		return "", fsError(err, "failed to create doc root", root)
	}
	slog.Info("Prepared doc root", logfields.Path(root))
	return root, nil
}

// contains reports whether path is dir itself or lies below it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func clearDir(root string) error {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fsError(err, "failed to read doc root", root)
	}
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if err := os.RemoveAll(path); err != nil {
			return fsError(err, "failed to clear doc root", path)
		}
	}
	slog.Debug("Cleared doc root", logfields.Path(root), logfields.Count(len(entries)))
	return nil
}

func fsError(err error, msg, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, msg).
		Fatal().
		WithContext("path", path).
		Build()
}
