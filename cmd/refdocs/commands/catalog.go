package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
)

// CatalogCmd groups catalog maintenance subcommands.
type CatalogCmd struct {
	Import CatalogImportCmd `cmd:"" help:"Import a YAML metadata dump into a SQLite catalog"`
}

// CatalogImportCmd implements 'catalog import'.
type CatalogImportCmd struct {
	Dump  string `arg:"" help:"YAML metadata dump" type:"existingfile"`
	Store string `arg:"" help:"SQLite catalog to create or update" type:"path"`
}

func (c *CatalogImportCmd) Run(g *Global) error {
	classes, modules, err := ImportCatalog(context.Background(), c.Dump, c.Store)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Catalog %s holds %d classes and %d modules\n", c.Store, classes, modules)
	return nil
}

// ImportCatalog loads dumpPath into the SQLite catalog at storePath and
// returns the resulting record counts. Records with an existing import path
// are replaced.
func ImportCatalog(ctx context.Context, dumpPath, storePath string) (classes, modules int, err error) {
	d, err := catalog.LoadDumpFile(dumpPath)
	if err != nil {
		return 0, 0, err
	}
	store, err := catalog.OpenSQLite(storePath)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = store.Close() }()

	if err := store.Import(ctx, d); err != nil {
		return 0, 0, err
	}
	slog.Info("Imported metadata dump",
		logfields.File(dumpPath),
		logfields.Path(storePath),
		slog.Int("classes", len(d.Classes)),
		slog.Int("modules", len(d.Modules)))
	return store.Count(ctx)
}
