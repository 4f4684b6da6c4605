package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/config"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
)

const testDump = `
classes:
  - import_path: clearskies.cursors.Cursor
    name: Cursor
    doc: Base cursor.
  - import_path: clearskies.cursors.Memory
    name: Memory
    doc: Keeps rows in memory.
    init:
      all_args: [self, name]
`

const testTree = `
tree:
  - title: Cursors
    source: clearskies.cursors.Cursor
    builder: clearskies_doc_builder.builders.Module
    classes: [clearskies.cursors.Memory]
  - title: Zebra
    parent: Cursors
    source: clearskies.cursors.Memory
    builder: clearskies_doc_builder.builders.SingleClass
  - title: Apple
    parent: Cursors
    source: clearskies.cursors.Memory
    builder: clearskies_doc_builder.builders.SingleClass
`

type fixture struct {
	dir        string
	configPath string
	dumpPath   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:        dir,
		configPath: filepath.Join(dir, config.DefaultPath),
		dumpPath:   filepath.Join(dir, "metadata.yaml"),
	}
	require.NoError(t, os.WriteFile(f.dumpPath, []byte(testDump), 0o600))
	cfg := "project_root: " + dir + "\ncatalog:\n  path: " + f.dumpPath + "\n" + testTree
	require.NoError(t, os.WriteFile(f.configPath, []byte(cfg), 0o600))
	return f
}

func parse(t *testing.T, args ...string) (*kong.Context, *CLI) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, Vars("test"), kong.Bind(&cli))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx, &cli
}

func TestCLI_Build(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	ctx, _ := parse(t, "-c", f.configPath, "build", "--metrics-file", filepath.Join(f.dir, "refdocs.prom"))
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))

	require.Contains(t, out.String(), "Wrote 4 pages for 3 entries")
	require.FileExists(t, filepath.Join(f.dir, "docs", "cursors", "index.md"))
	require.FileExists(t, filepath.Join(f.dir, "docs", "cursors", "apple.md"))
	require.FileExists(t, filepath.Join(f.dir, "refdocs.prom"))
}

func TestCLI_BuildFromSQLiteCatalog(t *testing.T) {
	f := newFixture(t)
	store := filepath.Join(f.dir, "catalog.db")

	ctx, _ := parse(t, "catalog", "import", f.dumpPath, store)
	var out bytes.Buffer
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))
	require.Contains(t, out.String(), "holds 2 classes and 0 modules")

	ctx, _ = parse(t, "-c", f.configPath, "build", "--catalog", store)
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))
	require.FileExists(t, filepath.Join(f.dir, "docs", "cursors", "memory.md"))
}

func TestCLI_BuildMissingRecordExitCode(t *testing.T) {
	f := newFixture(t)
	cfg, err := config.Load(f.configPath)
	require.NoError(t, err)
	cfg.Tree = append(cfg.Tree, navplan.Entry{
		Title:   "Gone",
		Builder: "clearskies_doc_builder.builders.SingleClass",
		Source:  "clearskies.gone.Gone",
	})

	_, err = RunBuild(context.Background(), cfg, "", "")
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)

	adapter := ferrors.NewCLIErrorAdapter(false, slog.Default())
	require.Equal(t, 11, adapter.ExitCodeFor(err))
	require.Contains(t, adapter.FormatError(err), `(identifier "clearskies.gone.Gone") in tree entry "Gone"`)
}

func TestRunBuild_RequiresCatalog(t *testing.T) {
	cfg, err := config.Parse([]byte("tree: []\n"), "test")
	require.NoError(t, err)

	_, err = RunBuild(context.Background(), cfg, t.TempDir(), "")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestCLI_PlanText(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	ctx, _ := parse(t, "-c", f.configPath, "plan")
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	require.Contains(t, string(lines[0]), "NAV_ORDER")
	require.Regexp(t, `^0\s+Cursors\s+-\s+submodule\s+2\s+2$`, string(lines[1]))
	require.Regexp(t, `^1\s+Zebra\s+Cursors\s+class\s+2\s+0$`, string(lines[2]))
	require.Regexp(t, `^2\s+Apple\s+Cursors\s+class\s+1\s+0$`, string(lines[3]))
}

func TestWritePlan_YAML(t *testing.T) {
	plan := navplan.Compute([]navplan.Entry{
		{Title: "A", Builder: "x.Other"},
		{Title: "B", Parent: "A", Builder: "x.Module"},
	})
	var out bytes.Buffer
	require.NoError(t, WritePlan(&out, plan, "yaml"))
	require.Equal(t, `- index: 0
  title: A
  category: other
  nav_order: 2
  child_entry_count: 1
- index: 1
  title: B
  parent: A
  category: submodule
  nav_order: 1
  child_entry_count: 0
`, out.String())
}

func TestWritePlan_UnknownFormat(t *testing.T) {
	err := WritePlan(&bytes.Buffer{}, navplan.Compute(nil), "json")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestCLI_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refdocs.yaml")
	var out bytes.Buffer

	ctx, _ := parse(t, "-c", path, "init")
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))
	require.FileExists(t, path)

	ctx, _ = parse(t, "-c", path, "init")
	require.Error(t, ctx.Run(&Global{Stdout: &out}))

	ctx, _ = parse(t, "-c", path, "init", "--force")
	require.NoError(t, ctx.Run(&Global{Stdout: &out}))
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv(LogLevelEnv, "warn")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))

	t.Setenv(LogLevelEnv, "loud")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
}
