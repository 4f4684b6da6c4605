package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/refdocs/cmd/refdocs/commands"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("refdocs"),
		kong.Description("Render reference documentation pages from introspected class metadata."),
		kong.UsageOnError(),
		commands.Vars(version.String()),
		kong.Bind(&cli),
	)

	err := ctx.Run(&commands.Global{Stdout: os.Stdout})
	os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
}
