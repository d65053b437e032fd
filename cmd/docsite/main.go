package main

import (
	"github.com/alecthomas/kong"

	"github.com/uga-caes/docsite/cmd/docsite/commands"
	"github.com/uga-caes/docsite/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docsite"),
		kong.Description("Build and serve a static index of crawled documentation sites."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
