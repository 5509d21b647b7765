package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerBase/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("beerbase"), kong.Description("BeerBase serves a catalog of beers loaded from a seed file."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
