package main

import (
	"log"
	"os"

	"github.com/rakeshgangwar/flowgraph/cmd/command"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "flowgraph",
		Usage: "convert, validate and render workflow graphs",
		Commands: []*cli.Command{
			&command.Convert,
			&command.Validate,
			&command.Render,
			&command.Lint,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
