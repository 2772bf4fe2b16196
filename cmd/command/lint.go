package command

import (
	"encoding/json"
	"os"

	"github.com/common-fate/clio"
	"github.com/rakeshgangwar/flowgraph"
	"github.com/rakeshgangwar/flowgraph/pkg/paramcel"
	"github.com/urfave/cli/v2"
)

var Lint = cli.Command{
	Name:  "lint",
	Usage: "statically check node parameter expressions",
	Flags: []cli.Flag{
		&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "the workflow document to lint", Required: true},
		&cli.PathFlag{Name: "schema", Aliases: []string{"s"}, Usage: "the workflow input schema, in JSON schema format"},
	},
	Action: func(c *cli.Context) error {
		data, err := os.ReadFile(c.Path("file"))
		if err != nil {
			return err
		}

		doc, err := flowgraph.Unmarshal(data)
		if err != nil {
			return err
		}

		var schema *paramcel.Schema
		if schemaFile := c.Path("schema"); schemaFile != "" {
			schemaBytes, err := os.ReadFile(schemaFile)
			if err != nil {
				return err
			}
			schema = &paramcel.Schema{}
			err = json.Unmarshal(schemaBytes, schema)
			if err != nil {
				return err
			}
		}

		linter := flowgraph.Linter{InputSchema: schema}
		findings, err := linter.Lint(doc.Nodes)
		if err != nil {
			return err
		}

		for _, f := range findings {
			clio.Warn(f.String())
		}
		if len(findings) == 0 {
			clio.Success("no lint findings")
		}
		return nil
	},
}
