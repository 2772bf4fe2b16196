package command

import (
	"fmt"
	"os"

	"github.com/common-fate/clio"
	"github.com/rakeshgangwar/flowgraph"
	"github.com/urfave/cli/v2"
)

var Validate = cli.Command{
	Name:  "validate",
	Usage: "statically validate a workflow document",
	Flags: []cli.Flag{
		&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "the workflow document to validate", Required: true},
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

		res := flowgraph.Validate(doc.Name, doc.Nodes, doc.Connections)

		for _, w := range res.Warnings {
			clio.Warn(w.String())
		}
		for _, e := range res.Errors {
			clio.Error(e.String())
		}

		if !res.Valid {
			return fmt.Errorf("workflow is invalid: %d error(s)", len(res.Errors))
		}

		clio.Success("workflow is valid")
		return nil
	},
}
