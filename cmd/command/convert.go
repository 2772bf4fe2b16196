package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rakeshgangwar/flowgraph"
	"github.com/urfave/cli/v2"
)

var Convert = cli.Command{
	Name:  "convert",
	Usage: "convert an editor graph export into an execution graph document",
	Flags: []cli.Flag{
		&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "the editor graph file to convert", Required: true},
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "the workflow display name"},
		&cli.BoolFlag{Name: "reverse", Aliases: []string{"r"}, Usage: "convert an execution graph document back into an editor graph"},
	},
	Action: func(c *cli.Context) error {
		data, err := os.ReadFile(c.Path("file"))
		if err != nil {
			return err
		}

		if c.Bool("reverse") {
			doc, err := flowgraph.Unmarshal(data)
			if err != nil {
				return err
			}

			nodes, edges := flowgraph.ToEditorGraph(doc.Nodes, doc.Connections)
			out := flowgraph.EditorDocument{Name: doc.Name, Nodes: nodes, Edges: edges}
			return printJSON(out)
		}

		doc, err := flowgraph.UnmarshalEditor(data)
		if err != nil {
			return err
		}

		name := c.String("name")
		if name == "" {
			name = doc.Name
		}

		nodes, connections := flowgraph.ToExecutionGraph(doc.Nodes, doc.Edges)
		out := flowgraph.Document{Name: name, Nodes: nodes, Connections: connections}
		return printJSON(out)
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
