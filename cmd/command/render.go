package command

import (
	"bytes"
	"os"

	"github.com/common-fate/clio"
	"github.com/dominikbraun/graph/draw"
	"github.com/goccy/go-graphviz"
	"github.com/rakeshgangwar/flowgraph"
	"github.com/urfave/cli/v2"
)

var Render = cli.Command{
	Name:  "render",
	Usage: "render a workflow document as DOT, or as an SVG image",
	Flags: []cli.Flag{
		&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "the workflow document to render", Required: true},
		&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Usage: "write an SVG image to this path instead of printing DOT"},
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

		g, err := flowgraph.NewGraph(doc.Nodes, doc.Connections)
		if err != nil {
			return err
		}

		outfile := c.Path("out")
		if outfile == "" {
			return draw.DOT(g.G, os.Stdout)
		}

		var buf bytes.Buffer
		err = draw.DOT(g.G, &buf)
		if err != nil {
			return err
		}

		parsed, err := graphviz.ParseBytes(buf.Bytes())
		if err != nil {
			return err
		}
		gv := graphviz.New()

		err = gv.RenderFilename(parsed, graphviz.SVG, outfile)
		if err != nil {
			return err
		}

		clio.Successf("rendered %s", outfile)
		return nil
	},
}
