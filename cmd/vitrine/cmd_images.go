package main

import (
	"fmt"
	"text/tabwriter"
	"vitrine/internal/imagesrc"
)

type ImagesCmd struct {
	ID     int  `arg:"" help:"Piece id"`
	SrcSet bool `help:"Output only the srcset attribute value"`
}

func (cmd *ImagesCmd) Run(g *Globals) error {
	it, err := findItem(g, cmd.ID)
	if err != nil {
		return err
	}

	set := imagesrc.Sources(it.ImageURL)
	if cmd.SrcSet {
		fmt.Fprintln(g.Out, set.SrcSet())
		return nil
	}

	fmt.Fprintf(g.Out, "Default: %s\n", set.Default)
	if len(set.Candidates) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WIDTH\tURL")
	fmt.Fprintln(w, "-----\t---")
	for _, c := range set.Candidates {
		fmt.Fprintf(w, "%dw\t%s\n", c.Width, c.URL)
	}
	return w.Flush()
}
