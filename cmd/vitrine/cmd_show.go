package main

import "fmt"

type ShowCmd struct {
	ID int `arg:"" help:"Piece id"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	it, err := findItem(g, cmd.ID)
	if err != nil {
		return err
	}

	g.App.Select(it.ID)
	defer g.App.CloseDetail()

	fmt.Fprint(g.Out, g.Render.RenderItemDetail(detailView(g, it)))
	return nil
}

type OpenCmd struct {
	Link string `arg:"" help:"Share link or fragment such as #item=3"`
}

// Run prints the linked piece. Links that do not resolve print nothing.
func (cmd *OpenCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	it, ok := g.App.HandleFragment(fragmentOf(cmd.Link))
	if !ok {
		return nil
	}
	defer g.App.CloseDetail()

	fmt.Fprint(g.Out, g.Render.RenderItemDetail(detailView(g, it)))
	return nil
}
