package main

import (
	"fmt"
	"vitrine/internal/filter"
)

type ListCmd struct {
	Category string `short:"c" help:"Category (All, Favorites, Floral, ...)"`
	Color    string `short:"C" help:"Color tag (Any, Gold, Black, ...)"`
	Query    string `short:"q" help:"Match name, designer or a note"`
	Names    bool   `short:"n" help:"Output only piece names (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	sel, err := selectionFromFlags(cmd.Category, cmd.Color, cmd.Query)
	if err != nil {
		return err
	}
	g.App.SetSelection(sel)

	if cmd.Names {
		for _, it := range g.App.Visible().Items {
			fmt.Fprintln(g.Out, it.Name)
		}
		return nil
	}

	printList(g)
	return nil
}

type FavsCmd struct{}

func (cmd *FavsCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	g.App.ResetFilters()
	g.App.SetCategory(filter.CategoryFavorites)
	printList(g)
	return nil
}
