package main

import "fmt"

type FavCmd struct {
	ID int `arg:"" help:"Piece id"`
}

func (cmd *FavCmd) Run(g *Globals) error {
	it, err := findItem(g, cmd.ID)
	if err != nil {
		return err
	}

	if g.App.ToggleFavorite(it.ID) {
		fmt.Fprintf(g.Out, "Added to favorites: %s\n", it.Name)
	} else {
		fmt.Fprintf(g.Out, "Removed from favorites: %s\n", it.Name)
	}
	return nil
}
