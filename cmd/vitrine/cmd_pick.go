package main

import (
	"errors"
	"fmt"
	"vitrine/internal/filter"
	"vitrine/internal/ui"

	"github.com/charmbracelet/huh"
)

type PickCmd struct {
	Names bool `short:"n" help:"Output only piece names (one per line)"`
}

func (cmd *PickCmd) Run(g *Globals) error {
	sel := g.App.Selection()
	category, color, search := sel.Category, sel.Color, sel.Search

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[filter.Category]().
				Title("Category").
				Options(huh.NewOptions(filter.Categories()...)...).
				Value(&category),
			huh.NewSelect[filter.Color]().
				Title("Color").
				Options(huh.NewOptions(filter.Colors()...)...).
				Value(&color),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Name, designer or a single note. Leave empty to skip").
				Value(&search),
		),
	).WithTheme(ui.FormTheme())

	if err := form.Run(); err != nil {
		return handleFormError(err)
	}

	g.App.SetSelection(filter.Selection{Category: category, Color: color, Search: search})
	result := g.App.Visible()

	if cmd.Names {
		for _, it := range result.Items {
			fmt.Fprintln(g.Out, it.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, ui.RenderSelection(g.App.Selection(), len(result.Items)))
	fmt.Fprintln(g.Out)
	printList(g)
	return nil
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
