package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"vitrine/internal/filter"
)

type CategoriesCmd struct{}

func (cmd *CategoriesCmd) Run(g *Globals) error {
	items := g.App.Catalog().List()
	favs := favoriteLookup(g)

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tPIECES")
	fmt.Fprintln(w, "--------\t------")
	for _, c := range filter.Categories() {
		n := len(filter.Apply(items, filter.Selection{Category: c}, favs))
		fmt.Fprintf(w, "%s\t%d\n", c, n)
	}
	return w.Flush()
}

type ColorsCmd struct{}

func (cmd *ColorsCmd) Run(g *Globals) error {
	m := g.App.Matcher()
	pipeline := filter.NewPipeline(m)
	items := g.App.Catalog().List()

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLOR\tPIECES\tKEYWORDS")
	fmt.Fprintln(w, "-----\t------\t--------")
	for _, c := range filter.Colors() {
		n := len(pipeline.Run(items, filter.Selection{Color: c}, nil).Items)
		fmt.Fprintf(w, "%s\t%d\t%s\n", c, n, strings.Join(m.Keywords(c), ", "))
	}
	return w.Flush()
}

type favoriteFunc func(int) bool

func (f favoriteFunc) IsFavorite(id int) bool { return f(id) }

func favoriteLookup(g *Globals) filter.Favorites {
	return favoriteFunc(g.App.IsFavorite)
}
