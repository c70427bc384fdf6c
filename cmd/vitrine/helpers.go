package main

import (
	"errors"
	"fmt"
	"strings"
	"vitrine/cmd/vitrine/render"
	"vitrine/internal/catalog"
	"vitrine/internal/deeplink"
	"vitrine/internal/filter"
)

func findItem(g *Globals, id int) (catalog.Item, error) {
	it, err := g.App.Catalog().Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return catalog.Item{}, fmt.Errorf("no piece with id %d", id)
	}
	return it, err
}

func listView(g *Globals, result filter.Result, empty filter.EmptyState) render.ItemListView {
	view := render.ItemListView{
		Items:      make([]render.ItemListItem, 0, len(result.Items)),
		EmptyTitle: empty.Title,
		EmptyHint:  empty.Hint,
	}
	for _, it := range result.Items {
		view.Items = append(view.Items, render.ItemListItem{
			ID:         it.ID,
			Name:       it.Name,
			Designer:   it.Designer,
			Year:       it.Year,
			Categories: it.Categories,
			Favorite:   g.App.IsFavorite(it.ID),
		})
	}
	return view
}

func detailView(g *Globals, it catalog.Item) render.ItemDetailView {
	return render.ItemDetailView{
		ID:         it.ID,
		Name:       it.Name,
		Designer:   it.Designer,
		Year:       it.Year,
		Categories: it.Categories,
		Favorite:   g.App.IsFavorite(it.ID),
		Top:        it.Notes.Top,
		Heart:      it.Notes.Heart,
		Base:       it.Notes.Base,
		Story:      it.Story,
		ShareURL:   deeplink.ShareURL(g.ShareBase, it.ID),
	}
}

func selectionFromFlags(category, color, query string) (filter.Selection, error) {
	cat, err := filter.ParseCategory(category)
	if err != nil {
		return filter.Selection{}, err
	}
	col, err := filter.ParseColor(color)
	if err != nil {
		return filter.Selection{}, err
	}
	return filter.Selection{Category: cat, Color: col, Search: query}, nil
}

func printList(g *Globals) {
	view := listView(g, g.App.Visible(), g.App.EmptyMessage())
	fmt.Fprint(g.Out, g.Render.RenderItemList(view))
}

// fragmentOf accepts either a full share URL or a bare fragment.
func fragmentOf(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[i:]
	}
	return link
}
