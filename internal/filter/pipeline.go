package filter

import (
	"strings"
	"vitrine/internal/catalog"
)

type Favorites interface {
	IsFavorite(id int) bool
}

type noFavorites struct{}

func (noFavorites) IsFavorite(int) bool { return false }

// Result is the visible subset of the catalog. Active distinguishes an empty
// result caused by filtering from an empty catalog with no filters applied.
type Result struct {
	Items  []catalog.Item
	Active bool
}

func (r Result) Empty() bool {
	return len(r.Items) == 0
}

type Pipeline struct {
	matcher *Matcher
}

func NewPipeline(m *Matcher) *Pipeline {
	if m == nil {
		m = NewMatcher(nil)
	}
	return &Pipeline{matcher: m}
}

// Run filters items by category, then colour, then search term. The output
// keeps catalog order and shares no backing array with items.
func (p *Pipeline) Run(items []catalog.Item, sel Selection, favs Favorites) Result {
	sel = sel.normalized()
	if favs == nil {
		favs = noFavorites{}
	}

	stage := filterItems(items, func(it catalog.Item) bool {
		return matchesCategory(it, sel.Category, favs)
	})
	stage = filterItems(stage, func(it catalog.Item) bool {
		return p.matcher.Matches(it, sel.Color)
	})
	stage = filterItems(stage, func(it catalog.Item) bool {
		return matchesSearch(it, sel.Search)
	})

	return Result{Items: stage, Active: sel.Active()}
}

// Matches reports whether a single item passes all three filters.
func (p *Pipeline) Matches(it catalog.Item, sel Selection, favs Favorites) bool {
	sel = sel.normalized()
	if favs == nil {
		favs = noFavorites{}
	}
	return matchesCategory(it, sel.Category, favs) &&
		p.matcher.Matches(it, sel.Color) &&
		matchesSearch(it, sel.Search)
}

// Apply runs the pipeline with the default colour keywords.
func Apply(items []catalog.Item, sel Selection, favs Favorites) []catalog.Item {
	return NewPipeline(nil).Run(items, sel, favs).Items
}

func filterItems(items []catalog.Item, keep func(catalog.Item) bool) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func matchesCategory(it catalog.Item, category Category, favs Favorites) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryFavorites:
		return favs.IsFavorite(it.ID)
	default:
		return it.HasCategory(string(category))
	}
}

func matchesSearch(it catalog.Item, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(it.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Designer), term) {
		return true
	}
	for _, note := range it.Notes.All() {
		if strings.Contains(strings.ToLower(note), term) {
			return true
		}
	}
	return false
}
