package proptest

import (
	"slices"
	"strings"
	"vitrine/internal/app"
	"vitrine/internal/catalog"
	"vitrine/internal/deeplink"
	"vitrine/internal/filter"

	"pgregory.net/rapid"
)

// controllerModel is a plain re-statement of the browsing rules used as an
// oracle for app.Controller.
type controllerModel struct {
	items     []catalog.Item
	favorites map[int]bool
	selection filter.Selection
	selected  int
	fragment  string
}

func newControllerModel(items []catalog.Item, fragment string) *controllerModel {
	return &controllerModel{
		items:     items,
		favorites: make(map[int]bool),
		selection: filter.DefaultSelection(),
		fragment:  fragment,
	}
}

func (m *controllerModel) exists(id int) bool {
	return slices.ContainsFunc(m.items, func(it catalog.Item) bool { return it.ID == id })
}

func (m *controllerModel) visible() []int {
	keywords := filter.DefaultKeywords()
	search := strings.ToLower(strings.TrimSpace(m.selection.Search))

	var ids []int
	for _, it := range m.items {
		switch m.selection.Category {
		case filter.CategoryAll:
		case filter.CategoryFavorites:
			if !m.favorites[it.ID] {
				continue
			}
		default:
			if !slices.Contains(it.Categories, string(m.selection.Category)) {
				continue
			}
		}

		if m.selection.Color != filter.ColorAny {
			haystack := strings.ToLower(it.Name + " " + it.Story)
			if !slices.ContainsFunc(keywords[m.selection.Color], func(w string) bool {
				return strings.Contains(haystack, w)
			}) {
				continue
			}
		}

		if search != "" {
			fields := append([]string{it.Name, it.Designer}, it.Notes.All()...)
			if !slices.ContainsFunc(fields, func(f string) bool {
				return strings.Contains(strings.ToLower(f), search)
			}) {
				continue
			}
		}

		ids = append(ids, it.ID)
	}
	return ids
}

func (m *controllerModel) favoriteIDs() []int {
	var ids []int
	for id, on := range m.favorites {
		if on {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// CheckedController applies every intent to both the real controller and the
// model, then compares the observable state.
type CheckedController struct {
	real  *app.Controller
	model *controllerModel
	items []catalog.Item
	t     *rapid.T
}

func NewCheckedController(t *rapid.T, ctrl *app.Controller, items []catalog.Item) *CheckedController {
	return &CheckedController{
		real:  ctrl,
		model: newControllerModel(items, ctrl.Location().Fragment()),
		items: items,
		t:     t,
	}
}

func (c *CheckedController) Model() *controllerModel {
	return c.model
}

func (c *CheckedController) SetCategory(category filter.Category) {
	c.real.SetCategory(category)
	c.model.selection.Category = category
	c.check()
}

func (c *CheckedController) SetColor(color filter.Color) {
	c.real.SetColor(color)
	c.model.selection.Color = color
	c.check()
}

func (c *CheckedController) SetSearch(term string) {
	c.real.SetSearch(term)
	c.model.selection.Search = term
	c.check()
}

func (c *CheckedController) ResetFilters() {
	c.real.ResetFilters()
	c.model.selection = filter.DefaultSelection()
	c.check()
}

func (c *CheckedController) ToggleFavorite(id int) {
	got := c.real.ToggleFavorite(id)
	c.model.favorites[id] = !c.model.favorites[id]
	if got != c.model.favorites[id] {
		c.t.Fatalf("ToggleFavorite(%d) divergence: real=%v model=%v", id, got, c.model.favorites[id])
	}
	c.check()
}

func (c *CheckedController) Select(id int) {
	got := c.real.Select(id)
	want := c.model.exists(id)
	if got != want {
		c.t.Fatalf("Select(%d) divergence: real=%v model=%v", id, got, want)
	}
	if want {
		c.model.selected = id
	}
	c.check()
}

func (c *CheckedController) HandleFragment(fragment string) {
	_, got := c.real.HandleFragment(fragment)
	id, ok := deeplink.Decode(fragment)
	want := fragment != "" && ok && c.model.exists(id)
	if got != want {
		c.t.Fatalf("HandleFragment(%q) divergence: real=%v model=%v", fragment, got, want)
	}
	if want {
		c.model.selected = id
		c.model.fragment = fragment
	}
	c.check()
}

func (c *CheckedController) CloseDetail() {
	c.real.CloseDetail()
	c.model.selected = 0
	c.model.fragment = ""
	if f := c.real.Location().Fragment(); f != "" {
		c.t.Fatalf("[%s] violated: fragment %q left after close", invCloseClearsFragment, f)
	}
	c.check()
}

func (c *CheckedController) check() {
	c.t.Helper()
	verifyControllerInvariants(c.t, c.real, c.items)

	assertSameIDs(c.t, c.model.visible(), itemIDs(c.real.Visible().Items))
	assertSameIDs(c.t, c.model.favoriteIDs(), c.real.Favorites())

	it, open := c.real.Selected()
	switch {
	case open && it.ID != c.model.selected:
		c.t.Fatalf("selected divergence: real=%d model=%d", it.ID, c.model.selected)
	case !open && c.model.selected != 0:
		c.t.Fatalf("selected divergence: real=none model=%d", c.model.selected)
	}

	if got := c.real.Location().Fragment(); got != c.model.fragment {
		c.t.Fatalf("fragment divergence: real=%q model=%q", got, c.model.fragment)
	}
}
