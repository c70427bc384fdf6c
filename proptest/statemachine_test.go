package proptest

import (
	"testing"
	"vitrine/internal/deeplink"

	"pgregory.net/rapid"
)

func TestProperty_StateMachine_ControllerIntents(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		fragment := rapid.OneOf(rapid.Just(""), fragmentGen()).Draw(h.T, "startFragment")
		checked := NewCheckedController(h.T, h.NewController(nil, fragment), h.Items)

		h.T.Repeat(map[string]func(*rapid.T){
			"setCategory": func(rt *rapid.T) {
				checked.SetCategory(categoryGen().Draw(rt, "category"))
			},

			"setColor": func(rt *rapid.T) {
				checked.SetColor(colorGen().Draw(rt, "color"))
			},

			"setSearch": func(rt *rapid.T) {
				checked.SetSearch(searchGen().Draw(rt, "search"))
			},

			"reset": func(rt *rapid.T) {
				checked.ResetFilters()
			},

			"toggleFavorite": func(rt *rapid.T) {
				checked.ToggleFavorite(h.DrawID(rt, "favoriteID"))
			},

			"select": func(rt *rapid.T) {
				checked.Select(h.DrawID(rt, "selectID"))
			},

			"openLink": func(rt *rapid.T) {
				if rapid.Bool().Draw(rt, "wellFormed") {
					checked.HandleFragment(deeplink.Encode(h.DrawID(rt, "linkID")))
					return
				}
				checked.HandleFragment(fragmentGen().Draw(rt, "fragment"))
			},

			"close": func(rt *rapid.T) {
				checked.CloseDetail()
			},
		})
	})
}
