package proptest

import (
	"vitrine/internal/app"
	"vitrine/internal/catalog"
	"vitrine/internal/filter"

	"pgregory.net/rapid"
)

const (
	invVisibleSubsequence  = "visible items keep catalog order"
	invFavoritesViewExact  = "favorites view equals favorited catalog items"
	invSelectedExists      = "open detail view shows a catalog item"
	invColorIgnoresNotes   = "colour match ignores notes and image"
	invFiltersConjunctive  = "combined filters equal the intersection of each"
	invToggleInvolution    = "toggling twice restores membership"
	invPersistRoundTrip    = "persisted favorites reload unchanged"
	invMalformedLoadsEmpty = "malformed favorites load as empty"
	invFragmentRoundTrip   = "encoded fragments decode to the same id"
	invCloseClearsFragment = "closing the detail view clears the fragment"
)

func verifyControllerInvariants(t *rapid.T, ctrl *app.Controller, items []catalog.Item) {
	t.Helper()

	visible := ctrl.Visible().Items
	if !isSubsequence(visible, items) {
		t.Fatalf("[%s] violated: visible %v, catalog %v", invVisibleSubsequence, itemIDs(visible), itemIDs(items))
	}

	if ctrl.Selection().Category == filter.CategoryFavorites {
		for _, it := range visible {
			if !ctrl.IsFavorite(it.ID) {
				t.Fatalf("[%s] violated: %d visible but not favorite", invFavoritesViewExact, it.ID)
			}
		}
	}

	if it, open := ctrl.Selected(); open && !ctrl.Catalog().Contains(it.ID) {
		t.Fatalf("[%s] violated: selected %d", invSelectedExists, it.ID)
	}
}

func isSubsequence(sub, seq []catalog.Item) bool {
	j := 0
	for _, it := range seq {
		if j < len(sub) && sub[j].ID == it.ID {
			j++
		}
	}
	return j == len(sub)
}

func itemIDs(items []catalog.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
