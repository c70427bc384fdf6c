package filter

type EmptyState struct {
	Title string
	Hint  string
}

// EmptyMessage returns the wording shown when a selection matches nothing.
// The favorites view gets its own copy so an empty collection does not read
// like a failed search.
func EmptyMessage(sel Selection) EmptyState {
	if sel.normalized().Category == CategoryFavorites {
		return EmptyState{
			Title: "Your favorites collection is empty",
			Hint:  "Mark a piece with the heart to add it here.",
		}
	}
	return EmptyState{
		Title: "No pieces found",
		Hint:  "Try adjusting your search or filters.",
	}
}
