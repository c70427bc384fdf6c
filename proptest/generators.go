package proptest

import (
	"slices"
	"strings"
	"vitrine/internal/catalog"
	"vitrine/internal/filter"

	"pgregory.net/rapid"
)

var (
	iterDirGen      = rapid.StringMatching(`[a-z]{8}`)
	designerGen     = rapid.StringMatching(`[A-Z][a-z]{2,8} [A-Z][a-z]{2,10}`)
	shortQueryGen   = rapid.StringMatching(`[a-z]{1,4}`)
	plainWordGen    = rapid.SampledFrom([]string{"glass", "flacon", "stopper", "curve", "facet", "atelier", "vessel", "shoulder", "seam"})
	noteWordGen     = rapid.SampledFrom([]string{"rose", "bergamot", "iris", "oud", "vanilla", "musk", "amber", "blackcurrant", "pink pepper", "violet leaf", "neroli"})
	storyWordGen    = rapid.SampledFrom(storyWords())
	categoryNameGen = rapid.SampledFrom(catalogCategoryNames())
)

// storyWords mixes neutral words with every default colour keyword so the
// colour heuristic gets exercised on both sides.
func storyWords() []string {
	words := []string{"glass", "bottle", "hand", "light", "cut", "blown", "carved", "curve"}
	for _, kws := range filter.DefaultKeywords() {
		words = append(words, kws...)
	}
	slices.Sort(words)
	return slices.Compact(words)
}

func catalogCategoryNames() []string {
	var names []string
	for _, c := range filter.Categories() {
		if c != filter.CategoryAll && c != filter.CategoryFavorites {
			names = append(names, string(c))
		}
	}
	return names
}

func nameGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(1, 3).Draw(t, "nameWords")
		words := make([]string, n)
		for i := range words {
			w := rapid.OneOf(storyWordGen, plainWordGen).Draw(t, "nameWord")
			if rapid.Bool().Draw(t, "capitalize") {
				w = strings.ToUpper(w[:1]) + w[1:]
			}
			words[i] = w
		}
		return strings.Join(words, " ")
	})
}

func storyGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		words := rapid.SliceOfN(storyWordGen, 0, 12).Draw(t, "storyWords")
		return strings.Join(words, " ")
	})
}

func notesGen() *rapid.Generator[catalog.Notes] {
	return rapid.Custom(func(t *rapid.T) catalog.Notes {
		return catalog.Notes{
			Top:   rapid.SliceOfN(noteWordGen, 0, 3).Draw(t, "top"),
			Heart: rapid.SliceOfN(noteWordGen, 0, 3).Draw(t, "heart"),
			Base:  rapid.SliceOfN(noteWordGen, 0, 3).Draw(t, "base"),
		}
	})
}

func categoriesGen() *rapid.Generator[[]string] {
	return rapid.SliceOfNDistinct(categoryNameGen, 0, 3, rapid.ID[string])
}

func imageURLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`https://i\.imgur\.com/[A-Za-z0-9]{7}\.(jpg|png)`),
		rapid.StringMatching(`https://images\.example\.org/[a-z]{3,8}\.png`),
	)
}

func categoryGen() *rapid.Generator[filter.Category] {
	return rapid.SampledFrom(filter.Categories())
}

func colorGen() *rapid.Generator[filter.Color] {
	return rapid.SampledFrom(filter.Colors())
}

func searchGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("   "),
		shortQueryGen,
		noteWordGen,
		rapid.Custom(func(t *rapid.T) string {
			return strings.ToUpper(shortQueryGen.Draw(t, "upperQuery"))
		}),
	)
}

func selectionGen() *rapid.Generator[filter.Selection] {
	return rapid.Custom(func(t *rapid.T) filter.Selection {
		return filter.Selection{
			Category: categoryGen().Draw(t, "category"),
			Color:    colorGen().Draw(t, "color"),
			Search:   searchGen().Draw(t, "search"),
		}
	})
}

func malformedFavoritesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("null"),
		rapid.Just("{}"),
		rapid.Just(`{"ids":[1]}`),
		rapid.Just(`["1","2"]`),
		rapid.Just("[1.5]"),
		rapid.Just("[1,"),
		rapid.Just("true"),
		rapid.Just(`"[1,2]"`),
		rapid.StringMatching(`[^\[\]0-9 ,]{1,30}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(1, 64).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func fragmentGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("#"),
		rapid.Just("#item="),
		rapid.Just("#item=+3"),
		rapid.StringMatching(`#item=[0-9]{1,3}`),
		rapid.StringMatching(`#(item|perfume|id)=[a-z0-9-]{0,5}`),
		rapid.String(),
	)
}
