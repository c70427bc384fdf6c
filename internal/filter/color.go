package filter

import (
	"maps"
	"slices"
	"strings"
	"vitrine/internal/catalog"
)

// Keywords maps a colour tag to the lower-case synonyms that count as a hit
// when they appear anywhere in an item's name or story.
type Keywords map[Color][]string

func DefaultKeywords() Keywords {
	return Keywords{
		ColorGold:   {"golden", "gold", "gilded", "amber", "bronze", "honey", "solar", "luxury", "royal"},
		ColorSilver: {"silver", "chrome", "metallic", "steel", "platinum", "mirror", "lunar"},
		ColorBlack:  {"black", "noir", "dark", "night", "midnight", "obsidian", "onyx", "shadow", "ebony"},
		ColorWhite:  {"white", "pearl", "ivory", "snow", "porcelain", "crystal", "clear", "frost"},
		ColorPink:   {"pink", "rose", "blush", "fuchsia", "magenta", "candy"},
		ColorRed:    {"red", "scarlet", "crimson", "ruby", "cherry", "rouge", "flame", "fire"},
		ColorBlue:   {"blue", "azure", "ocean", "marine", "sapphire", "aqua", "navy", "indigo"},
		ColorGreen:  {"green", "emerald", "jade", "verdant", "forest", "garden", "moss", "olive"},
		ColorPurple: {"purple", "violet", "lavender", "amethyst", "plum", "lilac", "orchid"},
	}
}

// Merge returns a copy of k where every colour present in override replaces
// the default list. Keywords are lower-cased and blanks dropped.
func (k Keywords) Merge(override map[string][]string) Keywords {
	merged := maps.Clone(k)
	if merged == nil {
		merged = make(Keywords)
	}
	for name, words := range override {
		color, err := ParseColor(name)
		if err != nil {
			color = Color(name)
		}
		merged[color] = normalizeKeywords(words)
	}
	return merged
}

func normalizeKeywords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// Matcher applies the colour heuristic. It never looks at scent notes or the
// image reference: a "rose" heart note must not make a black bottle pink.
type Matcher struct {
	keywords Keywords
}

func NewMatcher(k Keywords) *Matcher {
	if k == nil {
		k = DefaultKeywords()
	}
	return &Matcher{keywords: k}
}

func (m *Matcher) Matches(it catalog.Item, color Color) bool {
	if color == "" || color == ColorAny {
		return true
	}

	haystack := colorHaystack(it)
	words, ok := m.lookup(color)
	if !ok {
		return strings.Contains(haystack, strings.ToLower(string(color)))
	}
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}

func (m *Matcher) lookup(color Color) ([]string, bool) {
	if words, ok := m.keywords[color]; ok {
		return words, true
	}
	for c, words := range m.keywords {
		if strings.EqualFold(string(c), string(color)) {
			return words, true
		}
	}
	return nil, false
}

// Keywords returns the synonyms used for color, or nil when it falls back to
// a literal match of its own name.
func (m *Matcher) Keywords(color Color) []string {
	words, _ := m.lookup(color)
	return slices.Clone(words)
}

func colorHaystack(it catalog.Item) string {
	return strings.ToLower(it.Name + " " + it.Story)
}
