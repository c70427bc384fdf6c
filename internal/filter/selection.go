package filter

import (
	"fmt"
	"slices"
	"strings"
)

type Category string

const (
	CategoryAll       Category = "All"
	CategoryFavorites Category = "Favorites"
	CategoryFloral    Category = "Floral"
	CategoryWoody     Category = "Woody"
	CategoryOriental  Category = "Oriental"
	CategoryFresh     Category = "Fresh"
	CategoryGourmand  Category = "Gourmand"
	CategoryChypre    Category = "Chypre"
	CategoryLeather   Category = "Leather"
	CategoryAromatic  Category = "Aromatic"
)

var categories = []Category{
	CategoryAll,
	CategoryFavorites,
	CategoryFloral,
	CategoryWoody,
	CategoryOriental,
	CategoryFresh,
	CategoryGourmand,
	CategoryChypre,
	CategoryLeather,
	CategoryAromatic,
}

// Categories returns the fixed set of selectable categories in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

type Color string

const (
	ColorAny    Color = "Any"
	ColorGold   Color = "Gold"
	ColorSilver Color = "Silver"
	ColorBlack  Color = "Black"
	ColorWhite  Color = "White"
	ColorPink   Color = "Pink"
	ColorRed    Color = "Red"
	ColorBlue   Color = "Blue"
	ColorGreen  Color = "Green"
	ColorPurple Color = "Purple"
)

var colors = []Color{
	ColorAny,
	ColorGold,
	ColorSilver,
	ColorBlack,
	ColorWhite,
	ColorPink,
	ColorRed,
	ColorBlue,
	ColorGreen,
	ColorPurple,
}

// Colors returns the fixed set of selectable colour tags in display order.
func Colors() []Color {
	return slices.Clone(colors)
}

// ParseCategory matches name case-insensitively against the known categories.
func ParseCategory(name string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return CategoryAll, nil
	}
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// ParseColor matches name case-insensitively against the known colour tags.
func ParseColor(name string) (Color, error) {
	if strings.TrimSpace(name) == "" {
		return ColorAny, nil
	}
	for _, c := range colors {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", name)
}

// Selection is the user's current filter state. The zero value selects
// everything.
type Selection struct {
	Category Category
	Color    Color
	Search   string
}

func DefaultSelection() Selection {
	return Selection{Category: CategoryAll, Color: ColorAny}
}

func (s Selection) normalized() Selection {
	if s.Category == "" {
		s.Category = CategoryAll
	}
	if s.Color == "" {
		s.Color = ColorAny
	}
	s.Search = strings.TrimSpace(s.Search)
	return s
}

// Active reports whether any of the three filters narrows the catalog.
func (s Selection) Active() bool {
	n := s.normalized()
	return n.Category != CategoryAll || n.Color != ColorAny || n.Search != ""
}
