package filter_test

import (
	"testing"
	"vitrine/internal/catalog"
	"vitrine/internal/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favSet map[int]bool

func (f favSet) IsFavorite(id int) bool { return f[id] }

func (f favSet) IDs() []int {
	ids := make([]int, 0, len(f))
	for id, on := range f {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

func defaultItems(t *testing.T) []catalog.Item {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat.List()
}

func ids(items []catalog.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestPipeline_Run(t *testing.T) {
	items := defaultItems(t)
	p := filter.NewPipeline(nil)

	t.Run("default selection keeps everything in order", func(t *testing.T) {
		res := p.Run(items, filter.DefaultSelection(), nil)
		assert.Equal(t, ids(items), ids(res.Items))
		assert.False(t, res.Active)
	})

	t.Run("zero selection behaves like default", func(t *testing.T) {
		res := p.Run(items, filter.Selection{}, nil)
		assert.Len(t, res.Items, len(items))
	})

	t.Run("favorites category", func(t *testing.T) {
		res := p.Run(items[:10], filter.Selection{Category: filter.CategoryFavorites}, favSet{3: true, 7: true})
		assert.Equal(t, []int{3, 7}, ids(res.Items))
		assert.True(t, res.Active)
	})

	t.Run("favorites category with no favorites", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Category: filter.CategoryFavorites}, nil)
		assert.True(t, res.Empty())
		assert.True(t, res.Active)
	})

	t.Run("named category", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Category: filter.CategoryWoody}, nil)
		assert.Equal(t, []int{5, 9, 11}, ids(res.Items))
	})

	t.Run("uncategorized item only shows under All", func(t *testing.T) {
		for _, c := range filter.Categories() {
			if c == filter.CategoryAll {
				continue
			}
			res := p.Run(items, filter.Selection{Category: c}, favSet{})
			assert.NotContains(t, ids(res.Items), 12, "category %s", c)
		}
	})

	t.Run("black ignores notes", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Color: filter.ColorBlack}, nil)
		assert.Equal(t, []int{1}, ids(res.Items))
	})

	t.Run("pink ignores a rose heart note", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Color: filter.ColorPink}, nil)
		assert.Equal(t, []int{3, 10}, ids(res.Items))
	})

	t.Run("search matches name, designer and individual notes", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Search: "rose"}, nil)
		assert.Equal(t, []int{3, 4, 6, 7}, ids(res.Items))
	})

	t.Run("search is case-insensitive and trimmed", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Search: "  IRIS "}, nil)
		assert.Equal(t, []int{1, 9}, ids(res.Items))
	})

	t.Run("search by designer", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Search: "duval"}, nil)
		assert.Equal(t, []int{5}, ids(res.Items))
	})

	t.Run("whitespace search is no filter", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Search: "   "}, nil)
		assert.Len(t, res.Items, len(items))
		assert.False(t, res.Active)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		sel := filter.Selection{Category: filter.CategoryFloral, Color: filter.ColorWhite, Search: "rose"}
		res := p.Run(items, sel, nil)
		assert.Equal(t, []int{3, 6}, ids(res.Items))
	})

	t.Run("nothing matches", func(t *testing.T) {
		res := p.Run(items, filter.Selection{Search: "zzz"}, nil)
		assert.True(t, res.Empty())
		assert.NotNil(t, res.Items)
	})

	t.Run("does not share the input array", func(t *testing.T) {
		res := p.Run(items, filter.DefaultSelection(), nil)
		res.Items[0].Name = "changed"
		assert.NotEqual(t, "changed", items[0].Name)
	})
}

func TestPipeline_Matches(t *testing.T) {
	items := defaultItems(t)
	p := filter.NewPipeline(nil)
	sel := filter.Selection{Category: filter.CategoryOriental, Search: "c"}

	res := p.Run(items, sel, nil)
	for _, it := range items {
		assert.Equal(t, contains(res.Items, it.ID), p.Matches(it, sel, nil), "item %d", it.ID)
	}
}

func contains(items []catalog.Item, id int) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func TestApply(t *testing.T) {
	items := defaultItems(t)
	got := filter.Apply(items, filter.Selection{Color: filter.ColorGold}, nil)
	assert.Equal(t, []int{2, 11}, ids(got))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    filter.Category
		wantErr bool
	}{
		{"", filter.CategoryAll, false},
		{"floral", filter.CategoryFloral, false},
		{" FAVORITES ", filter.CategoryFavorites, false},
		{"Citrus", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := filter.ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	got, err := filter.ParseColor("black")
	require.NoError(t, err)
	assert.Equal(t, filter.ColorBlack, got)

	got, err = filter.ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, filter.ColorAny, got)

	_, err = filter.ParseColor("teal")
	assert.Error(t, err)
}

func TestSelection_Active(t *testing.T) {
	assert.False(t, filter.Selection{}.Active())
	assert.False(t, filter.DefaultSelection().Active())
	assert.True(t, filter.Selection{Color: filter.ColorRed}.Active())
	assert.True(t, filter.Selection{Search: "x"}.Active())
	assert.True(t, filter.Selection{Category: filter.CategoryFavorites}.Active())
}

func TestCategoriesAndColors(t *testing.T) {
	cats := filter.Categories()
	assert.Equal(t, filter.CategoryAll, cats[0])
	assert.Equal(t, filter.CategoryFavorites, cats[1])
	cats[0] = "mutated"
	assert.Equal(t, filter.CategoryAll, filter.Categories()[0])

	cols := filter.Colors()
	assert.Equal(t, filter.ColorAny, cols[0])
	assert.Len(t, cols, 10)
}

func TestEmptyMessage(t *testing.T) {
	t.Run("favorites view", func(t *testing.T) {
		msg := filter.EmptyMessage(filter.Selection{Category: filter.CategoryFavorites, Search: "x"})
		assert.Equal(t, "Your favorites collection is empty", msg.Title)
	})

	t.Run("any other view", func(t *testing.T) {
		msg := filter.EmptyMessage(filter.Selection{Color: filter.ColorBlue})
		assert.Equal(t, "No pieces found", msg.Title)
		assert.Equal(t, "Try adjusting your search or filters.", msg.Hint)
	})
}
