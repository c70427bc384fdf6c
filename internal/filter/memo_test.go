package filter_test

import (
	"testing"
	"vitrine/internal/filter"

	"github.com/stretchr/testify/assert"
)

func TestMemo_Run(t *testing.T) {
	items := defaultItems(t)

	t.Run("repeated selection is served from cache", func(t *testing.T) {
		m := filter.NewMemo(nil, items)
		favs := favSet{}

		first := m.Run(filter.Selection{Color: filter.ColorGold}, favs)
		second := m.Run(filter.Selection{Color: filter.ColorGold, Category: filter.CategoryAll}, favs)

		assert.Equal(t, ids(first.Items), ids(second.Items))
		assert.Equal(t, 1, m.Hits())
	})

	t.Run("changed favorites recompute", func(t *testing.T) {
		m := filter.NewMemo(nil, items)
		favs := favSet{3: true}
		sel := filter.Selection{Category: filter.CategoryFavorites}

		assert.Equal(t, []int{3}, ids(m.Run(sel, favs).Items))
		favs[7] = true
		assert.Equal(t, []int{3, 7}, ids(m.Run(sel, favs).Items))
		assert.Equal(t, 0, m.Hits())
	})

	t.Run("invalidate forces recompute", func(t *testing.T) {
		m := filter.NewMemo(nil, items)
		m.Run(filter.DefaultSelection(), nil)
		m.Invalidate()
		m.Run(filter.DefaultSelection(), nil)
		assert.Equal(t, 0, m.Hits())
	})

	t.Run("cached results are copies", func(t *testing.T) {
		m := filter.NewMemo(nil, items)
		first := m.Run(filter.DefaultSelection(), nil)
		first.Items[0].Name = "changed"
		second := m.Run(filter.DefaultSelection(), nil)
		assert.NotEqual(t, "changed", second.Items[0].Name)
	})
}
