package filter

import (
	"slices"
	"strconv"
	"strings"
	"vitrine/internal/catalog"
)

// FavoriteSet is a Favorites that can enumerate its members, which lets Memo
// notice when the set changed between calls.
type FavoriteSet interface {
	Favorites
	IDs() []int
}

type memoKey struct {
	sel  Selection
	favs string
}

// Memo caches the last pipeline result for a fixed item list. A cache miss
// recomputes; a hit returns a copy of the previous items.
type Memo struct {
	pipeline *Pipeline
	items    []catalog.Item

	valid bool
	key   memoKey
	last  Result
	hits  int
}

func NewMemo(p *Pipeline, items []catalog.Item) *Memo {
	if p == nil {
		p = NewPipeline(nil)
	}
	return &Memo{pipeline: p, items: items}
}

func (m *Memo) Run(sel Selection, favs FavoriteSet) Result {
	key := memoKey{sel: sel.normalized(), favs: fingerprint(favs)}
	if m.valid && m.key == key {
		m.hits++
		return Result{Items: slices.Clone(m.last.Items), Active: m.last.Active}
	}

	var f Favorites
	if favs != nil {
		f = favs
	}
	m.last = m.pipeline.Run(m.items, key.sel, f)
	m.key = key
	m.valid = true
	return Result{Items: slices.Clone(m.last.Items), Active: m.last.Active}
}

// Hits reports how many calls were served from the cache.
func (m *Memo) Hits() int {
	return m.hits
}

func (m *Memo) Invalidate() {
	m.valid = false
}

func fingerprint(favs FavoriteSet) string {
	if favs == nil {
		return ""
	}
	ids := favs.IDs()
	slices.Sort(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
