package proptest

import (
	"fmt"
	"path/filepath"
	"testing"
	"vitrine/internal/app"
	"vitrine/internal/catalog"
	"vitrine/internal/deeplink"
	"vitrine/internal/favorites"

	"pgregory.net/rapid"
)

const (
	minItems        = 0
	maxItems        = 20
	typicalMinItems = 1
	typicalMaxItems = 12
	maxItemID       = 60
)

type ItemGenOpt func(*itemGenConfig)

type itemGenConfig struct {
	name       *string
	categories []string
}

func WithName(name string) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.name = &name
	}
}

func WithCategories(categories ...string) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.categories = categories
	}
}

func GenItem(t *rapid.T, id int, opts ...ItemGenOpt) catalog.Item {
	cfg := &itemGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	name := nameGen().Draw(t, "name")
	if cfg.name != nil {
		name = *cfg.name
	}
	categories := cfg.categories
	if categories == nil {
		categories = categoriesGen().Draw(t, "categories")
	}

	return catalog.Item{
		ID:         id,
		Name:       name,
		Designer:   designerGen.Draw(t, "designer"),
		ImageURL:   imageURLGen().Draw(t, "imageURL"),
		Year:       rapid.IntRange(1900, 2030).Draw(t, "year"),
		Notes:      notesGen().Draw(t, "notes"),
		Story:      storyGen().Draw(t, "story"),
		Categories: categories,
	}
}

// GenItems draws between minCount and maxCount items with distinct ids in
// random order.
func GenItems(t *rapid.T, minCount, maxCount int) []catalog.Item {
	ids := rapid.SliceOfNDistinct(rapid.IntRange(1, maxItemID), minCount, maxCount, rapid.ID[int]).Draw(t, "ids")
	items := make([]catalog.Item, len(ids))
	for i, id := range ids {
		items[i] = GenItem(t, id)
	}
	return items
}

type Harness struct {
	T   *rapid.T
	Dir string
}

type CatalogHarness struct {
	Harness
	Items   []catalog.Item
	Catalog *catalog.StaticCatalog
}

// NewController wires a controller over the harness catalog with fresh
// in-memory storage and location.
func (h *CatalogHarness) NewController(storage favorites.Storage, fragment string) *app.Controller {
	if storage == nil {
		storage = favorites.NewMemoryStorage()
	}
	return app.New(app.Options{
		Catalog:   h.Catalog,
		Storage:   storage,
		Location:  deeplink.NewMemoryLocation(fragment),
		SessionID: "proptest",
	})
}

// DrawID returns an id from the catalog, or an id outside it when the catalog
// is empty or the draw says so.
func (h *CatalogHarness) DrawID(t *rapid.T, label string) int {
	if len(h.Items) == 0 || rapid.IntRange(0, 4).Draw(t, label+"Unknown") == 0 {
		return rapid.IntRange(maxItemID+1, maxItemID+100).Draw(t, label)
	}
	return rapid.SampledFrom(h.Items).Draw(t, label).ID
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	runWithCatalog(t, minItems, maxItems, fn)
}

func RunWithTypicalCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	runWithCatalog(t, typicalMinItems, typicalMaxItems, fn)
}

func runWithCatalog(t *testing.T, minCount, maxCount int, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		items := GenItems(rt, minCount, maxCount)
		cat, err := catalog.NewStatic(items...)
		if err != nil {
			rt.Fatalf("failed to build catalog: %v", err)
		}

		fn(&CatalogHarness{
			Harness: Harness{T: rt, Dir: iterDir(rt, tempDir)},
			Items:   items,
			Catalog: cat,
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: iterDir(rt, tempDir)})
	})
}

func iterDir(rt *rapid.T, base string) string {
	return filepath.Join(base, fmt.Sprintf("%s-%d", iterDirGen.Draw(rt, "iterDir"), rapid.IntRange(0, 1<<20).Draw(rt, "iterSuffix")))
}
