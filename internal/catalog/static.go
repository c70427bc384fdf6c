package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed data/items.yaml
var embeddedItems []byte

type catalogFile struct {
	Version int    `yaml:"version"`
	Items   []Item `yaml:"items"`
}

// StaticCatalog is an immutable, ordered list of items indexed by id.
type StaticCatalog struct {
	items []Item
	byID  map[int]int
}

// Default returns the catalog embedded in the binary.
func Default() (*StaticCatalog, error) {
	return Load(embeddedItems)
}

func Load(data []byte) (*StaticCatalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewStatic(file.Items...)
}

func NewStatic(items ...Item) (*StaticCatalog, error) {
	c := &StaticCatalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it.clone())
	}

	return c, nil
}

func (c *StaticCatalog) List() []Item {
	items := make([]Item, len(c.items))
	for i, it := range c.items {
		items[i] = it.clone()
	}
	return items
}

func (c *StaticCatalog) Get(id int) (Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return c.items[idx].clone(), nil
}

func (c *StaticCatalog) Contains(id int) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *StaticCatalog) Count() int {
	return len(c.items)
}

// Categories returns the distinct tags used by the catalog in first-seen order.
func (c *StaticCatalog) Categories() []string {
	var names []string
	seen := make(map[string]bool)
	for _, it := range c.items {
		for _, name := range it.Categories {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
