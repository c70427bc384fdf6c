package catalog

import "errors"

var (
	ErrNotFound    = errors.New("item not found")
	ErrInvalidID   = errors.New("item id must be positive")
	ErrDuplicateID = errors.New("duplicate item id")
	ErrEmptyName   = errors.New("item name cannot be empty")
)

// Catalog is the read-only source of truth for items. Implementations never
// change after construction, so every method is safe to call from any goroutine.
type Catalog interface {
	List() []Item
	Get(id int) (Item, error)
	Contains(id int) bool
	Count() int
	Categories() []string
}
