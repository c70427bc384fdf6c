package deeplink

import (
	"vitrine/internal/catalog"

	"go.uber.org/zap"
)

// Location abstracts the host's current fragment, so that resolving and
// clearing deep links never touches a concrete history API.
type Location interface {
	Fragment() string
	SetFragment(fragment string)
	ClearFragment()
}

// MemoryLocation is a Location held in a string.
type MemoryLocation struct {
	fragment string
}

func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: fragment}
}

func (l *MemoryLocation) Fragment() string { return l.fragment }
func (l *MemoryLocation) SetFragment(fragment string) { l.fragment = fragment }
func (l *MemoryLocation) ClearFragment() { l.fragment = "" }

type Resolver struct {
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewResolver(c catalog.Catalog, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{catalog: c, logger: logger}
}

// Resolve maps a fragment to the item it names. Malformed fragments and
// unknown ids report false and are otherwise ignored.
func (r *Resolver) Resolve(fragment string) (catalog.Item, bool) {
	if fragment == "" {
		return catalog.Item{}, false
	}

	id, ok := Decode(fragment)
	if !ok {
		r.logger.Debug("ignoring malformed deep link", zap.String("fragment", fragment))
		return catalog.Item{}, false
	}

	it, err := r.catalog.Get(id)
	if err != nil {
		r.logger.Debug("ignoring deep link to unknown item", zap.Int("id", id))
		return catalog.Item{}, false
	}
	return it, true
}

// FromLocation resolves whatever fragment loc currently holds.
func (r *Resolver) FromLocation(loc Location) (catalog.Item, bool) {
	if loc == nil {
		return catalog.Item{}, false
	}
	return r.Resolve(loc.Fragment())
}

// Close clears the fragment after a detail view closes. Without a fragment
// present it leaves loc alone.
func Close(loc Location) {
	if loc == nil || loc.Fragment() == "" {
		return
	}
	loc.ClearFragment()
}
