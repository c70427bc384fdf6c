// Package app holds the session state of a catalog browser: the filter
// selection, the favorites set, and the open detail view. Presenters get a
// *Controller and forward user intents to it; they never keep copies of this
// state themselves.
package app

import (
	"vitrine/internal/catalog"
	"vitrine/internal/deeplink"
	"vitrine/internal/favorites"
	"vitrine/internal/filter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Catalog   catalog.Catalog
	Storage   favorites.Storage
	Location  deeplink.Location
	Keywords  filter.Keywords
	Logger    *zap.Logger
	SessionID string
}

// Controller is not safe for concurrent use. Every intent runs to completion
// before the next one, the way a UI event loop delivers them.
type Controller struct {
	catalog   catalog.Catalog
	favorites *favorites.Set
	matcher   *filter.Matcher
	memo      *filter.Memo
	resolver  *deeplink.Resolver
	location  deeplink.Location
	logger    *zap.Logger
	sessionID string

	selection filter.Selection
	selected  *catalog.Item
	fromLink  bool
}

func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger = logger.With(zap.String("session", sessionID))

	loc := opts.Location
	if loc == nil {
		loc = deeplink.NewMemoryLocation("")
	}

	matcher := filter.NewMatcher(opts.Keywords)
	c := &Controller{
		catalog:   opts.Catalog,
		favorites: favorites.New(opts.Storage, favorites.WithLogger(logger.Named("favorites"))),
		matcher:   matcher,
		memo:      filter.NewMemo(filter.NewPipeline(matcher), opts.Catalog.List()),
		resolver:  deeplink.NewResolver(opts.Catalog, logger.Named("deeplink")),
		location:  loc,
		logger:    logger,
		sessionID: sessionID,
		selection: filter.DefaultSelection(),
	}

	c.favorites.Load()
	c.favorites.Dangling(c.catalog.Contains)
	return c
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

func (c *Controller) Catalog() catalog.Catalog {
	return c.catalog
}

func (c *Controller) Matcher() *filter.Matcher {
	return c.matcher
}

func (c *Controller) Selection() filter.Selection {
	return c.selection
}

func (c *Controller) SetCategory(category filter.Category) {
	c.selection.Category = category
}

func (c *Controller) SetColor(color filter.Color) {
	c.selection.Color = color
}

func (c *Controller) SetSearch(term string) {
	c.selection.Search = term
}

func (c *Controller) SetSelection(sel filter.Selection) {
	c.selection = sel
}

func (c *Controller) ResetFilters() {
	c.selection = filter.DefaultSelection()
}

// Visible returns the items that pass the current selection.
func (c *Controller) Visible() filter.Result {
	return c.memo.Run(c.selection, c.favorites)
}

func (c *Controller) EmptyMessage() filter.EmptyState {
	return filter.EmptyMessage(c.selection)
}

func (c *Controller) ToggleFavorite(id int) bool {
	on := c.favorites.Toggle(id)
	c.logger.Debug("favorite toggled", zap.Int("id", id), zap.Bool("favorite", on))
	return on
}

func (c *Controller) IsFavorite(id int) bool {
	return c.favorites.IsFavorite(id)
}

func (c *Controller) Favorites() []int {
	return c.favorites.IDs()
}

// Select opens the detail view for id. Unknown ids leave the current view as
// it is and report false.
func (c *Controller) Select(id int) bool {
	it, err := c.catalog.Get(id)
	if err != nil {
		return false
	}
	c.open(it, false)
	return true
}

func (c *Controller) Selected() (catalog.Item, bool) {
	if c.selected == nil {
		return catalog.Item{}, false
	}
	return *c.selected, true
}

// OpenedFromLink reports whether the current detail view came from a deep link.
func (c *Controller) OpenedFromLink() bool {
	return c.selected != nil && c.fromLink
}

// CloseDetail closes the detail view and clears any fragment left in the
// location, so closing and reopening behave the same way every time.
func (c *Controller) CloseDetail() {
	c.selected = nil
	c.fromLink = false
	deeplink.Close(c.location)
}

// OpenFromLocation resolves the fragment present at start-up.
func (c *Controller) OpenFromLocation() (catalog.Item, bool) {
	return c.HandleFragment(c.location.Fragment())
}

// HandleFragment reacts to an external fragment change. Unresolvable
// fragments are ignored. Resolving the same fragment twice opens the same
// item.
func (c *Controller) HandleFragment(fragment string) (catalog.Item, bool) {
	it, ok := c.resolver.Resolve(fragment)
	if !ok {
		return catalog.Item{}, false
	}
	if c.location.Fragment() != fragment {
		c.location.SetFragment(fragment)
	}
	c.open(it, true)
	return it, true
}

// ShareFragment returns the fragment that reopens id.
func (c *Controller) ShareFragment(id int) string {
	return deeplink.Encode(id)
}

func (c *Controller) Location() deeplink.Location {
	return c.location
}

func (c *Controller) open(it catalog.Item, fromLink bool) {
	c.selected = &it
	c.fromLink = fromLink
}
