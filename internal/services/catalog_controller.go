package services

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
)

// CatalogController receives the interactions of one visitor. Each
// channel change recomputes the visible projects (filter, then search,
// then sort) and renders them once.
type CatalogController interface {
	OnFilterChange(category string) models.View
	OnSearchChange(query string) models.View
	OnSortChange(sort string) models.View
	OnOpenDetail(id int) models.View
	OnCloseDetail() models.View
	View() models.View
}

// RenderTarget receives every view the controller renders
type RenderTarget interface {
	Render(models.View)
}

// Controller is the CatalogController for one session
type Controller struct {
	mu       sync.Mutex
	store    *catalog.Store
	target   RenderTarget
	now      func() time.Time
	category string
	query    string
	sort     catalog.SortKey
	visible  []models.Project
	detail   *models.Detail
	renders  int
	lastSeen time.Time
}

var _ CatalogController = (*Controller)(nil)

// NewController starts a controller on the default channels: all
// categories, no search, catalog order. target may be nil.
func NewController(store *catalog.Store, target RenderTarget, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		store:    store,
		target:   target,
		now:      now,
		category: catalog.AllCategories,
		lastSeen: now(),
	}
	c.visible = c.recompute()
	return c
}

// OnFilterChange selects a category; empty input means all
func (c *Controller) OnFilterChange(category string) models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(category) == "" {
		category = catalog.AllCategories
	}
	c.category = category
	return c.update()
}

// OnSearchChange sets the free-text query
func (c *Controller) OnSearchChange(query string) models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = query
	return c.update()
}

// OnSortChange sets the sort key. Unknown keys restore catalog order.
func (c *Controller) OnSortChange(sort string) models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := catalog.ParseSortKey(sort)
	if !ok {
		slog.Debug("unknown sort key, using catalog order", "sort", sort)
	}
	c.sort = key
	return c.update()
}

// OnOpenDetail opens the modal for id, replacing any open modal. The id is
// looked up in the full catalog; an unknown id leaves everything as is.
func (c *Controller) OnOpenDetail(id int) models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()

	p, ok := c.store.FindByID(id)
	if !ok {
		slog.Debug("detail requested for unknown project", "id", id)
		return c.snapshot()
	}

	d := render.Detail(p)
	c.detail = &d
	return c.emit()
}

// OnCloseDetail dismisses the modal if one is open
func (c *Controller) OnCloseDetail() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()
	if c.detail == nil {
		return c.snapshot()
	}
	c.detail = nil
	return c.emit()
}

// View returns the current view without recomputing it
func (c *Controller) View() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Renders returns how many views have been rendered
func (c *Controller) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

// LastSeen returns the time of the last interaction
func (c *Controller) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// update runs one recomputation and one render; c.mu must be held
func (c *Controller) update() models.View {
	c.lastSeen = c.now()
	c.visible = c.recompute()
	return c.emit()
}

func (c *Controller) recompute() []models.Project {
	return c.store.Query(c.category, c.query, c.sort)
}

func (c *Controller) emit() models.View {
	v := c.snapshot()
	c.renders++
	if c.target != nil {
		c.target.Render(v)
	}
	return v
}

func (c *Controller) snapshot() models.View {
	v := render.View(c.visible, c.store.Len())
	v.Category = c.category
	v.Query = c.query
	v.Sort = string(c.sort)
	if c.detail != nil {
		d := *c.detail
		v.Detail = &d
	}
	return v
}
