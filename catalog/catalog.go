// Package catalog holds the plant and category slices fed by the backend.
package catalog

import (
	"context"
	"sync"

	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
)

type Source interface {
	Items(ctx context.Context) ([]types.Plant, error)
	Categories(ctx context.Context) ([]types.APICategory, error)
}

type ItemsState struct {
	Items   []types.Plant
	Loading bool
	Err     string
}

type CategoriesState struct {
	Categories []types.Category
	Loading    bool
	Err        string
}

// Catalog keeps the two fetches independent: each has its own flags and
// neither waits for the other.
type Catalog struct {
	src Source
	log zerolog.Logger

	mu         sync.RWMutex
	items      ItemsState
	categories CategoriesState
}

func New(src Source, log zerolog.Logger) *Catalog {
	return &Catalog{
		src:        src,
		log:        log,
		categories: CategoriesState{Categories: []types.Category{types.AllCategory}},
	}
}

// FetchItems replaces the plant list. On failure the previous list is kept.
func (c *Catalog) FetchItems(ctx context.Context) error {
	c.mu.Lock()
	c.items.Loading = true
	c.items.Err = ""
	c.mu.Unlock()

	items, err := c.src.Items(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Loading = false
	if err != nil {
		c.items.Err = err.Error()
		c.log.Warn().Err(err).Msg("fetch items failed")
		return err
	}
	c.items.Items = items
	c.log.Debug().Int("count", len(items)).Msg("items loaded")
	return nil
}

func (c *Catalog) FetchCategories(ctx context.Context) error {
	c.mu.Lock()
	c.categories.Loading = true
	c.categories.Err = ""
	c.mu.Unlock()

	raw, err := c.src.Categories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories.Loading = false
	if err != nil {
		c.categories.Err = err.Error()
		c.log.Warn().Err(err).Msg("fetch categories failed")
		return err
	}
	c.categories.Categories = MapCategories(raw)
	return nil
}

func (c *Catalog) Items() ItemsState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.items
	s.Items = append([]types.Plant(nil), c.items.Items...)
	return s
}

func (c *Catalog) Categories() CategoriesState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.categories
	s.Categories = append([]types.Category(nil), c.categories.Categories...)
	return s
}

// Find looks a plant up by id in the last loaded list.
func (c *Catalog) Find(id string) (types.Plant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.items.Items {
		if p.ID == id {
			return p, true
		}
	}
	return types.Plant{}, false
}

// MapCategories prepends the All chip. A missing Gujarati name falls back to the English one.
func MapCategories(raw []types.APICategory) []types.Category {
	out := make([]types.Category, 0, len(raw)+1)
	out = append(out, types.AllCategory)
	for _, rc := range raw {
		gu := rc.NameGujarati
		if gu == "" {
			gu = rc.Name
		}
		out = append(out, types.Category{Key: rc.ID, English: rc.Name, Gujarati: gu, Icon: rc.Icon})
	}
	return out
}
