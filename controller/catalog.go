package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/moviatask/moviactl/filter"
	"github.com/moviatask/moviactl/movia"
)

// CatalogData is the catalog screen's payload: the last-fetched
// catalog plus the liked-id set used for heart markers. Liked is
// advisory; a failed liked-ids fetch leaves it nil without failing
// the screen.
type CatalogData struct {
	Movies []movia.Movie
	Liked  map[int]bool
}

// Catalog drives the catalog listing screen: one full fetch per
// activation, pure client-side filtering afterwards.
type Catalog struct {
	api    API
	logger zerolog.Logger

	mu       sync.Mutex
	gen      uint64
	snap     Snapshot[CatalogData]
	search   string
	category string
}

// NewCatalog creates a catalog controller in the Idle state.
func NewCatalog(api API, logger zerolog.Logger) *Catalog {
	return &Catalog{api: api, logger: logger, category: filter.CategoryAll}
}

// Load fetches the catalog and the liked-id set concurrently and
// replaces the snapshot. A catalog failure fails the screen; a
// liked-ids failure only drops the markers.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.snap.Phase = Loading
	c.snap.Err = ""
	c.mu.Unlock()

	var (
		movies   []movia.Movie
		likedIDs []int
		likedErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = c.api.Movies(gctx)
		return err
	})
	g.Go(func() error {
		likedIDs, likedErr = c.api.LikedMovieIDs(gctx)
		return nil // advisory
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.logger.Debug().Msg("Dropping stale catalog response")
		return
	}

	if err != nil {
		c.snap = Snapshot[CatalogData]{Phase: Failed, Err: errorText(err)}
		return
	}

	data := CatalogData{Movies: movies}
	if likedErr == nil {
		data.Liked = make(map[int]bool, len(likedIDs))
		for _, id := range likedIDs {
			data.Liked[id] = true
		}
	} else {
		c.logger.Debug().Err(likedErr).Msg("Liked ids unavailable for catalog markers")
	}
	c.snap = Snapshot[CatalogData]{Phase: Ready, Data: data}
}

// SetSearch changes the free-text title filter. Purely local.
func (c *Catalog) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = search
}

// SetCategory changes the category filter. Purely local.
func (c *Catalog) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if category == "" {
		category = filter.CategoryAll
	}
	c.category = category
}

// FilteredMovies applies the current search and category to the
// last-fetched catalog.
func (c *Catalog) FilteredMovies() []movia.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filter.Match(c.snap.Data.Movies, c.search, c.category)
}

// Categories lists the categories present in the loaded catalog.
func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filter.Categories(c.snap.Data.Movies)
}

// Snapshot returns the current screen state.
func (c *Catalog) Snapshot() Snapshot[CatalogData] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}
