package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/moviatask/moviactl/movia"
)

// FavoritesData is the favourites screen's payload: the authoritative
// liked list plus its id set.
type FavoritesData struct {
	Movies []movia.Movie
	Liked  map[int]bool
}

// Favorites drives the favourites screen. This screen exists to show
// an authoritative liked set, so every toggle pays for a full refresh
// (RefreshAfterMutation) instead of trusting the optimistic flip.
type Favorites struct {
	api    API
	logger zerolog.Logger

	mu   sync.Mutex
	gen  uint64
	snap Snapshot[FavoritesData]
}

// NewFavorites creates a favourites controller in the Idle state.
func NewFavorites(api API, logger zerolog.Logger) *Favorites {
	return &Favorites{api: api, logger: logger}
}

// Load fetches the liked movies.
func (f *Favorites) Load(ctx context.Context) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.snap.Phase = Loading
	f.snap.Err = ""
	f.mu.Unlock()

	movies, err := f.api.LikedMovies(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		f.logger.Debug().Msg("Dropping stale favourites response")
		return
	}
	if err != nil {
		f.snap = Snapshot[FavoritesData]{Phase: Failed, Err: errorText(err)}
		return
	}
	f.snap = Snapshot[FavoritesData]{Phase: Ready, Data: favoritesData(movies)}
}

// ToggleFavourite likes or unlikes the movie and refreshes the whole
// liked list from the server.
func (f *Favorites) ToggleFavourite(ctx context.Context, id int) {
	f.mu.Lock()
	gen := f.gen
	liked := f.snap.Data.Liked[id]
	f.mu.Unlock()

	_, refreshed, err := toggleFavourite(ctx, f.api, id, liked, RefreshAfterMutation)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return
	}
	if err != nil {
		// Keep the previously loaded list; the message is advisory.
		f.snap.Err = errorText(err)
		return
	}
	f.snap = Snapshot[FavoritesData]{Phase: Ready, Data: favoritesData(refreshed)}
}

// IsFavourite reports membership in the last-fetched liked set.
func (f *Favorites) IsFavourite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap.Data.Liked[id]
}

// Snapshot returns the current screen state.
func (f *Favorites) Snapshot() Snapshot[FavoritesData] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func favoritesData(movies []movia.Movie) FavoritesData {
	liked := make(map[int]bool, len(movies))
	for _, m := range movies {
		liked[m.ID] = true
	}
	return FavoritesData{Movies: movies, Liked: liked}
}
