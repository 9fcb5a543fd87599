package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/moviatask/moviactl/movia"
)

// DetailData is the movie detail screen's payload.
type DetailData struct {
	Movie      *movia.Movie
	IsFavorite bool
}

// Detail drives the movie detail screen. Loading runs two sequential,
// independently-failable fetches: the movie itself (fatal on error)
// and the favourite flag derived from liked ids (advisory on error).
// The favourite toggle is optimistic: the flag flips only after the
// like/unlike call succeeds and reverts on failure.
type Detail struct {
	api    API
	logger zerolog.Logger

	mu   sync.Mutex
	gen  uint64
	snap Snapshot[DetailData]
}

// NewDetail creates a detail controller in the Idle state.
func NewDetail(api API, logger zerolog.Logger) *Detail {
	return &Detail{api: api, logger: logger}
}

// Load fetches the movie and its favourite status.
func (d *Detail) Load(ctx context.Context, id int) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.snap.Phase = Loading
	d.snap.Err = ""
	d.mu.Unlock()

	movie, err := d.api.Movie(ctx, id)
	if err != nil {
		d.apply(gen, Snapshot[DetailData]{Phase: Failed, Err: errorText(err)})
		return
	}

	snap := Snapshot[DetailData]{Phase: Ready, Data: DetailData{Movie: &movie}}

	likedIDs, err := d.api.LikedMovieIDs(ctx)
	if err != nil {
		// Non-fatal: the movie stays displayed, only the flag is unknown.
		snap.Err = errorText(err)
		d.logger.Debug().Err(err).Int("movie_id", id).Msg("Favourite status unavailable")
	} else {
		snap.Data.IsFavorite = slices.Contains(likedIDs, id)
	}
	d.apply(gen, snap)
}

// ToggleFavourite flips the favourite state optimistically. On failure
// the previous flag is kept and the error surfaces as an advisory
// message.
func (d *Detail) ToggleFavourite(ctx context.Context) {
	d.mu.Lock()
	if d.snap.Data.Movie == nil {
		d.mu.Unlock()
		return
	}
	gen := d.gen
	id := d.snap.Data.Movie.ID
	liked := d.snap.Data.IsFavorite
	d.mu.Unlock()

	nowLiked, _, err := toggleFavourite(ctx, d.api, id, liked, OptimisticLocal)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	if err != nil {
		d.snap.Err = errorText(err)
		return
	}
	d.snap.Data.IsFavorite = nowLiked
	d.snap.Err = ""
}

// Snapshot returns the current screen state.
func (d *Detail) Snapshot() Snapshot[DetailData] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap
}

func (d *Detail) apply(gen uint64, snap Snapshot[DetailData]) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		d.logger.Debug().Msg("Dropping stale detail response")
		return
	}
	d.snap = snap
}
