package controller

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviatask/moviactl/movia"
)

func TestFavoritesLoad(t *testing.T) {
	api := newFakeAPI(inception, godfather)
	api.liked[2] = true

	favorites := NewFavorites(api, zerolog.Nop())
	favorites.Load(context.Background())

	snap := favorites.Snapshot()
	require.Equal(t, Ready, snap.Phase)
	require.Len(t, snap.Data.Movies, 1)
	assert.Equal(t, "The Godfather", snap.Data.Movies[0].Title)
	assert.True(t, favorites.IsFavourite(2))
	assert.False(t, favorites.IsFavourite(1))
}

func TestFavoritesLoadFailure(t *testing.T) {
	api := newFakeAPI(inception)
	api.likedMoviesErr = &movia.ServerError{StatusCode: 500, Message: "down"}

	favorites := NewFavorites(api, zerolog.Nop())
	favorites.Load(context.Background())

	snap := favorites.Snapshot()
	assert.Equal(t, Failed, snap.Phase)
	assert.Equal(t, "down", snap.Err)
}

func TestFavoritesToggleRefreshesList(t *testing.T) {
	api := newFakeAPI(inception, godfather)
	api.liked[2] = true

	favorites := NewFavorites(api, zerolog.Nop())
	ctx := context.Background()
	favorites.Load(ctx)
	require.Equal(t, 1, api.callCount("likedMovies"))

	// Like a new movie: mutation plus a full authoritative refresh
	favorites.ToggleFavourite(ctx, 1)

	assert.Equal(t, 1, api.callCount("like"))
	assert.Equal(t, 2, api.callCount("likedMovies"), "every toggle re-fetches the liked list")

	snap := favorites.Snapshot()
	require.Len(t, snap.Data.Movies, 2)
	assert.True(t, favorites.IsFavourite(1))

	// Unlike it again
	favorites.ToggleFavourite(ctx, 1)
	assert.Equal(t, 1, api.callCount("unlike"))
	assert.False(t, favorites.IsFavourite(1))
	require.Len(t, favorites.Snapshot().Data.Movies, 1)
}

func TestFavoritesToggleFailureKeepsList(t *testing.T) {
	api := newFakeAPI(inception, godfather)
	api.liked[2] = true

	favorites := NewFavorites(api, zerolog.Nop())
	ctx := context.Background()
	favorites.Load(ctx)

	api.likeErr = &movia.ServerError{StatusCode: 500, Message: "like failed"}
	favorites.ToggleFavourite(ctx, 1)

	snap := favorites.Snapshot()
	assert.Equal(t, "like failed", snap.Err)
	require.Len(t, snap.Data.Movies, 1, "previously loaded list is kept")
	assert.Equal(t, Ready, snap.Phase)
}
