package controller

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviatask/moviactl/movia"
)

func TestCatalogLoad(t *testing.T) {
	api := newFakeAPI(inception, godfather)
	api.liked[2] = true

	catalog := NewCatalog(api, zerolog.Nop())
	assert.Equal(t, Idle, catalog.Snapshot().Phase)

	catalog.Load(context.Background())

	snap := catalog.Snapshot()
	require.Equal(t, Ready, snap.Phase)
	assert.Empty(t, snap.Err)
	assert.Len(t, snap.Data.Movies, 2)
	assert.True(t, snap.Data.Liked[2])
	assert.False(t, snap.Data.Liked[1])
}

func TestCatalogLoadFailure(t *testing.T) {
	api := newFakeAPI(inception)
	api.moviesErr = &movia.ServerError{StatusCode: 500, Message: "boom"}

	catalog := NewCatalog(api, zerolog.Nop())
	catalog.Load(context.Background())

	snap := catalog.Snapshot()
	assert.Equal(t, Failed, snap.Phase)
	assert.Equal(t, "boom", snap.Err)
	assert.Empty(t, snap.Data.Movies)
}

func TestCatalogLikedIDsFailureIsAdvisory(t *testing.T) {
	api := newFakeAPI(inception)
	api.likedIDsErr = &movia.ServerError{StatusCode: 401, Message: "Unauthorized"}

	catalog := NewCatalog(api, zerolog.Nop())
	catalog.Load(context.Background())

	snap := catalog.Snapshot()
	require.Equal(t, Ready, snap.Phase, "catalog still loads without liked markers")
	assert.Len(t, snap.Data.Movies, 1)
	assert.Nil(t, snap.Data.Liked)
}

func TestCatalogFilteringIsPure(t *testing.T) {
	api := newFakeAPI(inception, godfather)

	catalog := NewCatalog(api, zerolog.Nop())
	catalog.Load(context.Background())
	loads := api.callCount("movies")

	// No filters: everything
	assert.Len(t, catalog.FilteredMovies(), 2)

	catalog.SetSearch("incep")
	got := catalog.FilteredMovies()
	require.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Title)

	catalog.SetSearch("")
	catalog.SetCategory("Crime")
	got = catalog.FilteredMovies()
	require.Len(t, got, 1)
	assert.Equal(t, "The Godfather", got[0].Title)

	assert.Equal(t, loads, api.callCount("movies"), "filter changes never trigger a network call")
	assert.Equal(t, 1, api.callCount("likedIDs"))
}

func TestCatalogCategories(t *testing.T) {
	api := newFakeAPI(inception, godfather)
	catalog := NewCatalog(api, zerolog.Nop())
	catalog.Load(context.Background())

	assert.Equal(t, []string{"All", "Crime", "Science Fiction"}, catalog.Categories())
}
