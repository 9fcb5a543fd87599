package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/moviatask/moviactl/movia"
)

// TogglePolicy selects the consistency strategy applied after a
// favourite mutation succeeds.
type TogglePolicy int

const (
	// OptimisticLocal flips the local flag once the mutation call
	// returns successfully and performs no refresh.
	OptimisticLocal TogglePolicy = iota
	// RefreshAfterMutation re-fetches the authoritative liked list
	// after every successful mutation.
	RefreshAfterMutation
)

// toggleFavourite moves movie id to the opposite of liked. It returns
// the new liked state and, under RefreshAfterMutation, the refreshed
// liked list. On a failed mutation the returned state equals the input
// state.
//
// Redundant toggles (liking an already-liked movie and vice versa) are
// success-equivalent: the server's state already matches the intent.
func toggleFavourite(ctx context.Context, api API, id int, liked bool, policy TogglePolicy) (bool, []movia.Movie, error) {
	var err error
	if liked {
		err = api.Unlike(ctx, id)
	} else {
		err = api.Like(ctx, id)
	}
	if err != nil && !isRedundantToggle(err) {
		return liked, nil, err
	}

	if policy == RefreshAfterMutation {
		movies, err := api.LikedMovies(ctx)
		if err != nil {
			// The mutation landed; only the refresh failed.
			return !liked, nil, err
		}
		return !liked, movies, nil
	}
	return !liked, nil, nil
}

// isRedundantToggle classifies a like/unlike rejection that indicates
// the server was already in the requested state: 409, or a 400 whose
// message says so.
func isRedundantToggle(err error) bool {
	var serr *movia.ServerError
	if !errors.As(err, &serr) {
		return false
	}
	if serr.StatusCode == 409 {
		return true
	}
	return serr.StatusCode == 400 && strings.Contains(strings.ToLower(serr.Message), "already")
}
