// Package controller orchestrates API calls into presentation-agnostic
// screen state. Each controller owns one snapshot; the presentation
// layer triggers loads and renders whatever Snapshot returns.
//
// Controllers tolerate concurrent in-flight requests. Every loading
// routine captures a generation counter when it starts and re-checks
// it before writing results back; a response that lost the race is
// dropped silently rather than clobbering newer state.
package controller

import (
	"context"
	"errors"

	"github.com/moviatask/moviactl/movia"
)

// Phase is the lifecycle position of a screen.
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Failed
)

// Snapshot is the state handed to the presentation layer. Err is a
// plain display string, never a raw error. A non-empty Err alongside
// Ready data is advisory: the data remains valid.
type Snapshot[T any] struct {
	Phase Phase
	Err   string
	Data  T
}

// IsLoading reports whether a load is in flight.
func (s Snapshot[T]) IsLoading() bool { return s.Phase == Loading }

// API is the slice of the movia client the catalog controllers need.
// *movia.Client satisfies it; tests substitute fakes.
type API interface {
	Movies(ctx context.Context) ([]movia.Movie, error)
	Movie(ctx context.Context, id int) (movia.Movie, error)
	LikedMovieIDs(ctx context.Context) ([]int, error)
	LikedMovies(ctx context.Context) ([]movia.Movie, error)
	Like(ctx context.Context, id int) error
	Unlike(ctx context.Context, id int) error
}

// ProfileAPI is the client slice used by the profile controller.
type ProfileAPI interface {
	Profile(ctx context.Context) (movia.Profile, error)
	UpdateProfile(ctx context.Context, name, surname, email string) (movia.User, error)
}

// errorText converts a client error into its display string. Server
// errors surface exactly the extracted message; everything else falls
// back to the error text.
func errorText(err error) string {
	var serr *movia.ServerError
	if errors.As(err, &serr) {
		return serr.Message
	}
	var nerr *movia.NetworkError
	if errors.As(err, &nerr) {
		return "Could not reach the server"
	}
	return err.Error()
}
