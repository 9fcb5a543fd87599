package controller

import (
	"context"
	"sync"

	"github.com/moviatask/moviactl/movia"
)

// fakeAPI implements API and ProfileAPI in memory, counting calls so
// tests can assert which operations hit the "network".
type fakeAPI struct {
	mu     sync.Mutex
	movies []movia.Movie
	liked  map[int]bool
	calls  map[string]int

	moviesErr      error
	movieErr       error
	likedIDsErr    error
	likedMoviesErr error
	likeErr        error
	unlikeErr      error

	profile    movia.Profile
	profileErr error
	updateUser movia.User
	updateErr  error
}

func newFakeAPI(movies ...movia.Movie) *fakeAPI {
	return &fakeAPI{
		movies: movies,
		liked:  map[int]bool{},
		calls:  map[string]int{},
	}
}

func (f *fakeAPI) count(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
}

func (f *fakeAPI) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeAPI) Movies(ctx context.Context) ([]movia.Movie, error) {
	f.count("movies")
	if f.moviesErr != nil {
		return nil, f.moviesErr
	}
	return f.movies, nil
}

func (f *fakeAPI) Movie(ctx context.Context, id int) (movia.Movie, error) {
	f.count("movie")
	if f.movieErr != nil {
		return movia.Movie{}, f.movieErr
	}
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return movia.Movie{}, &movia.ServerError{StatusCode: 404, Message: "Not found"}
}

func (f *fakeAPI) LikedMovieIDs(ctx context.Context) ([]int, error) {
	f.count("likedIDs")
	if f.likedIDsErr != nil {
		return nil, f.likedIDsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int
	for _, m := range f.movies {
		if f.liked[m.ID] {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

func (f *fakeAPI) LikedMovies(ctx context.Context) ([]movia.Movie, error) {
	f.count("likedMovies")
	if f.likedMoviesErr != nil {
		return nil, f.likedMoviesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []movia.Movie
	for _, m := range f.movies {
		if f.liked[m.ID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeAPI) Like(ctx context.Context, id int) error {
	f.count("like")
	if f.likeErr != nil {
		return f.likeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.liked[id] = true
	return nil
}

func (f *fakeAPI) Unlike(ctx context.Context, id int) error {
	f.count("unlike")
	if f.unlikeErr != nil {
		return f.unlikeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.liked, id)
	return nil
}

func (f *fakeAPI) Profile(ctx context.Context) (movia.Profile, error) {
	f.count("profile")
	if f.profileErr != nil {
		return movia.Profile{}, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, name, surname, email string) (movia.User, error) {
	f.count("updateProfile")
	if f.updateErr != nil {
		return movia.User{}, f.updateErr
	}
	return f.updateUser, nil
}

var (
	inception = movia.Movie{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Category: "Science Fiction"}
	godfather = movia.Movie{ID: 2, Title: "The Godfather", Year: 1972, Rating: 9.2, Category: "Crime"}
)
