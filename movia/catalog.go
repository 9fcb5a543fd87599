package movia

import (
	"context"
	"fmt"
)

// Movies retrieves the full movie catalog. There is no client-side
// cache; every call re-queries the server.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.get(ctx, "/movies", &movies); err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}
	c.logger.Debug().Int("count", len(movies)).Msg("Retrieved movie catalog")
	return movies, nil
}

// Movie retrieves a single movie by id. An unknown id surfaces as a
// *ServerError for which IsNotFound reports true.
func (c *Client) Movie(ctx context.Context, id int) (Movie, error) {
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/movies/%d", id), &movie); err != nil {
		return Movie{}, err
	}
	return movie, nil
}

// LikedMovieIDs retrieves the ids of the user's liked movies.
func (c *Client) LikedMovieIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := c.get(ctx, "/users/liked-movie-ids", &ids); err != nil {
		return nil, fmt.Errorf("failed to get liked movie ids: %w", err)
	}
	return ids, nil
}

// LikedMovies retrieves the user's liked movies.
func (c *Client) LikedMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.get(ctx, "/users/liked-movies", &movies); err != nil {
		return nil, fmt.Errorf("failed to get liked movies: %w", err)
	}
	c.logger.Debug().Int("count", len(movies)).Msg("Retrieved liked movies")
	return movies, nil
}

// Like marks a movie as liked. The response body is ignored. Redundant
// likes may be rejected by the server; classifying that as success is
// the caller's call (see controller.toggleFavourite).
func (c *Client) Like(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/movies/like/%d", id), nil, nil)
}

// Unlike removes a movie from the liked set. The response body is
// ignored.
func (c *Client) Unlike(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/movies/unlike/%d", id), nil, nil)
}
