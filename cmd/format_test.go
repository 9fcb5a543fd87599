package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviatask/moviactl/movia"
)

var formatMovies = []movia.Movie{
	{ID: 1, Title: "Inception", Year: 2010, Rating: 8.75, Category: "Science Fiction", Actors: []string{"Leonardo DiCaprio"}},
	{ID: 2, Title: "The Godfather", Year: 1972, Rating: 9.2, Category: "Crime"},
}

func TestFormatMovieListEmpty(t *testing.T) {
	assert.Equal(t, "No movies found", formatMovieList(nil, nil, false))
}

func TestFormatMovieList(t *testing.T) {
	out := formatMovieList(formatMovies, map[int]bool{2: true}, true)

	assert.Contains(t, out, "Movies (2):")
	assert.Contains(t, out, "Inception (2010)")
	assert.Contains(t, out, "[8.8]", "rating rendered with one decimal")
	assert.Contains(t, out, "♥ The Godfather")
	assert.Contains(t, out, "cast: Leonardo DiCaprio")
}

func TestFormatMovieListSingular(t *testing.T) {
	out := formatMovieList(formatMovies[:1], nil, false)
	assert.Contains(t, out, "Movie (1):")
}

func TestFormatMovieDetail(t *testing.T) {
	movie := movia.Movie{
		ID: 1, Title: "Inception", Year: 2010, Rating: 8.8,
		Category: "Science Fiction", Description: "Dreams within dreams.",
		PosterURL: "https://example.com/p.jpg",
	}

	out := formatMovieDetail(movie, true)
	assert.Contains(t, out, "Inception (2010)")
	assert.Contains(t, out, "Rating:    8.8")
	assert.Contains(t, out, "Favourite: yes")
	assert.Contains(t, out, "Dreams within dreams.")

	out = formatMovieDetail(movie, false)
	assert.Contains(t, out, "Favourite: no")
}
