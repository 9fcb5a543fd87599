package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviatask/moviactl/movia"
)

var testMovies = []movia.Movie{
	{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Category: "Science Fiction", Actors: []string{"Leonardo DiCaprio", "Elliot Page"}},
	{ID: 2, Title: "The Godfather", Year: 1972, Rating: 9.2, Category: "Crime", Actors: []string{"Marlon Brando", "Al Pacino"}},
	{ID: 3, Title: "Interstellar", Year: 2014, Rating: 8.6, Category: "Science Fiction", Actors: []string{"Matthew McConaughey"}},
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []int
	}{
		{
			name:     "no filters returns everything",
			search:   "",
			category: CategoryAll,
			wantIDs:  []int{1, 2, 3},
		},
		{
			name:     "empty category behaves like All",
			search:   "",
			category: "",
			wantIDs:  []int{1, 2, 3},
		},
		{
			name:     "case-insensitive title substring",
			search:   "incep",
			category: CategoryAll,
			wantIDs:  []int{1},
		},
		{
			name:     "uppercase search",
			search:   "GODFATHER",
			category: CategoryAll,
			wantIDs:  []int{2},
		},
		{
			name:     "category filter",
			search:   "",
			category: "Science Fiction",
			wantIDs:  []int{1, 3},
		},
		{
			name:     "search and category combine",
			search:   "inter",
			category: "Science Fiction",
			wantIDs:  []int{3},
		},
		{
			name:     "no matches",
			search:   "zzz",
			category: CategoryAll,
			wantIDs:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(testMovies, tt.search, tt.category)
			ids := make([]int, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchDoesNotMutateInput(t *testing.T) {
	before := make([]movia.Movie, len(testMovies))
	copy(before, testMovies)

	Match(testMovies, "incep", "Crime")
	assert.Equal(t, before, testMovies)
}

func TestCategories(t *testing.T) {
	got := Categories(testMovies)
	assert.Equal(t, []string{CategoryAll, "Crime", "Science Fiction"}, got)

	assert.Equal(t, []string{CategoryAll}, Categories(nil))
}
