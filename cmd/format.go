package cmd

import (
	"fmt"
	"strings"

	"github.com/moviatask/moviactl/movia"
)

// formatMovieList renders movies as a tree-style console listing.
// liked may be nil when the liked set is unknown.
func formatMovieList(movies []movia.Movie, liked map[int]bool, showDetails bool) string {
	if len(movies) == 0 {
		return "No movies found"
	}

	var sb strings.Builder

	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		marker := " "
		if liked[movie.ID] {
			marker = "♥"
		}
		fmt.Fprintf(&sb, "%s %s %s (%d) [%.1f]\n", prefix, marker, movie.Title, movie.Year, movie.Rating)

		if showDetails {
			indent := "│ "
			if isLast {
				indent = "  "
			}
			fmt.Fprintf(&sb, "%s   id: %d  category: %s\n", indent, movie.ID, movie.Category)
			if len(movie.Actors) > 0 {
				fmt.Fprintf(&sb, "%s   cast: %s\n", indent, strings.Join(movie.Actors, ", "))
			}
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatMovieDetail renders a single movie with its favourite flag.
func formatMovieDetail(movie movia.Movie, isFavorite bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s (%d)\n", movie.Title, movie.Year)
	fmt.Fprintf(&sb, "Rating:    %.1f\n", movie.Rating)
	fmt.Fprintf(&sb, "Category:  %s\n", movie.Category)
	if len(movie.Actors) > 0 {
		fmt.Fprintf(&sb, "Cast:      %s\n", strings.Join(movie.Actors, ", "))
	}
	if movie.PosterURL != "" {
		fmt.Fprintf(&sb, "Poster:    %s\n", movie.PosterURL)
	}
	fav := "no"
	if isFavorite {
		fav = "yes ♥"
	}
	fmt.Fprintf(&sb, "Favourite: %s\n", fav)
	if movie.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", movie.Description)
	}

	return sb.String()
}
