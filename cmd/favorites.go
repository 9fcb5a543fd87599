package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moviatask/moviactl/controller"
)

// favCmd groups favourites operations
var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage your liked movies",
	Long: `List and toggle liked movies. Unlike show --like, every toggle here
re-fetches the liked list from the server, so the printed list is
always authoritative.`,
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your liked movies",
	RunE:  runFavList,
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <movie-id>",
	Short: "Like or unlike a movie, then refresh the list",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavToggle,
}

func init() {
	favCmd.AddCommand(favListCmd)
	favCmd.AddCommand(favToggleCmd)
	rootCmd.AddCommand(favCmd)
}

func runFavList(cmd *cobra.Command, args []string) error {
	favorites := controller.NewFavorites(apiClient, logger)
	favorites.Load(context.Background())

	snap := favorites.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load favourites: %s", snap.Err)
	}

	fmt.Print(formatMovieList(snap.Data.Movies, snap.Data.Liked, false))
	return nil
}

func runFavToggle(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id: %s", args[0])
	}

	ctx := context.Background()
	favorites := controller.NewFavorites(apiClient, logger)
	favorites.Load(ctx)

	snap := favorites.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load favourites: %s", snap.Err)
	}

	favorites.ToggleFavourite(ctx, id)
	snap = favorites.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("failed to update favourite: %s", snap.Err)
	}

	fmt.Print(formatMovieList(snap.Data.Movies, snap.Data.Liked, false))
	return nil
}
