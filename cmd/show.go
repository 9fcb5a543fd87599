package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moviatask/moviactl/controller"
)

var (
	showLike   bool
	showUnlike bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <movie-id>",
	Short: "Show one movie in detail",
	Long: `Show a movie's details and favourite status. With --like or --unlike
the favourite flag is toggled optimistically: it flips as soon as the
server accepts the change and stays put if the call fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showLike, "like", false, "mark this movie as a favourite")
	showCmd.Flags().BoolVar(&showUnlike, "unlike", false, "remove this movie from favourites")
	showCmd.MarkFlagsMutuallyExclusive("like", "unlike")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id: %s", args[0])
	}

	ctx := context.Background()
	detail := controller.NewDetail(apiClient, logger)
	detail.Load(ctx, id)

	snap := detail.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load movie: %s", snap.Err)
	}
	if snap.Err != "" {
		// Advisory: detail loaded, favourite status unknown
		logger.Warn().Str("reason", snap.Err).Msg("Favourite status unavailable")
	}

	if (showLike && !snap.Data.IsFavorite) || (showUnlike && snap.Data.IsFavorite) {
		detail.ToggleFavourite(ctx)
		snap = detail.Snapshot()
		if snap.Err != "" {
			return fmt.Errorf("failed to update favourite: %s", snap.Err)
		}
	}

	fmt.Print(formatMovieDetail(*snap.Data.Movie, snap.Data.IsFavorite))
	return nil
}
