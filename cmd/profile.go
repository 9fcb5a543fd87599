package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moviatask/moviactl/controller"
)

var (
	profileName    string
	profileSurname string
	profileEmail   string
)

// profileCmd groups profile operations
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name, surname, or email",
	Long: `Update the editable profile fields. Omitted flags keep their current
value. The printed result is what the server stored, which may differ
from the input if the server normalizes it.`,
	RunE: runProfileUpdate,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "new first name")
	profileUpdateCmd.Flags().StringVar(&profileSurname, "surname", "", "new surname")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "new email")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	profile := controller.NewProfile(apiClient, logger)
	profile.Load(context.Background())

	snap := profile.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load profile: %s", snap.Err)
	}

	printProfile(snap.Data)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	profile := controller.NewProfile(apiClient, logger)
	profile.Load(ctx)

	snap := profile.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load profile: %s", snap.Err)
	}

	name := snap.Data.Name
	surname := snap.Data.Surname
	email := snap.Data.Email
	if cmd.Flags().Changed("name") {
		name = profileName
	}
	if cmd.Flags().Changed("surname") {
		surname = profileSurname
	}
	if cmd.Flags().Changed("email") {
		email = profileEmail
	}

	profile.Update(ctx, name, surname, email)
	snap = profile.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("update failed: %s", snap.Err)
	}

	fmt.Println(snap.Data.Success)
	printProfile(snap.Data)
	return nil
}

func printProfile(data controller.ProfileData) {
	fmt.Printf("\n%s %s <%s>\n", data.Name, data.Surname, data.Email)
	if data.CreatedAt != "" {
		fmt.Printf("Member since: %s\n", data.CreatedAt)
	}
	if len(data.LikedMovies) > 0 {
		ids := make([]string, len(data.LikedMovies))
		for i, id := range data.LikedMovies {
			ids[i] = fmt.Sprintf("%d", id)
		}
		fmt.Printf("Liked movies: %s\n", strings.Join(ids, ", "))
	}
}
