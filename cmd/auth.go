package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authEmail   string
	authName    string
	authSurname string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Movia account",
	Long: `Sign in with your email and password. On success the session token
is stored in secure local storage and reused by later commands until
you log out.`,
	RunE: runLogin,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Movia account",
	RunE:  runRegister,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session token",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "account email (prompted when omitted)")
	registerCmd.Flags().StringVar(&authEmail, "email", "", "account email (prompted when omitted)")
	registerCmd.Flags().StringVar(&authName, "name", "", "first name (prompted when omitted)")
	registerCmd.Flags().StringVar(&authSurname, "surname", "", "surname (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := authEmail
	if email == "" {
		var err error
		if email, err = promptLine("Email"); err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("Please enter your email")
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("Please enter your password")
	}

	user, err := apiClient.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Signed in as %s %s <%s>\n", user.Name, user.Surname, user.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	name := authName
	surname := authSurname
	email := authEmail
	var err error

	if name == "" {
		if name, err = promptLine("Name"); err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("Please enter your name")
	}
	if surname == "" {
		if surname, err = promptLine("Surname"); err != nil {
			return err
		}
	}
	if surname == "" {
		return fmt.Errorf("Please enter your surname")
	}
	if email == "" {
		if email, err = promptLine("Email"); err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("Please enter your email")
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("Please enter your password")
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if confirm == "" {
		return fmt.Errorf("Please confirm your password")
	}
	if password != confirm {
		return fmt.Errorf("Passwords do not match")
	}

	user, err := apiClient.Register(context.Background(), name, surname, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account created for %s %s <%s>\n", user.Name, user.Surname, user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if !sessionManager.IsLoggedIn() {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := sessionManager.ClearToken(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}
