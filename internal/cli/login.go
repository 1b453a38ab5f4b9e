package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
	"github.com/daykeep/daykeep/internal/domain"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Set the active user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Session.Login(args[0]); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Session.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		username, err := a.Session.CurrentUser()
		if errors.Is(err, domain.ErrNotAuthenticated) {
			fmt.Println("Not logged in. Run 'daykeep login <username>' first.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(username)
		return nil
	},
}
