package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user records",
}

var userPutCmd = &cobra.Command{
	Use:   "put <username> <email>...",
	Short: "Store a user with the given email addresses",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Cleanup()

		user := domain.User{Username: args[0], Emails: args[1:]}
		if err := storage.SaveUser(cmd.Context(), user); err != nil {
			return err
		}
		success("User %s stored with groups %s", user.Username, strings.Join(user.EmailDomains(), ", "))
		return nil
	},
}

func init() {
	userCmd.AddCommand(userPutCmd)
	RootCmd.AddCommand(userCmd)
}
