package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/storage/mongo"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage session records",
}

var sessionPutCmd = &cobra.Command{
	Use:   "put <token> <username>",
	Short: "Store a session so the token authenticates as username",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Cleanup()

		s := domain.Session{Token: args[0], Username: args[1]}
		if cfg.Public.SessionBackend == config.SessionBackendMongo {
			err = putMongoSession(cmd.Context(), cfg, s)
		} else {
			err = storage.Sessions().Put(cmd.Context(), s)
		}
		if err != nil {
			return err
		}
		success("Session stored for %s", s.Username)
		return nil
	},
}

func putMongoSession(ctx context.Context, cfg *config.Config, s domain.Session) error {
	store, err := mongo.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Cleanup(ctx)
	return store.Put(ctx, s)
}

func init() {
	sessionCmd.AddCommand(sessionPutCmd)
	RootCmd.AddCommand(sessionCmd)
}
