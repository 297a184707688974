package cmd

import (
	"github.com/indexly/subgraph-store/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema migrations for the dynamic data source relations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := db.RunMigrations(); err != nil {
				log.Fatal().Err(err).Msg("Failed to run migrations")
			}
		},
	}
)
