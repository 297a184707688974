package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	config "github.com/indexly/subgraph-store/configs"
	"github.com/indexly/subgraph-store/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	deploymentID string

	dataSourcesCmd = &cobra.Command{
		Use:   "datasources",
		Short: "Print a deployment's dynamic data sources in creation order",
		Run: func(cmd *cobra.Command, args []string) {
			if config.Cfg.Metrics.Enabled {
				go func() {
					http.Handle("/metrics", promhttp.Handler())
					if err := http.ListenAndServe(fmt.Sprintf(":%d", config.Cfg.Metrics.Port), nil); err != nil {
						log.Error().Err(err).Msg("Failed to start metrics server")
					}
				}()
			}

			conn, err := storage.NewPostgresConnector(&config.Cfg.Postgres)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to postgres")
			}
			defer conn.Close()

			dataSources, err := conn.LoadDynamicDataSources(deploymentID)
			if err != nil {
				if storage.IsConstraintViolation(err) {
					log.Fatal().Err(err).Str("deployment", deploymentID).Msg("Deployment has corrupt dynamic data sources")
				}
				log.Fatal().Err(err).Str("deployment", deploymentID).Msg("Failed to load dynamic data sources")
			}

			enc := json.NewEncoder(os.Stdout)
			for _, ds := range dataSources {
				if err := enc.Encode(ds); err != nil {
					log.Fatal().Err(err).Msg("Failed to encode data source")
				}
			}
		},
	}
)

func init() {
	dataSourcesCmd.Flags().StringVar(&deploymentID, "deployment", "", "Deployment id to load dynamic data sources for")
	dataSourcesCmd.MarkFlagRequired("deployment")
}
