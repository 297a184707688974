package cmd

import (
	"os"

	configs "github.com/indexly/subgraph-store/configs"
	customLogger "github.com/indexly/subgraph-store/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "subgraph-store",
		Short: "Inspect the dynamic data sources a deployment registered at runtime",
		Long:  "Inspect the dynamic data sources a deployment registered at runtime",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("postgres-host", "", "Postgres host")
	rootCmd.PersistentFlags().Int("postgres-port", 5432, "Postgres port")
	rootCmd.PersistentFlags().String("postgres-username", "", "Postgres username")
	rootCmd.PersistentFlags().String("postgres-password", "", "Postgres password")
	rootCmd.PersistentFlags().String("postgres-database", "", "Postgres database")
	rootCmd.PersistentFlags().String("postgres-ssl-mode", "", "Postgres SSL mode")
	rootCmd.PersistentFlags().Bool("metrics-enabled", false, "Whether to expose Prometheus metrics")
	rootCmd.PersistentFlags().Int("metrics-port", 2112, "Port to expose Prometheus metrics on")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("postgres.host", rootCmd.PersistentFlags().Lookup("postgres-host"))
	viper.BindPFlag("postgres.port", rootCmd.PersistentFlags().Lookup("postgres-port"))
	viper.BindPFlag("postgres.username", rootCmd.PersistentFlags().Lookup("postgres-username"))
	viper.BindPFlag("postgres.password", rootCmd.PersistentFlags().Lookup("postgres-password"))
	viper.BindPFlag("postgres.database", rootCmd.PersistentFlags().Lookup("postgres-database"))
	viper.BindPFlag("postgres.sslMode", rootCmd.PersistentFlags().Lookup("postgres-ssl-mode"))
	viper.BindPFlag("metrics.enabled", rootCmd.PersistentFlags().Lookup("metrics-enabled"))
	viper.BindPFlag("metrics.port", rootCmd.PersistentFlags().Lookup("metrics-port"))
	rootCmd.AddCommand(dataSourcesCmd)
	rootCmd.AddCommand(migrateCmd)
}

func initConfig() {
	configs.LoadConfig(cfgFile)
	customLogger.InitLogger()
}
