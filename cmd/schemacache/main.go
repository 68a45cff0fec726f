// Command schemacache is a diagnostic CLI for the schema cache library.
// It exercises the cache against an in-memory data layer and reports
// hit/miss statistics, which is handy when tuning TTLs and capacity.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Scheevel/schemacache/config"
)

var (
	cfg config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:           "schemacache",
	Short:         "Inspect and exercise the schema cache",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment variables win either way.
		_ = godotenv.Load()

		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
			log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
