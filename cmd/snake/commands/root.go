package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a terminal snake game with an http control surface",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	logLevel   = "info"
	difficulty = "medium"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, one of: [debug, info, warn, error]")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
