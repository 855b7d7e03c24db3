package cmd

import (
	"github.com/shyptr/gqldb/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gqldb",
	Short: "gqldb - a GraphQL schema database",
	Long: `gqldb stores GraphQL type definitions sent over TCP or websocket
connections and answers every document with its canonical form.

Commands:
  serve   - run the database server
  check   - parse and validate documents
  tokens  - print the tokens of a document`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}
