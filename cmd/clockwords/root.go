package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "clockwords",
	Short: "Clockwords - natural-language time expression scanner",
	Long: `Clockwords finds relative time expressions ("yesterday", "vor drei Tagen",
"hier à 13h") in free text and resolves them against a reference instant.

It scans English, German, French and Spanish out of the box.`,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("langs", nil, "Languages to enable (default: all built-ins)")
	rootCmd.PersistentFlags().Bool("partial", true, "Report half-typed keywords as partial matches")
	rootCmd.PersistentFlags().Int("max-matches", 10, "Maximum matches per scan")

	// Flags double as CLOCKWORDS_* environment variables.
	viper.SetEnvPrefix("clockwords")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("langs", rootCmd.PersistentFlags().Lookup("langs"))
	viper.BindPFlag("partial", rootCmd.PersistentFlags().Lookup("partial"))
	viper.BindPFlag("max-matches", rootCmd.PersistentFlags().Lookup("max-matches"))

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
