package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "leetnotes",
	Short: "Turn solved coding problems into revision notes in a Google Doc",
	Long: `LeetNotes reads a solved coding-problem page, asks a generative AI
for structured revision notes, and appends them to a Google Doc.
It can run as a one-shot CLI or as a local trigger server for a
companion browser extension.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".leetnotes.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
