package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Rehneet11/LeetNotes/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively configure leetnotes",
	Long:  `Runs an interactive wizard that writes .leetnotes.yml in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
