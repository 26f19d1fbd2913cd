// Package cmd wires the bharat-tutor CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bharat-tutor",
	Short: "Bilingual AI tutoring service",
	Long:  "Bharat AI Tutor: adaptive Hindi/English tutoring over chat, with quizzes, progress tracking, and study reminders.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the session snapshot file (overrides TUTOR_DATA_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
