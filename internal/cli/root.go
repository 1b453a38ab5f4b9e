// Package cli implements the daykeep command-line interface using Cobra.
// Each subcommand maps to one engine operation (tap, stats, budget, water).
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "daykeep",
	Short: "Local habit, budget, and hydration tracking",
	Long: `daykeep is a local-first personal tracker.
Tap to keep a habit streak, log income and expenses, track water intake.
All state stays on your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	// Optional .env for DAYKEEP_HOME and friends; absence is fine.
	_ = godotenv.Load()

	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
