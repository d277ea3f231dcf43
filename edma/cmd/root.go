// Package cmd provides the command-line interface for the edma copy
// engine: emulated transfers, throughput runs, live monitoring, and the
// temperature sensor.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "edma",
	Short: "edma drives memory-to-memory DMA transfers over an emulated " +
		"eDMA channel.",
	Long: `edma drives memory-to-memory DMA transfers over an emulated ` +
		`eDMA channel. It can run single transfers, repeated throughput ` +
		`runs, serve a live monitoring endpoint, and read the emulated ` +
		`temperature sensor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env files are fine; the flags carry defaults.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Exiting through atexit lets recorders flush.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
