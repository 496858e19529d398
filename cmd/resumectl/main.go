// Package main implements resumectl, the offline companion CLI of the resume
// builder.
package main

import (
	"fmt"
	"os"

	"resume-builder/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Resume builder command line tools",
	Long:          "Exports resume drafts to PDF, renders QR codes and packages the project without running the HTTP server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()
	logging.Init("resumectl")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
