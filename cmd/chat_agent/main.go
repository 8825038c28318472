// Package main provides the entry point for the resume chat wizard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chat_agent",
	Short: "Resume chat wizard",
	Long:  "Resume chat wizard walks a user through a staged conversation, extracts resume facts from each answer, and converts the collected state into resume form data, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
