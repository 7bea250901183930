// Package main provides the entry point for the AutoFolio resume extraction
// service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autofolio",
	Short: "AutoFolio resume extraction service",
	Long:  "AutoFolio extracts structured portfolio profiles from resume PDFs, with remote parsing, local heuristic fallback, and LLM-generated About Me sections.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
