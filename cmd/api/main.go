// Package main provides the entry point for the Aurelia skincare API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aurelia",
	Short: "Aurelia skincare advice API",
	Long:  "Aurelia collects a short skin questionnaire, derives a skincare recommendation and serves it back per visitor.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
