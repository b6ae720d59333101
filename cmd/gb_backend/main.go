package main

import (
	"os"

	"github.com/SscSPs/garage_books/internal/commands"
)

// @title Garage Books API
// @version 1.0
// @description Double-entry bookkeeping for a small garage: chart of accounts, journal postings, VAT documents and reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
