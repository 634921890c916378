// Package commands implements the CLI subcommands.
package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"locman/internal/client"
)

// RunImportCSV pushes a CSV file through the API client to a running server.
func RunImportCSV(args []string) {
	fs := flag.NewFlagSet("import-csv", flag.ExitOnError)
	file := fs.String("file", "", "Path to the CSV file to import (required)")
	server := fs.String("server", "http://localhost:8000", "Base URL of the running server")
	updatedBy := fs.String("updated-by", "csv_import", "Attribution recorded on written translations")
	timeout := fs.Duration("timeout", 2*time.Minute, "Request timeout")
	fs.Usage = func() {
		fmt.Println("Usage: locman import-csv -file <path> [-server <url>] [-updated-by <name>]")
		fmt.Println()
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *file == "" {
		fs.Usage()
		os.Exit(1)
	}

	csvData, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Failed to read CSV file: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	api := client.New(*server)
	result, err := api.ImportCSV(ctx, string(csvData), *updatedBy)
	if err != nil {
		fmt.Printf("CSV import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("CSV import completed:")
	fmt.Printf("  Rows processed:       %d\n", result.TotalRowsProcessed)
	fmt.Printf("  Keys created:         %d\n", result.CreatedKeys)
	fmt.Printf("  Keys updated:         %d\n", result.UpdatedKeys)
	fmt.Printf("  Translations written: %d\n", result.TranslationsUpdated)
}
