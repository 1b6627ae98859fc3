package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mindanaodata/edu-portal/dataset"
	"github.com/mindanaodata/edu-portal/services"
)

// Offline export tool: writes every table as CSV into an output directory,
// optionally alongside the combined XLSX workbook. Useful for preparing
// scraping exercises without running the server.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	out := flag.String("out", "export", "output directory")
	seed := flag.Int64("seed", 42, "dataset seed")
	xlsx := flag.Bool("xlsx", false, "also write the combined XLSX workbook")
	flag.Parse()

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Mindanao Education Data Portal - Dataset Export")
	fmt.Println(separator)
	fmt.Println()
	fmt.Printf("Seed: %d\n", *seed)
	fmt.Printf("Output directory: %s\n", *out)
	fmt.Println()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	datasets := services.NewDatasetService(*seed)
	exports := services.NewExportService(nil, time.Hour)

	coll, err := datasets.Collection()
	if err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	for _, t := range coll.Tables() {
		data, err := exports.CSV(t)
		if err != nil {
			log.Fatalf("Failed to render %s: %v", t.Name, err)
		}
		name := filepath.Join(*out, t.Name+"_data.csv")
		if err := os.WriteFile(name, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
		fmt.Printf("  %-40s %6d rows\n", name, t.Len())
	}

	if *xlsx {
		data, err := exports.Workbook(coll.Tables())
		if err != nil {
			log.Fatalf("Failed to render workbook: %v", err)
		}
		name := filepath.Join(*out, "education_portal.xlsx")
		if err := os.WriteFile(name, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
		fmt.Printf("  %-40s %6d sheets\n", name, len(dataset.TableNames))
	}

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("Export completed successfully")
	fmt.Println(separator)
}
