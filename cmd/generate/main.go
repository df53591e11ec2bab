package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"folio.dev/internal/catalog"
	"folio.dev/internal/seed"
	"folio.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <projects-file>  (export a custom catalog)")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	var projectsFile string
	if len(os.Args) > 2 {
		projectsFile = os.Args[2]
	}

	list, err := seed.Load(projectsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load projects: %v\n", err)
		os.Exit(1)
	}

	store, err := catalog.New(list.Projects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build catalog: %v\n", err)
		os.Exit(1)
	}
	svc := services.NewProjectService(store)

	// Ensure output directory exists
	projectsDir := filepath.Join(outputDir, "projects")
	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	write := func(path string, v any) {
		if err := writeJSON(path, v); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			failed++
			return
		}
		fmt.Printf("  Created %s\n", path)
	}

	fmt.Printf("Exporting %d projects...\n", store.Len())

	write(filepath.Join(outputDir, "cards.json"), svc.List(catalog.AllCategories, "", ""))
	write(filepath.Join(outputDir, "featured.json"), svc.Featured())
	write(filepath.Join(outputDir, "categories.json"), svc.Categories())

	for _, p := range svc.GetAll() {
		detail, err := svc.GetDetail(p.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			failed++
			continue
		}
		write(filepath.Join(projectsDir, fmt.Sprintf("%d.json", p.ID)), detail)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d files failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
