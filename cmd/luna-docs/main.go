package main

import (
	"fmt"
	"os"

	"github.com/luna-video/luna-lsp/internal/docs"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/luna-docs/main.go [output_file]")
		os.Exit(1)
	}

	content, err := docs.ExportJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export documentation: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		_, _ = os.Stdout.Write(content)
		return
	}

	if err := os.WriteFile(os.Args[1], content, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d symbols to %s\n", docs.Len(), os.Args[1])
}
