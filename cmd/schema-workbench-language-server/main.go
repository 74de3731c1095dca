package main

import (
	"os"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp"
)

func main() {
	server, err := lsp.NewServer()
	if err != nil {
		log.Error("Failed to create LSP server: %v", err)
		os.Exit(1)
	}
	defer server.Close()

	// Run with stdio transport (for editors and the workbench shell)
	if err := server.RunStdio(); err != nil {
		log.Error("Server error: %v", err)
		os.Exit(1)
	}
}
