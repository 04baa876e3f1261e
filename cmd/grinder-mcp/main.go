package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/grinder/internal/config"
	grindermcp "github.com/peterkuimelis/grinder/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decks := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	flag.Parse()

	grindermcp.SetDecksFile(*decks)

	s := server.NewMCPServer("grinder", "1.0.0")
	grindermcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
