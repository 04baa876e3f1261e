package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/grinder/internal/config"
	"github.com/peterkuimelis/grinder/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.WebPort, "HTTP port to listen on")
	decksFile := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	flag.Parse()

	srv, err := web.NewServer(*decksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("grinder web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
