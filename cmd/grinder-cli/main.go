package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"

	"github.com/peterkuimelis/grinder/internal/config"
	"github.com/peterkuimelis/grinder/internal/game"
	"github.com/peterkuimelis/grinder/internal/log"
	grindernet "github.com/peterkuimelis/grinder/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		err = runLocal(ctx, cfg, os.Args[2:])
	case "host":
		err = runHost(ctx, cfg, os.Args[2:])
	case "join":
		err = runJoin(ctx, cfg, os.Args[2:])
	case "cards":
		runCards()
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  grinder run  [--deck N] [--decks FILE] [--seed S] [--no-shuffle] [--stop-at-payoff] [--auto]")
	fmt.Println("  grinder host [--port P] [--decks FILE] [--seed S] [--no-shuffle] [--stop-at-payoff]")
	fmt.Println("  grinder join [--deck N] [--addr ADDR] [--seed S]")
	fmt.Println("  grinder cards")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run     Draw through a deck locally, interactively or with --auto")
	fmt.Println("  host    Serve a run to one client over TCP")
	fmt.Println("  join    Connect to a host and draw interactively")
	fmt.Println("  cards   List the built-in cards and their abilities")
	fmt.Println()
	fmt.Println("Flag defaults come from GRINDER_* environment variables.")
}

func runLocal(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	deck := fs.Int("deck", cfg.Deck, "deck number to use (from decks.yaml)")
	decksFile := fs.String("decks", cfg.DecksFile, "path to decks file")
	seed := fs.Int64("seed", cfg.Seed, "shuffle seed (0 = random)")
	noShuffle := fs.Bool("no-shuffle", cfg.NoShuffle, "draw in deck file order")
	stopAtPayoff := fs.Bool("stop-at-payoff", cfg.StopAtPayoff, "end the run when a payoff activates")
	auto := fs.Bool("auto", false, "draw every card without prompting")
	fs.Parse(args)

	if !*auto {
		return playLocal(ctx, &grindernet.Server{
			DeckFile:     *decksFile,
			Seed:         *seed,
			NoShuffle:    *noShuffle,
			StopAtPayoff: *stopAtPayoff,
			Out:          io.Discard,
		}, *deck)
	}

	lib, err := game.DeckByNumber(*decksFile, *deck)
	if err != nil {
		return err
	}
	run := game.NewRun(game.RunConfig{
		Library:      lib,
		Logger:       log.NewTextLogger(os.Stdout),
		Seed:         *seed,
		NoShuffle:    *noShuffle,
		StopAtPayoff: *stopAtPayoff,
	})
	if _, err := run.RunToCompletion(ctx); err != nil {
		return err
	}
	fmt.Printf("\nSeed %d: %s\n", run.Seed(), run.Result())
	return nil
}

// playLocal serves a run over an in-memory pipe and drives it from the
// terminal REPL.
func playLocal(ctx context.Context, srv *grindernet.Server, deck int) error {
	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()

	errCh := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		errCh <- srv.Serve(ctx, serverConn)
	}()

	if err := grindernet.Join(clientConn, deck, srv.Seed); err != nil {
		return err
	}
	if err := grindernet.NewClient(clientConn, nil, nil).RunREPL(ctx); err != nil {
		return err
	}
	clientConn.Close()
	return <-errCh
}

func runHost(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	port := fs.String("port", cfg.Port, "TCP port to listen on")
	decksFile := fs.String("decks", cfg.DecksFile, "path to decks file")
	seed := fs.Int64("seed", cfg.Seed, "shuffle seed when the client sends none (0 = random)")
	noShuffle := fs.Bool("no-shuffle", cfg.NoShuffle, "draw in deck file order")
	stopAtPayoff := fs.Bool("stop-at-payoff", cfg.StopAtPayoff, "end the run when a payoff activates")
	fs.Parse(args)

	srv := &grindernet.Server{
		DeckFile:     *decksFile,
		Port:         *port,
		Seed:         *seed,
		NoShuffle:    *noShuffle,
		StopAtPayoff: *stopAtPayoff,
	}
	return srv.Run(ctx)
}

func runJoin(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	deck := fs.Int("deck", cfg.Deck, "deck number to use (from decks.yaml)")
	addr := fs.String("addr", "localhost:"+cfg.Port, "server address to connect to")
	seed := fs.Int64("seed", cfg.Seed, "shuffle seed (0 = host default)")
	fs.Parse(args)

	return grindernet.Connect(ctx, *addr, *deck, *seed)
}

func runCards() {
	for _, name := range game.RegistryNames() {
		c := game.LookupCard(name)
		fmt.Println(c.DisplayString())
		for _, a := range c.Abilities {
			fmt.Printf("    %s\n", a)
		}
	}
}
