package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/peterkuimelis/grinder/internal/game"
	"github.com/peterkuimelis/grinder/internal/log"
)

// Server hosts a single run for one TCP client. The client chooses the deck;
// the host prints the event log.
type Server struct {
	DeckFile     string
	Port         string
	Seed         int64 // used when the client does not send one (0 = random)
	NoShuffle    bool
	StopAtPayoff bool
	Out          io.Writer // event log output, defaults to os.Stdout
}

// Run starts the server, waits for a client to join, then serves its run.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	fmt.Fprintf(s.out(), "Waiting for client on port %s...\n", s.Port)

	// Accept exactly one connection
	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Fprintf(s.out(), "Client connected from %s\n", conn.RemoteAddr())
	return s.Serve(ctx, conn)
}

// Serve runs the JSON-lines protocol on an established connection. The
// first message must be a join; every later request gets exactly one reply.
// Serve returns nil when the client quits or disconnects.
func (s *Server) Serve(ctx context.Context, conn net.Conn) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	if joinMsg.Type != MsgJoin {
		err := fmt.Errorf("expected %q message, got %q", MsgJoin, joinMsg.Type)
		_ = enc.Encode(ErrorMessage(err))
		return err
	}

	deck := joinMsg.DeckNumber
	if deck == 0 {
		deck = 1
	}
	seed := joinMsg.Seed
	if seed == 0 {
		seed = s.Seed
	}

	lib, err := game.DeckByNumber(s.DeckFile, deck)
	if err != nil {
		_ = enc.Encode(ErrorMessage(err))
		return fmt.Errorf("load deck: %w", err)
	}
	fmt.Fprintf(s.out(), "Client chose deck %d: %s (%d cards)\n", deck, lib.Name, lib.Count())

	session := NewSession(game.RunConfig{
		Library:      lib,
		Logger:       log.NewTextLogger(s.out()),
		Seed:         seed,
		NoShuffle:    s.NoShuffle,
		StopAtPayoff: s.StopAtPayoff,
	})
	if err := enc.Encode(session.Start()); err != nil {
		return fmt.Errorf("send start: %w", err)
	}

	for {
		var msg ClientMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read message: %w", err)
		}

		reply, quit := session.Handle(ctx, msg)
		if quit {
			return nil
		}
		if err := enc.Encode(reply); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
}

func (s *Server) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}
