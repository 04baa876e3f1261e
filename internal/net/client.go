package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
)

// Client connects to a run server and provides a terminal REPL.
type Client struct {
	conn net.Conn
	in   io.Reader
	out  io.Writer
}

// NewClient wraps an established connection. Nil in/out default to the
// process's stdin/stdout.
func NewClient(conn net.Conn, in io.Reader, out io.Writer) *Client {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Client{conn: conn, in: in, out: out}
}

// Connect connects to a server, sends the deck choice, and runs the REPL.
func Connect(ctx context.Context, addr string, deckNumber int, seed int64) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	if err := Join(conn, deckNumber, seed); err != nil {
		return err
	}

	fmt.Println("Connected! Waiting for run to start...")

	return NewClient(conn, nil, nil).RunREPL(ctx)
}

// Join sends the initial join message.
func Join(conn net.Conn, deckNumber int, seed int64) error {
	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: MsgJoin, DeckNumber: deckNumber, Seed: seed}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	return nil
}

// RunREPL reads server messages, renders them and prompts for the next
// command until the run is over or the user quits.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(c.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case MsgError:
			return fmt.Errorf("server: %s", msg.Error)

		case MsgReport:
			c.renderMessage(msg)

		case MsgRunOver:
			c.renderMessage(msg)
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, "          RUN OVER")
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, msg.Result)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			return nil
		}

		cmd := c.readCommand(reader)
		if err := enc.Encode(ClientMessage{Type: cmd}); err != nil {
			return fmt.Errorf("send %s: %w", cmd, err)
		}
		if cmd == MsgQuit {
			return nil
		}
	}
}

func (c *Client) renderMessage(msg ServerMessage) {
	for _, ev := range msg.Events {
		c.renderEvent(ev)
	}
	c.renderReport(msg.Report)
}

func (c *Client) renderEvent(ev EventView) {
	// Format like the TextLogger
	kind := ev.Type
	for len(kind) < 9 {
		kind += " "
	}
	fmt.Fprintf(c.out, "#%-3d %s| %s\n", ev.Step, kind, ev.Details)
}

func (c *Client) renderReport(rv *ReportView) {
	if rv == nil {
		return
	}

	enabled := 0
	for _, a := range rv.Abilities {
		if a.Enabled {
			enabled++
		}
	}
	active := "(none)"
	if len(rv.Active) > 0 {
		active = strings.Join(rv.Active, ", ")
	}
	payoff := "no"
	if rv.Payoff {
		payoff = "yes"
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║  Step %d  Library: %d  Hand: %d\n", rv.Steps, rv.LibraryCount, len(rv.Hand))
	fmt.Fprintf(c.out, "║  Active: %s\n", active)
	fmt.Fprintf(c.out, "║  Abilities: %d/%d enabled  Payoff: %s\n", enabled, len(rv.Abilities), payoff)
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")

	if len(rv.Hand) > 0 {
		fmt.Fprintf(c.out, "\nHand: ")
		for i, name := range rv.Hand {
			fmt.Fprintf(c.out, "[%d] %s  ", i+1, name)
		}
		fmt.Fprintln(c.out)
	}
}

// readCommand prompts until the user enters a known command. End of input
// quits.
func (c *Client) readCommand(reader *bufio.Reader) string {
	for {
		fmt.Fprint(c.out, "\n(d)raw, (a)ll, (s)tate, (q)uit > ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" && err != nil {
			return MsgQuit
		}
		switch line {
		case "", "d", "draw":
			return MsgDraw
		case "a", "all":
			return MsgDrawAll
		case "s", "state":
			return MsgState
		case "q", "quit":
			return MsgQuit
		default:
			fmt.Fprintln(c.out, "Enter d, a, s or q")
		}
	}
}
