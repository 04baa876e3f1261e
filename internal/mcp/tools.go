package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	mu sync.Mutex

	// activeSession is the singleton run session (one per stdio process).
	activeSession *RunSession

	// decksFile is the path to the decks YAML file, set by main.
	decksFile = "decks.yaml"
)

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	decksFile = path
}

// RegisterTools adds all run tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startRunTool(), handleStartRun)
	s.AddTool(drawCardTool(), handleDrawCard)
	s.AddTool(drawAllTool(), handleDrawAll)
	s.AddTool(getRunStateTool(), handleGetRunState)
}

// --- Tool definitions ---

func startRunTool() mcp.Tool {
	return mcp.NewTool("start_run",
		mcp.WithDescription("Start a new combo run. The deck is shuffled and its commander examined. "+
			"Returns the activation report and the events logged so far. "+
			"Only one run is active at a time; a finished run is replaced."),
		mcp.WithNumber("deck", mcp.Required(), mcp.Description("Deck number (1-indexed from decks.yaml)")),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed; omit or 0 for random")),
		mcp.WithBoolean("no_shuffle", mcp.Description("Draw in deck file order")),
		mcp.WithBoolean("stop_at_payoff", mcp.Description("End the run as soon as a payoff ability activates")),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Draw the next card, examine its abilities and converge. "+
			"Returns the card, the abilities it activated and the new active piece set."),
	)
}

func drawAllTool() mcp.Tool {
	return mcp.NewTool("draw_all",
		mcp.WithDescription("Draw until the library is empty (or the payoff fires with stop_at_payoff). "+
			"Returns every activation along the way and the run result."),
	)
}

func getRunStateTool() mcp.Tool {
	return mcp.NewTool("get_run_state",
		mcp.WithDescription("Get the current active pieces, ability catalog, hand and library size without drawing. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mu.Lock()
	defer mu.Unlock()

	if activeSession != nil && !activeSession.Over() {
		return mcp.NewToolResultError("A run is already in progress. Use draw_card or draw_all to finish it."), nil
	}

	deck := request.GetInt("deck", 0)
	if deck < 1 {
		return mcp.NewToolResultError("deck must be >= 1"), nil
	}

	sess, resp, err := NewRunSession(decksFile, RunOptions{
		Deck:         deck,
		Seed:         int64(request.GetInt("seed", 0)),
		NoShuffle:    request.GetBool("no_shuffle", false),
		StopAtPayoff: request.GetBool("stop_at_payoff", false),
	})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start run: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mu.Lock()
	defer mu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No run is active. Use start_run first."), nil
	}
	if activeSession.Over() {
		return mcp.NewToolResultError("The run is over. Use start_run to begin another."), nil
	}

	resp, err := activeSession.respond(activeSession.Draw())
	if err != nil {
		return mcp.NewToolResultErrorf("Draw failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleDrawAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mu.Lock()
	defer mu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No run is active. Use start_run first."), nil
	}
	if activeSession.Over() {
		return mcp.NewToolResultError("The run is over. Use start_run to begin another."), nil
	}

	resp, err := activeSession.respond(activeSession.DrawAll(ctx))
	if err != nil {
		return mcp.NewToolResultErrorf("Draw all failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetRunState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mu.Lock()
	defer mu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No run is active. Use start_run first."), nil
	}

	resp, err := activeSession.respond(activeSession.State())
	if err != nil {
		return mcp.NewToolResultErrorf("State failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
