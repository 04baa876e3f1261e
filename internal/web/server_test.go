package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	grindernet "github.com/peterkuimelis/grinder/internal/net"
)

const testDecks = `
cards:
  - name: Dwarven Trader
    role: Filler
    type: Creature
  - name: Mountain
    role: Filler
    type: Land
decks:
  - name: Green
    commander: Ashaya, Soul of the Wild
    cards:
      - name: Forest
        count: 5
      - name: Ley Weaver
        count: 1
      - name: Nylea, Keen-Eyed
        count: 1
      - name: Dwarven Trader
        count: 0
  - name: Red
    cards:
      - name: Mountain
        count: 3
      - name: Walking Ballista
        count: 1
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	decks := filepath.Join(dir, "decks.yaml")
	if err := os.WriteFile(decks, []byte(testDecks), 0o644); err != nil {
		t.Fatal(err)
	}

	srv, err := NewServer(decks)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Decode %s: %v", url, err)
	}
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<title>grinder</title>") {
		t.Errorf("Unexpected index page:\n%s", body)
	}

	resp, err = http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", resp.StatusCode)
	}
}

func TestAPICards(t *testing.T) {
	ts := newTestServer(t)

	var cards []grindernet.CardView
	getJSON(t, ts.URL+"/api/cards", &cards)
	if len(cards) != 12 {
		t.Fatalf("Expected 11 registry cards plus Dwarven Trader, got %d", len(cards))
	}

	byName := make(map[string]grindernet.CardView)
	for i, c := range cards {
		if i > 0 && cards[i-1].Name > c.Name {
			t.Errorf("Cards not sorted: %q before %q", cards[i-1].Name, c.Name)
		}
		byName[c.Name] = c
	}
	if trader, ok := byName["Dwarven Trader"]; !ok || len(trader.Abilities) != 0 {
		t.Errorf("Expected custom Dwarven Trader without abilities, got %+v", trader)
	}
	if mountain := byName["Mountain"]; mountain.Role != "Filler" {
		t.Errorf("Expected the decks file Mountain to override the registry, got %+v", mountain)
	}
	forest := byName["Forest"]
	if len(forest.Abilities) != 1 || forest.Abilities[0].Produces[0] != "InfiniteMana" {
		t.Errorf("Unexpected Forest abilities %+v", forest.Abilities)
	}
}

func TestAPICardsBadDecksFile(t *testing.T) {
	srv, err := NewServer(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	for _, path := range []string{"/api/cards", "/api/decks"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", path, resp.StatusCode)
		}
	}
}

func TestAPIDecks(t *testing.T) {
	ts := newTestServer(t)

	var decks []DeckInfo
	getJSON(t, ts.URL+"/api/decks", &decks)
	if len(decks) != 2 {
		t.Fatalf("Expected 2 decks, got %d", len(decks))
	}
	green := decks[0]
	if green.Number != 1 || green.Name != "Green" || green.Size != 7 || len(green.Cards) != 3 {
		t.Errorf("Unexpected deck info %+v", green)
	}
	for _, name := range green.Cards {
		if name == "Dwarven Trader" {
			t.Error("Zero-count entry listed among deck cards")
		}
	}
	if green.Commander != "Ashaya, Soul of the Wild" {
		t.Errorf("Unexpected commander %q", green.Commander)
	}
}

func TestWebSocketRun(t *testing.T) {
	ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.CloseNow()

	roundTrip := func(msg grindernet.ClientMessage) grindernet.ServerMessage {
		t.Helper()
		if err := wsjson.Write(ctx, conn, msg); err != nil {
			t.Fatalf("Write %s: %v", msg.Type, err)
		}
		var reply grindernet.ServerMessage
		if err := wsjson.Read(ctx, conn, &reply); err != nil {
			t.Fatalf("Read reply to %s: %v", msg.Type, err)
		}
		return reply
	}

	if reply := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgDraw}); reply.Type != grindernet.MsgError {
		t.Errorf("Expected error drawing before start, got %+v", reply)
	}
	if reply := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgStart, DeckNumber: 5}); reply.Type != grindernet.MsgError {
		t.Errorf("Expected error for unknown deck, got %+v", reply)
	}

	start := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgStart, DeckNumber: 1, NoShuffle: true})
	if start.Type != grindernet.MsgReport || start.Card == nil || start.Card.Name != "Ashaya, Soul of the Wild" {
		t.Fatalf("Unexpected start reply %+v", start)
	}

	draw := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgDraw})
	if draw.Card == nil || draw.Card.Name != "Forest" || draw.RunID != start.RunID {
		t.Errorf("Unexpected draw reply %+v", draw)
	}

	all := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgDrawAll})
	if all.Type != grindernet.MsgRunOver || !all.Report.Payoff {
		t.Errorf("Expected run over with payoff, got %+v", all)
	}

	// A new start replaces the finished run.
	red := roundTrip(grindernet.ClientMessage{Type: grindernet.MsgStart, DeckNumber: 2, NoShuffle: true})
	if red.RunID == start.RunID || red.Report.LibraryCount != 4 {
		t.Errorf("Expected a fresh run, got %+v", red)
	}
	red = roundTrip(grindernet.ClientMessage{Type: grindernet.MsgDrawAll})
	if red.Report.Payoff {
		t.Error("Walking Ballista needs mana, payoff should not fire")
	}

	if err := wsjson.Write(ctx, conn, grindernet.ClientMessage{Type: grindernet.MsgQuit}); err != nil {
		t.Fatal(err)
	}
	_, _, err = conn.Read(ctx)
	if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
		t.Errorf("Expected normal closure after quit, got %v", err)
	}
}
