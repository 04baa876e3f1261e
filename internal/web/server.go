package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/peterkuimelis/grinder/internal/game"
	grindernet "github.com/peterkuimelis/grinder/internal/net"
)

//go:embed static
var staticFiles embed.FS

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number    int      `json:"number"`
	Name      string   `json:"name"`
	Commander string   `json:"commander,omitempty"`
	Size      int      `json:"size"`
	Cards     []string `json:"cards"`
}

// Server is the grinder web UI server. Each WebSocket connection drives its
// own run in-process.
type Server struct {
	decksFile string
	mux       *http.ServeMux
}

// NewServer creates a new web server reading decks from decksFile.
func NewServer(decksFile string) (*Server, error) {
	s := &Server{
		decksFile: decksFile,
		mux:       http.NewServeMux(),
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRoutes() error {
	// Embedded static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("static files: %w", err)
	}

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)

	// Run driver
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	return nil
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	cards, err := loadCards(s.decksFile)
	if err != nil {
		log.Printf("Decks file %s: %v", s.decksFile, err)
		http.Error(w, "could not load decks file", http.StatusInternalServerError)
		return
	}
	writeJSON(w, cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := loadDeckInfos(s.decksFile)
	if err != nil {
		log.Printf("Decks file %s: %v", s.decksFile, err)
		http.Error(w, "could not load decks file", http.StatusInternalServerError)
		return
	}
	writeJSON(w, decks)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	var session *grindernet.Session

	for {
		var msg grindernet.ClientMessage
		// wsjson closes the connection itself on malformed JSON
		if err := wsjson.Read(ctx, wsConn, &msg); err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var reply grindernet.ServerMessage
		switch {
		case msg.Type == grindernet.MsgStart:
			session, reply = s.startRun(msg)

		case session == nil:
			reply = grindernet.ErrorMessage(fmt.Errorf("no run started: send %q first", grindernet.MsgStart))

		default:
			var quit bool
			reply, quit = session.Handle(ctx, msg)
			if quit {
				wsConn.Close(websocket.StatusNormalClosure, "run ended")
				return
			}
		}

		if err := wsjson.Write(ctx, wsConn, reply); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

// startRun loads the requested deck and starts a new run. On failure the
// returned session is nil and the reply is an error message.
func (s *Server) startRun(msg grindernet.ClientMessage) (*grindernet.Session, grindernet.ServerMessage) {
	deck := msg.DeckNumber
	if deck == 0 {
		deck = 1
	}
	lib, err := game.DeckByNumber(s.decksFile, deck)
	if err != nil {
		return nil, grindernet.ErrorMessage(err)
	}
	session := grindernet.NewSession(game.RunConfig{
		Library:      lib,
		Seed:         msg.Seed,
		NoShuffle:    msg.NoShuffle,
		StopAtPayoff: msg.StopAtPayoff,
	})
	log.Printf("Run %s started: %s", session.ID, lib.Name)
	return session, session.Start()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encode response: %v", err)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
