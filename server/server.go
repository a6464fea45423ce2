package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lazharichir/pokerhands/config"
	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/game"
	"github.com/lazharichir/pokerhands/server/connection"
	dispatch "github.com/lazharichir/pokerhands/server/events"
	"github.com/lazharichir/pokerhands/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait    = 10 * time.Second
	maxBodyBytes = 1 << 16
)

// Server represents the HTTP and WebSocket surface
type Server struct {
	cfg        config.Config
	logger     *slog.Logger
	store      *events.InMemoryEventStore
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *dispatch.Dispatcher
}

// CompareRequest is the body of POST /api/compare
type CompareRequest struct {
	Black []string `json:"black"`
	White []string `json:"white"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new poker hands server
func NewServer(cfg config.Config, logger *slog.Logger) *Server {
	connMgr := connection.NewManager()

	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      events.NewBoundedEventStore(cfg.MaxSessions),
		connMgr:    connMgr,
		cmdRouter:  handlers.NewCommandRouter(connMgr, logger),
		dispatcher: dispatch.NewDispatcher(connMgr, logger),
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/compare", corsMiddleware(s.handleCompare))
	mux.HandleFunc("/api/rounds", corsMiddleware(s.handlePlayRound))
	mux.HandleFunc("/api/sessions/{id}/rounds", corsMiddleware(s.handleSessionRounds))
	return mux
}

// Start listens on the configured address
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) newSession(seed int64) *game.Session {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	return game.NewSession(seed, s.store, s.logger)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("error upgrading to websocket", "error", err)
		return
	}

	session := s.newSession(0)
	session.RegisterEventHandler(s.dispatcher.HandleEvent)

	client := &connection.Client{
		ID:      uuid.NewString(),
		Conn:    conn,
		Send:    make(chan []byte, 256),
		Session: session,
	}
	s.logger.Info("client connected", "remote", r.RemoteAddr, "client", client.ID, "session", session.ID)

	if welcome, err := dispatch.NewEnvelope("welcome", map[string]string{"clientId": client.ID, "sessionId": session.ID}); err == nil {
		client.Send <- welcome
	}

	s.connMgr.Register(client)

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister(client)
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read failed", "client", client.ID, "error", err)
			}
			return
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			s.logger.Info("command failed", "client", client.ID, "error", err)
			if err := s.cmdRouter.ReplyError(client, err); err != nil {
				s.logger.Warn("error reply not delivered", "client", client.ID, "error", err)
			}
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.logger.Warn("error writing message", "client", client.ID, "error", err)
			return
		}
	}

	// Channel closed
	client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// handleCompare evaluates two hands posted as card tokens
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	round, err := s.newSession(0).CompareTokens(req.Black, req.White)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, round)
}

// handlePlayRound deals one round on a fresh session
func (s *Server) handlePlayRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var seed int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "seed must be an integer"})
			return
		}
		seed = parsed
	}

	round, err := s.newSession(seed).PlayRound()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, round)
}

// handleSessionRounds replays the recorded rounds of a session
func (s *Server) handleSessionRounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rounds, err := game.History(s.store, r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if len(rounds) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, rounds)
}
