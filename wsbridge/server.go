package wsbridge

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Config configures the bridge server.
type Config struct {
	// OnSession is called for every connected browser before its read loop
	// starts. It typically binds the session to a views.Router. The session
	// is closed when the browser disconnects or the request is cancelled.
	OnSession func(s *Session)

	// CheckOrigin overrides the upgrader's origin check. When nil, the
	// request Origin must match the Host.
	CheckOrigin func(r *http.Request) bool

	// ReadBufferSize and WriteBufferSize size the connection buffers.
	// Defaults to 1024 bytes each.
	ReadBufferSize  int
	WriteBufferSize int

	// Logger is used for connection errors. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server upgrades HTTP requests to bridge sessions.
type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
}

// NewServer returns a server for cfg.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ReadBufferSize == 0 {
		cfg.ReadBufferSize = 1024
	}
	if cfg.WriteBufferSize == 0 {
		cfg.WriteBufferSize = 1024
	}

	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
}

// ServeHTTP upgrades the connection and runs the session until it ends.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an error status.
		s.cfg.Logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	session := NewSession(conn, s.cfg.Logger)
	if s.cfg.OnSession != nil {
		s.cfg.OnSession(session)
	}

	if err := session.Run(r.Context()); err != nil {
		s.cfg.Logger.Warn("bridge session ended", "error", err)
	}
}
