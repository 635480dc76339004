package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vitalvas/viewkit/views"
	"go.uber.org/atomic"
)

// MessageType identifies a bridge message.
type MessageType string

const (
	// TypeNavigate asks the browser to change its URL. Server to browser.
	TypeNavigate MessageType = "navigate"
	// TypeTitle asks the browser to set document.title. Server to browser.
	TypeTitle MessageType = "title"
	// TypeLocation reports the browser's current location. Browser to server.
	TypeLocation MessageType = "location"
)

// Message is the JSON frame exchanged with the browser.
type Message struct {
	Type     MessageType `json:"type"`
	ID       string      `json:"id,omitempty"`
	Fragment string      `json:"fragment,omitempty"`
	Path     string      `json:"path,omitempty"`
	Title    string      `json:"title,omitempty"`
	Trigger  bool        `json:"trigger,omitempty"`
	Replace  bool        `json:"replace,omitempty"`
}

// ErrClosed is returned when writing to a closed session.
var ErrClosed = errors.New("wsbridge: session closed")

const writeWait = 10 * time.Second

// Session drives one browser tab. It implements views.History and
// views.TitleSink.
type Session struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex
	closed  atomic.Bool

	location atomic.Pointer[location]
}

// location is replaced as a whole so Fragment and Path always agree.
type location struct {
	fragment string
	path     string
}

var (
	_ views.History   = (*Session)(nil)
	_ views.TitleSink = (*Session)(nil)
)

// NewSession wraps conn. If logger is nil, slog.Default() is used.
func NewSession(conn *websocket.Conn, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{conn: conn, logger: logger}
	s.setLocation("", "")
	return s
}

// Navigate sends a navigate message and records fragment as current.
func (s *Session) Navigate(fragment string, opts views.NavigateOptions) error {
	err := s.write(Message{
		Type:     TypeNavigate,
		ID:       uuid.NewString(),
		Fragment: fragment,
		Trigger:  opts.Trigger,
		Replace:  opts.Replace,
	})
	if err != nil {
		return err
	}
	s.setLocation(fragment, "")
	return nil
}

// Fragment returns the last known fragment of the browser.
func (s *Session) Fragment() string {
	return s.currentLocation().fragment
}

// Path returns the last known path of the browser.
func (s *Session) Path() string {
	return s.currentLocation().path
}

// Location returns the last known fragment and path as one consistent pair.
func (s *Session) Location() (fragment, path string) {
	loc := s.currentLocation()
	return loc.fragment, loc.path
}

func (s *Session) currentLocation() location {
	if loc := s.location.Load(); loc != nil {
		return *loc
	}
	return location{path: "/"}
}

// SetTitle sends a title message.
func (s *Session) SetTitle(title string) error {
	return s.write(Message{Type: TypeTitle, Title: title})
}

// Run reads messages until the connection fails or ctx is done, then
// closes the connection. A normal close by the browser returns nil.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-done:
		}
	}()

	defer s.Close()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("wsbridge: read: %w", err)
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("invalid bridge message", "error", err)
			continue
		}

		switch msg.Type {
		case TypeLocation:
			s.setLocation(msg.Fragment, msg.Path)
		default:
			s.logger.Debug("unexpected bridge message", "type", msg.Type)
		}
	}
}

// Close closes the underlying connection. It is safe to call more than once.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.conn.Close()
}

func (s *Session) write(msg Message) error {
	if s.closed.Load() {
		return ErrClosed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("wsbridge: write %s: %w", msg.Type, err)
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("wsbridge: write %s: %w", msg.Type, err)
	}
	return nil
}

// setLocation stores fragment and path. An empty path is derived from the
// fragment.
func (s *Session) setLocation(fragment, path string) {
	if path == "" {
		path = "/" + strings.SplitN(fragment, "?", 2)[0]
	}
	s.location.Store(&location{fragment: fragment, path: path})
}
