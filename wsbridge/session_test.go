package wsbridge

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/viewkit/views"
)

func startBridge(t *testing.T) (*Session, *websocket.Conn) {
	t.Helper()

	sessions := make(chan *Session, 1)
	srv := httptest.NewServer(NewServer(Config{
		OnSession: func(s *Session) { sessions <- s },
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	select {
	case s := <-sessions:
		return s, conn
	case <-time.After(5 * time.Second):
		t.Fatal("no session")
	}
	return nil, nil
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSessionLocation(t *testing.T) {
	t.Run("initial location", func(t *testing.T) {
		s, _ := startBridge(t)
		assert.Equal(t, "", s.Fragment())
		assert.Equal(t, "/", s.Path())
	})

	t.Run("browser reports location", func(t *testing.T) {
		s, conn := startBridge(t)

		require.NoError(t, conn.WriteJSON(Message{Type: TypeLocation, Fragment: "projects?page=2", Path: "/projects"}))
		require.Eventually(t, func() bool { return s.Fragment() == "projects?page=2" }, 5*time.Second, 10*time.Millisecond)
		assert.Equal(t, "/projects", s.Path())
	})

	t.Run("invalid messages are ignored", func(t *testing.T) {
		s, conn := startBridge(t)

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
		require.NoError(t, conn.WriteJSON(Message{Type: "unknown"}))
		require.NoError(t, conn.WriteJSON(Message{Type: TypeLocation, Fragment: "projects"}))
		require.Eventually(t, func() bool { return s.Fragment() == "projects" }, 5*time.Second, 10*time.Millisecond)
		assert.Equal(t, "/projects", s.Path())
	})
}

func TestSessionWithRouter(t *testing.T) {
	s, conn := startBridge(t)

	r := views.NewRouter().History(s).Document(s)
	require.NoError(t, r.RegisterViews(map[string]string{
		"projects":     "listView",
		"projects/:id": "itemView",
	}, map[string]string{
		"listView": "View-Router | Projects",
		"itemView": "View-Router | <name>",
	}))

	require.NoError(t, r.GoToView("itemView", views.Attrs{"id": "1234", "name": "foobar"}, views.NavigateOptions{Trigger: true}))

	title := readMessage(t, conn)
	assert.Equal(t, TypeTitle, title.Type)
	assert.Equal(t, "View-Router | foobar", title.Title)

	nav := readMessage(t, conn)
	assert.Equal(t, TypeNavigate, nav.Type)
	assert.Equal(t, "projects/1234", nav.Fragment)
	assert.True(t, nav.Trigger)
	_, err := uuid.Parse(nav.ID)
	assert.NoError(t, err)

	assert.Equal(t, "projects/1234", s.Fragment())
	assert.Equal(t, "projects/1234", r.CurrentPath())

	t.Run("current route is skipped", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(Message{Type: TypeLocation, Fragment: "projects", Path: "/projects"}))
		require.Eventually(t, func() bool { return s.Fragment() == "projects" }, 5*time.Second, 10*time.Millisecond)

		require.NoError(t, r.GoToView("listView", nil, views.NavigateOptions{}))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	})
}

func TestSessionClose(t *testing.T) {
	s, conn := startBridge(t)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	require.Eventually(t, func() bool {
		return errors.Is(s.SetTitle("x"), ErrClosed)
	}, 5*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, s.Navigate("projects", views.NavigateOptions{}), ErrClosed)
	assert.NoError(t, s.Close())
}

func TestServerRejectsPlainHTTP(t *testing.T) {
	called := false
	srv := httptest.NewServer(NewServer(Config{
		OnSession: func(*Session) { called = true },
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called)
}

func TestServerCheckOrigin(t *testing.T) {
	srv := httptest.NewServer(NewServer(Config{
		CheckOrigin: func(*http.Request) bool { return false },
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSetLocation(t *testing.T) {
	s := &Session{}
	s.setLocation("projects/1?tab=a", "")
	assert.Equal(t, "projects/1?tab=a", s.Fragment())
	assert.Equal(t, "/projects/1", s.Path())

	s.setLocation("x", "/custom")
	assert.Equal(t, "/custom", s.Path())
}

func TestLocationZeroValue(t *testing.T) {
	s := &Session{}
	fragment, path := s.Location()
	assert.Equal(t, "", fragment)
	assert.Equal(t, "/", path)
}

func TestSetLocationConsistent(t *testing.T) {
	s := &Session{}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				f := fmt.Sprintf("items/%d", i*1000+j)
				s.setLocation(f, "")
			}
		}(i)
	}

	for j := 0; j < 2000; j++ {
		fragment, path := s.Location()
		if fragment != "" {
			require.Equal(t, "/"+fragment, path)
		}
	}
	wg.Wait()
}
