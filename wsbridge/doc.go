// Package wsbridge lets a server-side views.Router drive a browser tab over
// a WebSocket.
//
// A Session is both the history engine and the title sink of a router. The
// router's navigations and title updates are sent to the browser as JSON
// messages, and the browser reports its location back:
//
//	server -> browser  {"type":"title","title":"Projects | foobar"}
//	server -> browser  {"type":"navigate","id":"<uuid>","fragment":"projects/1234"}
//	browser -> server  {"type":"location","fragment":"projects/1234","path":"/projects/1234"}
//
// Serve sessions with a Server:
//
//	srv := wsbridge.NewServer(wsbridge.Config{
//	    OnSession: func(s *wsbridge.Session) {
//	        r, _ := cfg.NewRouter()
//	        r.History(s).Document(s)
//	        // keep r for this tab
//	    },
//	})
//	http.Handle("/bridge", srv)
package wsbridge
