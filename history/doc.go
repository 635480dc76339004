// Package history provides an in-memory history engine for views.Router.
//
// Memory behaves like a browser session history: navigations push entries,
// Back and Forward move a cursor, and the page title is tracked per entry.
// It is meant for hosts without a browser and for tests:
//
//	h := history.NewMemory("")
//	r := views.NewRouter().History(h).Document(h)
package history
