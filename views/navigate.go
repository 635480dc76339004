package views

import (
	"strings"
)

// History is the engine that owns the URL and the navigation stack.
type History interface {
	// Navigate changes the current fragment.
	Navigate(fragment string, opts NavigateOptions) error

	// Fragment returns the current URL fragment, possibly with a query.
	Fragment() string

	// Path returns the current URL path, including the leading slash.
	Path() string
}

// NavigateOptions configures a navigation.
type NavigateOptions struct {
	// Query is appended verbatim to the fragment when non-empty.
	Query string

	// Trigger asks the engine to run the route handler for the new URL.
	Trigger bool

	// Replace replaces the current history entry instead of pushing.
	Replace bool
}

// Navigate passes fragment, with opts.Query appended, to the history
// engine.
func (r *Router) Navigate(fragment string, opts NavigateOptions) error {
	h := r.getHistory()
	if h == nil {
		return ErrNoHistory
	}
	return r.navigate(h, fragment, opts)
}

func (r *Router) navigate(h History, fragment string, opts NavigateOptions) error {
	if opts.Query != "" {
		fragment += opts.Query
	}
	return h.Navigate(fragment, opts)
}

// GoToView resolves the route for view and navigates there, updating the
// page title first.
//
// Resolution errors are returned unchanged and nothing is navigated. When
// the resolved route is already the current fragment (ignoring its query)
// GoToView returns nil without touching the title or the history, unless
// disabled with SkipCurrent(false).
//
// The title is applied before the history engine is called. If the engine
// then fails, the error is returned and the new title stays in place.
func (r *Router) GoToView(view string, m Model, opts NavigateOptions) error {
	route, err := r.ResolveRoute(view, m)
	if err != nil {
		return err
	}

	r.mu.RLock()
	h := r.history
	skipCurrent := r.skipCurrent
	observer := r.observer
	r.mu.RUnlock()

	if h == nil {
		return ErrNoHistory
	}

	if skipCurrent && route == stripQuery(h.Fragment()) {
		r.log().Debug("navigation skipped, route is current", "view", view, "route", route)
		if observer != nil {
			observer.Navigated(view, route, true)
		}
		return nil
	}

	title, active, err := r.ResolveTitle(view, m)
	if err != nil {
		return err
	}
	if active {
		if err := r.applyTitle(view, title); err != nil {
			return err
		}
	}

	if err := r.navigate(h, route, opts); err != nil {
		return err
	}

	r.log().Debug("navigated to view", "view", view, "route", route)
	if observer != nil {
		observer.Navigated(view, route, false)
	}
	return nil
}

// CurrentPath returns the engine's current path without the leading slash.
func (r *Router) CurrentPath() string {
	h := r.getHistory()
	if h == nil {
		return ""
	}
	return strings.TrimPrefix(h.Path(), "/")
}

func (r *Router) getHistory() History {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history
}

// stripQuery removes a "?query" suffix from fragment.
func stripQuery(fragment string) string {
	if i := strings.IndexByte(fragment, '?'); i != -1 {
		return fragment[:i]
	}
	return fragment
}
