package views

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Router maps view names to route templates and page-title templates.
//
// A Router is configured by chaining its setters and then populated with
// RegisterViews:
//
//	r := views.NewRouter().TitleRoot("Shop").History(h).Document(h)
//	err := r.RegisterViews(map[string]string{"items/:id": "itemView"}, nil)
type Router struct {
	mu sync.RWMutex

	views  map[string]*routeTemplate
	titles map[string]string

	// titleRoot is nil until title management is activated.
	titleRoot *string

	history      History
	document     TitleSink
	logger       *slog.Logger
	observer     Observer
	skipCurrent  bool
	placeholders PlaceholderPolicy
}

// NewRouter returns a new router with title management inactive and the
// current-fragment navigation guard enabled.
func NewRouter() *Router {
	return &Router{
		views:       make(map[string]*routeTemplate),
		titles:      make(map[string]string),
		skipCurrent: true,
	}
}

// TitleRoot sets the prefix prepended to every title and activates title
// management.
func (r *Router) TitleRoot(root string) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titleRoot = &root
	return r
}

// History sets the engine used for navigation.
func (r *Router) History(h History) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = h
	return r
}

// Document sets the sink that receives computed page titles.
func (r *Router) Document(d TitleSink) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.document = d
	return r
}

// Logger sets the logger. If nil, slog.Default() is used.
func (r *Router) Logger(l *slog.Logger) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
	return r
}

// Observer sets the observer notified about resolutions, navigations and
// title updates.
func (r *Router) Observer(o Observer) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
	return r
}

// SkipCurrent defines whether GoToView does nothing when the target route
// equals the current fragment. Enabled by default.
func (r *Router) SkipCurrent(value bool) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipCurrent = value
	return r
}

// MissingPlaceholder sets how title placeholders without a value are
// handled.
func (r *Router) MissingPlaceholder(p PlaceholderPolicy) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placeholders = p
	return r
}

// RegisterViews registers route/view and view/title pairs.
//
// routes maps a route template to a view name. A trailing wildcard
// ("*rest") is stripped from each template. titles maps a view name to a
// title template and is merged into the existing titles. A non-empty
// titles map activates title management with an empty root if no root was
// set.
//
// A view name may appear only once in routes; later calls replace it. If
// any template is invalid or a view repeats, nothing is registered.
func (r *Router) RegisterViews(routes, titles map[string]string) error {
	parsed := make(map[string]*routeTemplate, len(routes))
	for tpl, name := range routes {
		t, err := newRouteTemplate(tpl)
		if err != nil {
			return err
		}
		if prev, ok := parsed[name]; ok {
			first, second := prev.template, t.template
			if second < first {
				first, second = second, first
			}
			return fmt.Errorf("%w: %q maps to %q and %q", ErrDuplicateView, name, first, second)
		}
		parsed[name] = t
	}

	r.mu.Lock()
	for name, t := range parsed {
		r.views[name] = t
	}
	for name, title := range titles {
		r.titles[name] = title
	}
	if len(titles) > 0 && r.titleRoot == nil {
		root := ""
		r.titleRoot = &root
	}
	r.mu.Unlock()

	r.log().Debug("views registered", "routes", len(parsed), "titles", len(titles))
	return nil
}

// Views returns a copy of the view to route template mapping.
func (r *Router) Views() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := make(map[string]string, len(r.views))
	for name, t := range r.views {
		m[name] = t.template
	}
	return m
}

// Titles returns a copy of the view to title template mapping.
func (r *Router) Titles() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := make(map[string]string, len(r.titles))
	for name, title := range r.titles {
		m[name] = title
	}
	return m
}

// ViewNames returns the registered view names in sorted order.
func (r *Router) ViewNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// GetTemplate returns the stored route template for view.
func (r *Router) GetTemplate(view string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.views[view]
	if !ok {
		return "", false
	}
	return t.template, true
}

// GetParamNames returns the route parameter names for view.
func (r *Router) GetParamNames(view string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.views[view]
	if !ok {
		return nil, &UnknownViewError{View: view}
	}
	return append([]string(nil), t.varsN...), nil
}

// GetTitleRoot returns the title root and whether title management is
// active.
func (r *Router) GetTitleRoot() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.titleRoot == nil {
		return "", false
	}
	return *r.titleRoot, true
}

func (r *Router) log() *slog.Logger {
	r.mu.RLock()
	l := r.logger
	r.mu.RUnlock()
	if l == nil {
		return slog.Default()
	}
	return l
}
