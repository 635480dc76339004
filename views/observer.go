package views

// Observer is notified after route resolutions, navigations and title
// updates. Implementations must be safe for concurrent use.
type Observer interface {
	// ResolvedRoute is called for every ResolveRoute call. err is nil on
	// success.
	ResolvedRoute(view string, err error)

	// Navigated is called when GoToView completes. skipped is true when the
	// target route was already current.
	Navigated(view, route string, skipped bool)

	// TitleUpdated is called after a title was applied.
	TitleUpdated(view, title string)
}

func (r *Router) getObserver() Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.observer
}
