package views

// ResolveRoute returns the relative URL for view, filling every ":param"
// segment of its template from m.
//
// It fails with an *UnknownViewError if view was never registered, and with
// an *UnmatchedParameterError naming every parameter without a usable
// value. No routing occurs.
func (r *Router) ResolveRoute(view string, m Model) (string, error) {
	route, err := r.resolveRoute(view, m)
	if o := r.getObserver(); o != nil {
		o.ResolvedRoute(view, err)
	}
	return route, err
}

func (r *Router) resolveRoute(view string, m Model) (string, error) {
	r.mu.RLock()
	t, ok := r.views[view]
	r.mu.RUnlock()
	if !ok {
		return "", &UnknownViewError{View: view}
	}

	route, unmatched := t.url(m)
	if len(unmatched) > 0 {
		return "", &UnmatchedParameterError{View: view, Params: unmatched}
	}
	return route, nil
}
