package views

import (
	"fmt"
	"regexp"
)

// TitleSink receives the computed page title.
type TitleSink interface {
	SetTitle(title string) error
}

// TitleSinkFunc adapts a function to the TitleSink interface.
type TitleSinkFunc func(title string) error

// SetTitle calls f(title).
func (f TitleSinkFunc) SetTitle(title string) error {
	return f(title)
}

// PlaceholderPolicy controls title placeholders that have no value, either
// because no model was given or because the model returned nil.
type PlaceholderPolicy int

const (
	// KeepPlaceholder leaves the literal "<name>" in the title.
	KeepPlaceholder PlaceholderPolicy = iota
	// EmptyPlaceholder replaces the placeholder with an empty string.
	EmptyPlaceholder
	// ErrorPlaceholder fails with an *UnresolvedPlaceholderError.
	ErrorPlaceholder
)

func (p PlaceholderPolicy) String() string {
	switch p {
	case KeepPlaceholder:
		return "keep"
	case EmptyPlaceholder:
		return "empty"
	case ErrorPlaceholder:
		return "error"
	}
	return fmt.Sprintf("PlaceholderPolicy(%d)", int(p))
}

var placeholderRe = regexp.MustCompile(`<([A-Za-z_]+)>`)

// ResolveTitle computes the title for view without applying it.
//
// The title is the title root followed by the view's title template, with
// every "<name>" placeholder replaced by the model attribute of that name.
// active is false when title management was never activated, in which case
// title is empty.
func (r *Router) ResolveTitle(view string, m Model) (title string, active bool, err error) {
	r.mu.RLock()
	root := r.titleRoot
	tpl := r.titles[view]
	policy := r.placeholders
	r.mu.RUnlock()

	if root == nil {
		return "", false, nil
	}

	title, missing := interpolate(*root+tpl, m, policy)
	if len(missing) > 0 && policy == ErrorPlaceholder {
		return "", true, &UnresolvedPlaceholderError{View: view, Placeholders: missing}
	}
	return title, true, nil
}

// UpdateTitle computes the title for view and hands it to the configured
// TitleSink. It does nothing while title management is inactive.
func (r *Router) UpdateTitle(view string, m Model) error {
	title, active, err := r.ResolveTitle(view, m)
	if err != nil || !active {
		return err
	}
	return r.applyTitle(view, title)
}

func (r *Router) applyTitle(view, title string) error {
	r.mu.RLock()
	doc := r.document
	observer := r.observer
	r.mu.RUnlock()

	if doc == nil {
		r.log().Debug("title computed without sink", "view", view, "title", title)
		return nil
	}
	if err := doc.SetTitle(title); err != nil {
		return fmt.Errorf("views: set title for view %q: %w", view, err)
	}

	r.log().Debug("title updated", "view", view, "title", title)
	if observer != nil {
		observer.TitleUpdated(view, title)
	}
	return nil
}

// interpolate replaces placeholders in s and returns the names of the
// placeholders that had no value.
func interpolate(s string, m Model, policy PlaceholderPolicy) (string, []string) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1 : len(match)-1]
		v := lookup(m, name)
		if v == nil {
			missing = append(missing, name)
			if policy == KeepPlaceholder {
				return match
			}
			return ""
		}
		return stringify(v)
	})
	return out, missing
}
