package views

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned when a view name was never registered.
var ErrUnknownView = errors.New("views: no matching route for view")

// ErrUnmatchedParameter is returned when one or more route parameters
// could not be filled from the model.
var ErrUnmatchedParameter = errors.New("views: unmatched route parameters")

// ErrUnresolvedPlaceholder is returned by title resolution when a
// placeholder has no value and the router uses ErrorPlaceholder.
var ErrUnresolvedPlaceholder = errors.New("views: unresolved title placeholders")

// ErrInvalidTemplate is returned when a route template can't be parsed.
var ErrInvalidTemplate = errors.New("views: invalid route template")

// ErrDuplicateView is returned when one RegisterViews call maps several
// route templates to the same view name.
var ErrDuplicateView = errors.New("views: view registered more than once")

// ErrNoHistory is returned when navigation is requested on a router
// without a history engine.
var ErrNoHistory = errors.New("views: no history engine configured")

// UnknownViewError reports a lookup of an unregistered view.
type UnknownViewError struct {
	View string
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("views: no matching route for view %q", e.View)
}

// Unwrap returns ErrUnknownView.
func (e *UnknownViewError) Unwrap() error {
	return ErrUnknownView
}

// UnmatchedParameterError lists every route parameter that could not be
// filled, in template order.
type UnmatchedParameterError struct {
	View   string
	Params []string
}

func (e *UnmatchedParameterError) Error() string {
	return fmt.Sprintf("views: unmatched route elements for view %q: %s", e.View, strings.Join(e.Params, " "))
}

// Unwrap returns ErrUnmatchedParameter.
func (e *UnmatchedParameterError) Unwrap() error {
	return ErrUnmatchedParameter
}

// UnresolvedPlaceholderError lists title placeholders left without a value.
type UnresolvedPlaceholderError struct {
	View         string
	Placeholders []string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("views: unresolved title placeholders for view %q: %s", e.View, strings.Join(e.Placeholders, " "))
}

// Unwrap returns ErrUnresolvedPlaceholder.
func (e *UnresolvedPlaceholderError) Unwrap() error {
	return ErrUnresolvedPlaceholder
}
