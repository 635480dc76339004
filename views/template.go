package views

import (
	"fmt"
	"strings"
)

// routeTemplate stores a parsed route template.
type routeTemplate struct {
	// template is the template with any wildcard suffix removed.
	template string
	// segments are the "/"-separated parts of template.
	segments []segment
	// varsN are the parameter names in order.
	varsN []string
}

// segment is one path segment. Literal segments have an empty param.
type segment struct {
	raw   string
	param string
}

// newRouteTemplate strips the wildcard suffix from tpl and parses it.
func newRouteTemplate(tpl string) (*routeTemplate, error) {
	tpl = stripWildcard(tpl)

	if err := checkParens(tpl); err != nil {
		return nil, err
	}

	parts := strings.Split(tpl, "/")
	t := &routeTemplate{
		template: tpl,
		segments: make([]segment, len(parts)),
	}
	for i, part := range parts {
		t.segments[i].raw = part
		if !strings.HasPrefix(part, ":") {
			if strings.Contains(part, ":") {
				return nil, fmt.Errorf("%w: parameter %q does not start its segment in %q", ErrInvalidTemplate, part, tpl)
			}
			continue
		}
		name := paramName(part)
		if name == "" {
			return nil, fmt.Errorf("%w: missing parameter name in %q from %q", ErrInvalidTemplate, part, tpl)
		}
		t.segments[i].param = name
		t.varsN = append(t.varsN, name)
	}
	return t, nil
}

// url substitutes every parameter segment with the matching model value.
// It returns the names of the parameters that had no usable value.
func (t *routeTemplate) url(m Model) (string, []string) {
	if len(t.varsN) == 0 {
		return t.template, nil
	}

	var unmatched []string
	parts := make([]string, len(t.segments))
	for i, seg := range t.segments {
		if seg.param == "" {
			parts[i] = seg.raw
			continue
		}
		v := lookup(m, seg.param)
		if isBlank(v) {
			unmatched = append(unmatched, seg.param)
			continue
		}
		parts[i] = stringify(v)
	}
	if len(unmatched) > 0 {
		return "", unmatched
	}
	return strings.Join(parts, "/"), nil
}

// stripWildcard removes everything from the first "*" to the end.
func stripWildcard(tpl string) string {
	if i := strings.IndexByte(tpl, '*'); i != -1 {
		return tpl[:i]
	}
	return tpl
}

// paramName returns the name of a ":name" segment. The name ends at the
// first parenthesis; the rest of the segment is dropped on substitution.
func paramName(seg string) string {
	name := seg[1:]
	if i := strings.IndexAny(name, "()"); i != -1 {
		name = name[:i]
	}
	return name
}

// checkParens returns an error if the optional-part parentheses in tpl
// are unbalanced.
func checkParens(tpl string) error {
	level := 0
	for i := 0; i < len(tpl); i++ {
		switch tpl[i] {
		case '(':
			level++
		case ')':
			if level--; level < 0 {
				return fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidTemplate, tpl)
			}
		}
	}
	if level != 0 {
		return fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidTemplate, tpl)
	}
	return nil
}
