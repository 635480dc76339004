package views

import (
	"fmt"
	"math"
	"reflect"
)

// Model is the attribute store used to fill route parameters and title
// placeholders.
type Model interface {
	Get(name string) any
}

// Attrs is a Model backed by a plain map.
type Attrs map[string]any

// Get returns the attribute stored under name, or nil.
func (a Attrs) Get(name string) any {
	return a[name]
}

// ModelFunc adapts a lookup function to the Model interface.
type ModelFunc func(name string) any

// Get calls f(name).
func (f ModelFunc) Get(name string) any {
	return f(name)
}

// AttrsFromPairs builds Attrs from a sequence of key/value pairs.
func AttrsFromPairs(pairs ...string) (Attrs, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("views: number of parameters must be multiple of 2, got %v", pairs)
	}
	a := make(Attrs, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		a[pairs[i]] = pairs[i+1]
	}
	return a, nil
}

// lookup returns the value of name in m. A nil model yields nil.
func lookup(m Model, name string) any {
	if m == nil {
		return nil
	}
	return m.Get(name)
}

// isBlank reports whether v can't be used as a route parameter: nil,
// empty string, false, numeric zero, NaN and nil references.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// stringify converts an attribute value using its natural string form.
func stringify(v any) string {
	return fmt.Sprint(v)
}
