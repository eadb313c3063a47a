package gateway

import "sort"

// Table maps scenario names to fixture constructors. Fixtures are built on
// every access so callers own what they get back and may mutate it freely.
type Table[T any] map[string]func() T

// Build constructs every fixture in the table.
func (t Table[T]) Build() map[string]T {
	m := make(map[string]T, len(t))
	for name, f := range t {
		m[name] = f()
	}
	return m
}

func (t Table[T]) Get(name string) (T, error) {
	f, ok := t[name]
	if !ok {
		var zero T
		return zero, NotFoundError(name)
	}
	return f(), nil
}

func (t Table[T]) Names() []string {
	ss := make([]string, 0, len(t))
	for name := range t {
		ss = append(ss, name)
	}
	sort.Strings(ss)
	return ss
}
