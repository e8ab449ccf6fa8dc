package destructure

// Bindings holds the outcome of running a Program.
// A name can be bound to a value, including nil, or be absent.
type Bindings struct {
	names  []string
	values map[string]any
}

func (b Bindings) Lookup(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Get returns the value bound to the name, or nil when the name is absent.
func (b Bindings) Get(name string) any {
	return b.values[name]
}

// Names lists every name of the template, bound or absent, in binding order.
func (b Bindings) Names() []string { return append([]string(nil), b.names...) }

// ToMap returns the bindings as a map where absent names hold nil.
func (b Bindings) ToMap() map[string]any {
	m := make(map[string]any, len(b.names))
	for _, name := range b.names {
		m[name] = b.values[name]
	}
	return m
}
