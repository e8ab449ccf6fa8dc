package destructure

import (
	"reflect"

	"go.llib.dev/seqkit/pkg/seqkit"
)

// Program is a compiled template.
// It is immutable and safe to run from multiple goroutines.
type Program struct {
	template Template
	names    []string
	steps    []step
}

// step binds one name.
// It walks path through nested sequences with tolerant lookups,
// then either binds the element found there, or the rest of the sequence found there from offset.
type step struct {
	name   string
	path   []int
	rest   bool
	offset int
}

// Compile validates the template and lowers it into a flat list of access steps.
//
// Names must be unique, ignoring the "_" placeholder,
// and every slot must be either a name or a nested template.
func Compile(t Template) (Program, error) {
	c := compiler{seen: make(map[string]struct{})}
	if err := c.compile(t, nil); err != nil {
		return Program{}, err
	}
	return Program{
		template: t,
		names:    t.Names(),
		steps:    c.steps,
	}, nil
}

// MustCompile parses and compiles a textual template, and panics on failure.
func MustCompile(src string) Program {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	p, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return p
}

type compiler struct {
	steps []step
	seen  map[string]struct{}
}

func (c *compiler) compile(t Template, prefix []int) error {
	for i, slot := range t.Slots {
		path := append(append([]int(nil), prefix...), i)
		switch {
		case slot.Nested != nil && slot.Name != "":
			return ErrInvalidTemplate.F("slot #%d has both a name and a nested template", i)
		case slot.Nested != nil:
			if err := c.compile(*slot.Nested, path); err != nil {
				return err
			}
		default:
			if err := c.declare(slot.Name); err != nil {
				return err
			}
			if slot.Name != Ignore {
				c.steps = append(c.steps, step{name: slot.Name, path: path})
			}
		}
	}
	if t.Rest == "" {
		return nil
	}
	if err := c.declare(t.Rest); err != nil {
		return err
	}
	if t.Rest != Ignore {
		c.steps = append(c.steps, step{
			name:   t.Rest,
			path:   append([]int(nil), prefix...),
			rest:   true,
			offset: len(t.Slots),
		})
	}
	return nil
}

func (c *compiler) declare(name string) error {
	if !isName(name) {
		return ErrInvalidTemplate.F("%q is not a valid name", name)
	}
	if name == Ignore {
		return nil
	}
	if _, ok := c.seen[name]; ok {
		return ErrInvalidTemplate.F("%q is bound more than once", name)
	}
	c.seen[name] = struct{}{}
	return nil
}

func (p Program) Template() Template { return p.template }

func (p Program) String() string { return p.template.String() }

// Names returns the names the program binds, in binding order.
func (p Program) Names() []string { return append([]string(nil), p.names...) }

// Bind runs the program against a value.
// Positions missing from the value, and every name when the value is not a sequence, bind as absent.
//
// A rest capture keeps the kind of the destructured sequence:
// destructuring a []int yields a []int, and a *seqkit.List yields a *seqkit.List.
func (p Program) Bind(v any) Bindings {
	b := Bindings{names: p.names, values: make(map[string]any, len(p.steps))}
	for _, st := range p.steps {
		if val, ok := st.eval(v); ok {
			b.values[st.name] = val
		}
	}
	return b
}

// Match is the pattern matching form of Bind.
// It reports false only when the value is not a sequence at all;
// a value shorter than the template still matches, with the missing names absent.
func (p Program) Match(v any) (Bindings, bool) {
	if _, ok := seqkit.Box(v); !ok {
		return Bindings{names: p.names}, false
	}
	return p.Bind(v), true
}

// Scan binds the value and stores the results in dsts, which must be pointers,
// one for each name in binding order.
// Absent names set their destination to the zero value.
// A bound value that can't be assigned to its destination fails with seqkit.ErrTypeMismatch.
func (p Program) Scan(v any, dsts ...any) error {
	if len(dsts) != len(p.names) {
		return seqkit.ErrInvalidArgument.F("the template binds %d names, got %d destinations", len(p.names), len(dsts))
	}
	b, ok := p.Match(v)
	if !ok {
		return seqkit.ErrTypeMismatch.F("%T is not a sequence", v)
	}
	for i, name := range p.names {
		ptr := reflect.ValueOf(dsts[i])
		if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
			return seqkit.ErrInvalidArgument.F("destination of %q must be a non-nil pointer, got %T", name, dsts[i])
		}
		dst := ptr.Elem()
		val, ok := b.Lookup(name)
		if !ok || val == nil {
			dst.SetZero()
			continue
		}
		rv := reflect.ValueOf(val)
		if !rv.Type().AssignableTo(dst.Type()) {
			return seqkit.ErrTypeMismatch.F("%q holds %s, which can't be assigned to %s", name, rv.Type(), dst.Type())
		}
		dst.Set(rv)
	}
	return nil
}

func (st step) eval(v any) (any, bool) {
	cur := v
	for _, index := range st.path {
		seq, ok := seqkit.Box(cur)
		if !ok {
			return nil, false
		}
		cur, ok = seqkit.Lookup(seq, index)
		if !ok {
			return nil, false
		}
	}
	if !st.rest {
		return cur, true
	}
	seq, ok := seqkit.Box(cur)
	if !ok {
		return nil, false
	}
	tail, err := seqkit.Drop(seq, st.offset)
	if err != nil {
		return nil, false
	}
	return seqkit.Unbox(tail), true
}

// Let parses, compiles and runs a template in one step.
func Let(src string, v any) (Bindings, error) {
	t, err := Parse(src)
	if err != nil {
		return Bindings{}, err
	}
	p, err := Compile(t)
	if err != nil {
		return Bindings{}, err
	}
	return p.Bind(v), nil
}
