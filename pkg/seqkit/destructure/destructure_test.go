package destructure_test

import (
	"iter"
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/pkg/seqkit/destructure"
	"go.llib.dev/seqkit/pkg/seqkit/queueseq"
)

// stream is a user-defined kind that only provides iteration.
type stream[T any] struct{ vs []T }

func (s stream[T]) Iter() iter.Seq[T] { return slices.Values(s.vs) }

func TestParse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("slots and rest capture", func(t *testcase.T) {
		tmpl, err := destructure.Parse("(a b &rest c)")
		assert.NoError(t, err)
		assert.Equal(t, destructure.Template{
			Slots: []destructure.Slot{{Name: "a"}, {Name: "b"}},
			Rest:  "c",
		}, tmpl)
	})

	s.Test("nested templates with both delimiters", func(t *testcase.T) {
		tmpl, err := destructure.Parse("[head (x _ y?) &rest tail]")
		assert.NoError(t, err)
		assert.Equal(t, destructure.Template{
			Slots: []destructure.Slot{
				{Name: "head"},
				{Nested: &destructure.Template{Slots: []destructure.Slot{{Name: "x"}, {Name: "_"}, {Name: "y?"}}}},
			},
			Rest: "tail",
		}, tmpl)
		assert.Equal(t, "(head (x _ y?) &rest tail)", tmpl.String())
		assert.Equal(t, []string{"head", "x", "y?", "tail"}, tmpl.Names())
	})

	s.Test("whitespace is insignificant", func(t *testcase.T) {
		tmpl, err := destructure.Parse("  (\n\ta\t(b)  )  ")
		assert.NoError(t, err)
		assert.Equal(t, "(a (b))", tmpl.String())
	})

	s.Test("empty template", func(t *testcase.T) {
		tmpl, err := destructure.Parse("()")
		assert.NoError(t, err)
		assert.Empty(t, tmpl.Names())
	})

	s.Test("syntax errors", func(t *testcase.T) {
		for _, src := range []string{
			"",
			"a",
			"(a b",
			"(a b]",
			"(a))",
			"(a) (b)",
			"(&rest)",
			"(&rest a b)",
			"(a &rest (b))",
			"(1a)",
			"(a, b)",
		} {
			_, err := destructure.Parse(src)
			assert.ErrorIs(t, err, destructure.ErrInvalidTemplate, assert.MessageF("%q", src))
		}
	})

	s.Test("must parse panics on invalid input", func(t *testcase.T) {
		assert.Panic(t, func() { destructure.MustParse("(") })
	})
}

func TestCompile(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("duplicated names are rejected", func(t *testcase.T) {
		for _, src := range []string{"(a a)", "(a (b a))", "(a &rest a)"} {
			_, err := destructure.Compile(destructure.MustParse(src))
			assert.ErrorIs(t, err, destructure.ErrInvalidTemplate)
		}
	})

	s.Test("the ignore placeholder can repeat", func(t *testcase.T) {
		p, err := destructure.Compile(destructure.MustParse("(_ a _ &rest _)"))
		assert.NoError(t, err)
		assert.Equal(t, []string{"a"}, p.Names())
	})

	s.Test("programmatic templates are validated", func(t *testcase.T) {
		_, err := destructure.Compile(destructure.Template{Slots: []destructure.Slot{{}}})
		assert.ErrorIs(t, err, destructure.ErrInvalidTemplate)

		_, err = destructure.Compile(destructure.Template{Slots: []destructure.Slot{{
			Name:   "a",
			Nested: &destructure.Template{},
		}}})
		assert.ErrorIs(t, err, destructure.ErrInvalidTemplate)

		_, err = destructure.Compile(destructure.Template{Rest: "not valid"})
		assert.ErrorIs(t, err, destructure.ErrInvalidTemplate)
	})
}

func TestProgram_Bind(t *testing.T) {
	s := testcase.NewSpec(t)

	program := testcase.Let(s, func(t *testcase.T) destructure.Program {
		return destructure.MustCompile("(a b &rest c)")
	})

	s.Test("every position is present", func(t *testcase.T) {
		b := program.Get(t).Bind([]int{1, 2, 3, 4})
		assert.Equal[any](t, 1, b.Get("a"))
		assert.Equal[any](t, 2, b.Get("b"))
		assert.Equal[any](t, []int{3, 4}, b.Get("c"))
	})

	s.Test("missing positions are absent", func(t *testcase.T) {
		b := program.Get(t).Bind([]int{1})
		assert.Equal[any](t, 1, b.Get("a"))
		_, ok := b.Lookup("b")
		assert.False(t, ok)
		c, ok := b.Lookup("c")
		assert.True(t, ok)
		assert.Equal[any](t, []int{}, c)
		assert.Equal(t, []string{"a", "b", "c"}, b.Names())
	})

	s.Test("rest capture keeps the kind of the input", func(t *testcase.T) {
		b := program.Get(t).Bind(seqkit.ListOf("x", "y", "z"))
		rest, ok := b.Get("c").(*seqkit.List[string])
		assert.True(t, ok)
		assert.Equal(t, []string{"z"}, rest.ToSlice())

		b = program.Get(t).Bind("héllo")
		assert.Equal[any](t, 'h', b.Get("a"))
		assert.Equal[any](t, seqkit.Text("llo"), b.Get("c"))

		b = program.Get(t).Bind(queueseq.New(1, 2, 3))
		ring, ok := b.Get("c").(*queueseq.Ring[int])
		assert.True(t, ok)
		assert.Equal(t, []int{3}, seqkit.Values[int](ring))
	})

	s.Test("kinds with only iteration", func(t *testcase.T) {
		b := program.Get(t).Bind(stream[int]{vs: []int{1, 2, 3, 4}})
		assert.Equal[any](t, 1, b.Get("a"))
		assert.Equal[any](t, 2, b.Get("b"))
		assert.Equal[any](t, []int{3, 4}, b.Get("c"))

		p := destructure.MustCompile("(first (x y))")
		b = p.Bind([]any{"point", stream[float64]{vs: []float64{0.5, 1.5}}})
		assert.Equal[any](t, 0.5, b.Get("x"))
		assert.Equal[any](t, 1.5, b.Get("y"))
	})

	s.Test("nested templates", func(t *testcase.T) {
		p := destructure.MustCompile("(name (x y) &rest _)")
		b := p.Bind([]any{"origin", []float64{0.5, 1.5}, "ignored"})
		assert.Equal[any](t, "origin", b.Get("name"))
		assert.Equal[any](t, 0.5, b.Get("x"))
		assert.Equal[any](t, 1.5, b.Get("y"))
	})

	s.Test("nested template over a non-sequence element degrades to absent", func(t *testcase.T) {
		p := destructure.MustCompile("(name (x &rest more))")
		b := p.Bind([]any{"origin", 42})
		assert.Equal[any](t, "origin", b.Get("name"))
		_, ok := b.Lookup("x")
		assert.False(t, ok)
		_, ok = b.Lookup("more")
		assert.False(t, ok)
	})

	s.Test("nil elements are bound, not absent", func(t *testcase.T) {
		b := program.Get(t).Bind([]any{nil})
		v, ok := b.Lookup("a")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	s.Test("a non-sequence binds nothing", func(t *testcase.T) {
		b := program.Get(t).Bind(42)
		for _, name := range b.Names() {
			_, ok := b.Lookup(name)
			assert.False(t, ok)
		}
		assert.Equal(t, map[string]any{"a": nil, "b": nil, "c": nil}, b.ToMap())
	})
}

func TestProgram_Match(t *testing.T) {
	s := testcase.NewSpec(t)

	p := destructure.MustCompile("(a b)")

	s.Test("any sequence matches", func(t *testcase.T) {
		_, ok := p.Match([]string{})
		assert.True(t, ok)
		b, ok := p.Match(seqkit.ArrayOf(1, 2, 3))
		assert.True(t, ok)
		assert.Equal[any](t, 2, b.Get("b"))

		b, ok = p.Match(stream[string]{vs: []string{"x"}})
		assert.True(t, ok)
		assert.Equal[any](t, "x", b.Get("a"))
		_, ok = b.Lookup("b")
		assert.False(t, ok)
	})

	s.Test("a non-sequence doesn't", func(t *testcase.T) {
		_, ok := p.Match(map[string]int{"a": 1})
		assert.False(t, ok)
		_, ok = p.Match(nil)
		assert.False(t, ok)
	})
}

func TestProgram_Scan(t *testing.T) {
	s := testcase.NewSpec(t)

	p := destructure.MustCompile("(a b &rest c)")

	s.Test("values are stored in the destinations", func(t *testcase.T) {
		var (
			a, b int
			c    []int
		)
		assert.NoError(t, p.Scan([]int{1, 2, 3}, &a, &b, &c))
		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
		assert.Equal(t, []int{3}, c)
	})

	s.Test("absent values reset the destination", func(t *testcase.T) {
		var (
			a = "a"
			b = "b"
			c []string
		)
		assert.NoError(t, p.Scan([]string{"x"}, &a, &b, &c))
		assert.Equal(t, "x", a)
		assert.Equal(t, "", b)
	})

	s.Test("unassignable value", func(t *testcase.T) {
		var (
			a string
			b int
			c []int
		)
		err := p.Scan([]int{1, 2}, &a, &b, &c)
		assert.ErrorIs(t, err, seqkit.ErrTypeMismatch)
	})

	s.Test("not a sequence", func(t *testcase.T) {
		var a, b, c any
		assert.ErrorIs(t, p.Scan(42, &a, &b, &c), seqkit.ErrTypeMismatch)
	})

	s.Test("destination count and kind", func(t *testcase.T) {
		var a, b int
		assert.ErrorIs(t, p.Scan([]int{1}, &a, &b), seqkit.ErrInvalidArgument)
		assert.ErrorIs(t, p.Scan([]int{1}, &a, &b, nil), seqkit.ErrInvalidArgument)
		assert.ErrorIs(t, p.Scan([]int{1}, &a, b, &b), seqkit.ErrInvalidArgument)
	})
}

func TestLet(t *testing.T) {
	b, err := destructure.Let("[first &rest others]", seqkit.ArrayOf("x", "y"))
	assert.NoError(t, err)
	assert.Equal[any](t, "x", b.Get("first"))
	assert.Equal[any](t, seqkit.ArrayOf("y"), b.Get("others"))

	_, err = destructure.Let("[first", nil)
	assert.ErrorIs(t, err, destructure.ErrInvalidTemplate)
}
