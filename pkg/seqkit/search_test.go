package seqkit_test

import (
	"strings"
	"testing"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/seqkit/pkg/seqkit"
)

func TestEvery(t *testing.T) {
	s := testcase.NewSpec(t)

	positive := func(v int) bool { return 0 < v }

	s.Test("all match", func(t *testcase.T) {
		ok, err := seqkit.Every[int](seqkit.ListOf(1, 2, 3), positive)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	s.Test("one mismatch", func(t *testcase.T) {
		ok, err := seqkit.Every[int](seqkit.ArrayOf(1, -2, 3), positive)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	s.Test("empty sequence satisfies any predicate", func(t *testcase.T) {
		ok, err := seqkit.Every[int](seqkit.ArrayOf[int](), positive)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	s.Test("nil sequence", func(t *testcase.T) {
		_, err := seqkit.Every[int](nil, positive)
		assert.ErrorIs(t, err, seqkit.ErrTypeMismatch)
	})
}

func TestSome(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("returns the first accepted result, not just a boolean", func(t *testcase.T) {
		var calls int
		got, ok, err := seqkit.Some[string](seqkit.ArrayOf("foo", "bar=baz", "qux=quux"), func(v string) (string, bool) {
			calls++
			_, value, found := strings.Cut(v, "=")
			return value, found
		})
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "baz", got)
		assert.Equal(t, 2, calls)
	})

	s.Test("nothing accepted", func(t *testcase.T) {
		_, ok, err := seqkit.Some[int](seqkit.ListOf(1, 3), func(v int) (int, bool) { return v, v%2 == 0 })
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	s.Test("callback error", func(t *testcase.T) {
		const expErr errorkit.Error = "boom"
		_, _, err := seqkit.Some[int](seqkit.ListOf(1), func(int) (int, bool, error) { return 0, false, expErr })
		assert.ErrorIs(t, err, expErr)
	})
}

func TestFind(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first match", func(t *testcase.T) {
		got, err := seqkit.Find[int](seqkit.ArrayOf(1, 4, 6), func(v int) bool { return v%2 == 0 })
		assert.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	s.Test("default is returned when nothing matches", func(t *testcase.T) {
		got, err := seqkit.Find[int](seqkit.ArrayOf(1, 3), func(v int) bool { return v%2 == 0 }, -1)
		assert.NoError(t, err)
		assert.Equal(t, -1, got)

		got, err = seqkit.Find[int](seqkit.ArrayOf(1, 3), func(v int) bool { return v%2 == 0 })
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	s.Test("a found element equal to the default is indistinguishable from a miss", func(t *testcase.T) {
		isZero := func(v int) bool { return v == 0 }
		found, err := seqkit.Find[int](seqkit.ArrayOf(3, 0, 5), isZero, 0)
		assert.NoError(t, err)
		missed, err := seqkit.Find[int](seqkit.ArrayOf(3, 5), isZero, 0)
		assert.NoError(t, err)
		assert.Equal(t, found, missed)
	})
}

func TestCount(t *testing.T) {
	got, err := seqkit.Count[rune](seqkit.Text("banana"), func(r rune) bool { return r == 'a' })
	assert.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestContainsPosition(t *testing.T) {
	s := testcase.NewSpec(t)

	type point struct{ X, Y int }

	s.Test("structural equality by default", func(t *testcase.T) {
		l := seqkit.ListOf(point{1, 2}, point{3, 4}, point{1, 2})
		assert.True(t, seqkit.Contains[point](l, point{3, 4}))
		assert.False(t, seqkit.Contains[point](l, point{4, 3}))

		index, ok := seqkit.Position[point](l, point{3, 4})
		assert.True(t, ok)
		assert.Equal(t, 1, index)

		assert.Equal(t, []int{0, 2}, seqkit.Positions[point](l, point{1, 2}))
	})

	s.Test("slices are compared by content", func(t *testcase.T) {
		l := seqkit.ArrayOf([]int{1}, []int{2, 3})
		assert.True(t, seqkit.Contains[[]int](l, []int{2, 3}))
	})

	s.Test("custom equality", func(t *testcase.T) {
		a := seqkit.ArrayOf("Foo", "BAR")
		assert.False(t, seqkit.Contains[string](a, "bar"))
		assert.True(t, seqkit.Contains[string](a, "bar", strings.EqualFold))
		index, ok := seqkit.Position[string](a, "foo", strings.EqualFold)
		assert.True(t, ok)
		assert.Equal(t, 0, index)
	})

	s.Test("missing element", func(t *testcase.T) {
		_, ok := seqkit.Position[int](seqkit.ArrayOf(1, 2), 3)
		assert.False(t, ok)
		assert.Empty(t, seqkit.Positions[int](seqkit.ArrayOf(1, 2), 3))
	})
}
