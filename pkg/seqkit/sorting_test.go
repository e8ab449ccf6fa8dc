package seqkit_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/seqkit/pkg/seqkit"
)

type person struct {
	Name string
	Age  int
}

func makePeople(t *testcase.T) []person {
	return random.Slice(t.Random.IntBetween(5, 40), func() person {
		return person{
			Name: randomdata.FirstName(randomdata.RandomGender),
			Age:  t.Random.IntBetween(18, 25),
		}
	})
}

func byAge(a, b person) int { return cmp.Compare(a.Age, b.Age) }

func TestSort(t *testing.T) {
	s := testcase.NewSpec(t)

	ctors := map[string]func(vs ...person) seqkit.Sequence[person]{
		"array":  func(vs ...person) seqkit.Sequence[person] { return seqkit.ArrayOf(vs...) },
		"list":   func(vs ...person) seqkit.Sequence[person] { return seqkit.ListOf(vs...) },
		"custom": func(vs ...person) seqkit.Sequence[person] { return iterOnly[person]{vs: vs} },
	}

	for name, mk := range ctors {
		s.Context(name, func(s *testcase.Spec) {
			people := testcase.Let(s, makePeople)

			s.Test("the result is ordered", func(t *testcase.T) {
				sorted, err := seqkit.Sort(mk(people.Get(t)...), byAge)
				assert.NoError(t, err)
				vs := seqkit.Values(sorted)
				assert.Equal(t, len(people.Get(t)), len(vs))
				for i := 1; i < len(vs); i++ {
					assert.True(t, vs[i-1].Age <= vs[i].Age)
				}
			})

			s.Test("the sort is stable", func(t *testcase.T) {
				sorted, err := seqkit.Sort(mk(people.Get(t)...), byAge)
				assert.NoError(t, err)

				var expected []person
				for age := 18; age <= 25; age++ {
					for _, p := range people.Get(t) {
						if p.Age == age {
							expected = append(expected, p)
						}
					}
				}
				assert.Equal(t, expected, seqkit.Values(sorted))
			})

			s.Test("sorting is idempotent", func(t *testcase.T) {
				once, err := seqkit.Sort(mk(people.Get(t)...), byAge)
				assert.NoError(t, err)
				twice, err := seqkit.Sort(once, byAge)
				assert.NoError(t, err)
				assert.Equal(t, seqkit.Values(once), seqkit.Values(twice))
			})

			s.Test("the input is untouched", func(t *testcase.T) {
				seq := mk(people.Get(t)...)
				_, err := seqkit.Sort(seq, byAge)
				assert.NoError(t, err)
				assert.Equal(t, people.Get(t), seqkit.Values(seq))
			})
		})
	}

	s.Test("the kind is kept", func(t *testcase.T) {
		got, err := seqkit.Sort[rune](seqkit.Text("dcba"), func(a, b rune) int { return cmp.Compare(a, b) })
		assert.NoError(t, err)
		assert.Equal[seqkit.Sequence[rune]](t, seqkit.Text("abcd"), got)

		l, err := seqkit.Sort[int](seqkit.ListOf(3, 1, 2), cmp.Compare[int])
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, l.(*seqkit.List[int]).ToSlice())
	})

	s.Test("comparator failure aborts the sort", func(t *testcase.T) {
		const expErr errorkit.Error = "boom"
		for _, seq := range []seqkit.Sequence[int]{seqkit.ArrayOf(3, 1, 2), seqkit.ListOf(3, 1, 2)} {
			_, err := seqkit.Sort(seq, func(a, b int) (int, error) { return 0, expErr })
			assert.ErrorIs(t, err, expErr)
		}
	})
}

func TestSortBy(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are ordered by their keys", func(t *testcase.T) {
		got, err := seqkit.SortBy[int](seqkit.ArrayOf("ccc", "a", "bb"), func(s string) int { return len(s) }, cmp.Compare[int])
		assert.NoError(t, err)
		assert.Equal[seqkit.Sequence[string]](t, seqkit.ArrayOf("a", "bb", "ccc"), got)
	})

	s.Test("key is computed once per element", func(t *testcase.T) {
		var calls int
		vs := random.Slice(t.Random.IntBetween(2, 20), func() string { return randomdata.SillyName() })
		_, err := seqkit.SortBy[string](seqkit.ListOf(vs...), func(s string) string {
			calls++
			return strings.ToLower(s)
		}, strings.Compare)
		assert.NoError(t, err)
		assert.Equal(t, len(vs), calls)
	})

	s.Test("key failure", func(t *testcase.T) {
		const expErr errorkit.Error = "boom"
		_, err := seqkit.SortBy[int](seqkit.ArrayOf("a"), func(string) (int, error) { return 0, expErr }, cmp.Compare[int])
		assert.ErrorIs(t, err, expErr)
	})
}
