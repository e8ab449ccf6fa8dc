package seqkit_test

import (
	"cmp"
	"fmt"
	"strings"

	"go.llib.dev/seqkit/pkg/seqkit"
)

func ExampleSubSeq() {
	s := seqkit.ArrayOf(10, 20, 30, 40)

	mid, _ := seqkit.SubSeq[int](s, 1, 3)
	tail, _ := seqkit.SubSeq[int](s, -2)
	_, err := seqkit.SubSeq[int](seqkit.ArrayOf(1, 2, 3), 5, 6)

	fmt.Println(seqkit.Values(mid), seqkit.Values(tail), err != nil)
	// Output: [20 30] [30 40] true
}

func ExampleMapN() {
	out, _ := seqkit.MapN[int](func(vs []int) int { return vs[0] + vs[1] },
		seqkit.ArrayOf(1, 2, 3),
		seqkit.ArrayOf(10, 20))

	fmt.Println(out.ToSlice())
	// Output: [11 22]
}

func ExampleGroupBy() {
	groups, _ := seqkit.GroupBy[bool](seqkit.ListOf(1, 2, 3, 4, 5), func(v int) bool { return v%2 == 0 })
	for _, g := range groups {
		fmt.Println(g.Key, g.Values.ToSlice())
	}
	// Output:
	// false [1 3 5]
	// true [2 4]
}

func ExampleSort() {
	names := seqkit.ListOf("Zoe", "adam", "Bob")
	sorted, _ := seqkit.Sort[string](names, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	fmt.Println(seqkit.KindOf(sorted), seqkit.Values(sorted))
	// Output: list [adam Bob Zoe]
}

func ExampleReverse() {
	fmt.Println(seqkit.Reverse[rune](seqkit.Text("stressed")))
	// Output: desserts
}

func ExampleUnique() {
	fmt.Println(seqkit.Unique[string](seqkit.ArrayOf("b", "a", "b", "c", "a")).ToSlice())
	// Output: [b a c]
}
