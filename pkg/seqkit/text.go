package seqkit

import (
	"iter"
	"unicode/utf8"
)

// Text is the immutable text sequence kind, viewed as a sequence of runes.
//
// Indexing walks the UTF-8 encoding, but sub-ranges are cut by byte offsets,
// so they share the underlying bytes instead of copying them.
type Text string

func (t Text) Iter() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range string(t) {
			if !yield(r) {
				return
			}
		}
	}
}

func (t Text) Len() int { return utf8.RuneCountInString(string(t)) }

func (t Text) Lookup(index int) (rune, bool) {
	if index < 0 {
		return 0, false
	}
	offset, ok := t.offset(index)
	if !ok || offset == len(t) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(string(t[offset:]))
	return r, true
}

func (t Text) SubSeq(start, end int) Sequence[rune] {
	from, _ := t.offset(start)
	to, _ := t.offset(end)
	return t[from:to]
}

// Copy returns the receiver, since Text can't be mutated.
func (t Text) Copy() Sequence[rune] { return t }

func (t Text) Build(vs []rune) Sequence[rune] { return Text(string(vs)) }

func (t Text) Kind() Kind { return KindText }

func (t Text) Box() Sequence[any] { return boxed[rune]{seq: t} }

func (t Text) String() string { return string(t) }

func (t Text) reverse() Text {
	rs := []rune(string(t))
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return Text(string(rs))
}

// offset converts a rune index into a byte offset.
// The index equal to the rune count maps to len(t).
func (t Text) offset(index int) (int, bool) {
	var n int
	for offset := range string(t) {
		if n == index {
			return offset, true
		}
		n++
	}
	if n == index {
		return len(t), true
	}
	return len(t), false
}
