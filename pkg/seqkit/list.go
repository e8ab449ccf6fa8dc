package seqkit

import "iter"

// List is the singly-linked sequence kind.
// The zero value is an empty list ready to use.
//
// List keeps track of its tail and length, so Append and Len are O(1),
// while positional access walks the links.
type List[T any] struct {
	head   *listNode[T]
	tail   *listNode[T]
	length int
}

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

func ListOf[T any](vs ...T) *List[T] {
	var l List[T]
	l.Append(vs...)
	return &l
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

func (l *List[T]) Lookup(index int) (T, bool) {
	var zero T
	if index < 0 || l.Len() <= index {
		return zero, false
	}
	n := l.head
	for ; 0 < index; index-- {
		n = n.next
	}
	return n.value, true
}

func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		node := &listNode[T]{value: v}
		if l.tail == nil {
			l.head = node
		} else {
			l.tail.next = node
		}
		l.tail = node
		l.length++
	}
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (l *List[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		l.head = &listNode[T]{value: vs[i], next: l.head}
		if l.tail == nil {
			l.tail = l.head
		}
		l.length++
	}
}

func (l *List[T]) ToSlice() []T {
	if l == nil {
		return nil
	}
	vs := make([]T, 0, l.length)
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (l *List[T]) SubSeq(start, end int) Sequence[T] {
	var (
		out   List[T]
		index int
	)
	if l == nil {
		return &out
	}
	for n := l.head; n != nil && index < end; n = n.next {
		if start <= index {
			out.Append(n.value)
		}
		index++
	}
	return &out
}

func (l *List[T]) Copy() Sequence[T] {
	var out List[T]
	for v := range l.Iter() {
		out.Append(v)
	}
	return &out
}

func (l *List[T]) Build(vs []T) Sequence[T] { return ListOf(vs...) }

func (l *List[T]) Kind() Kind { return KindList }

func (l *List[T]) Box() Sequence[any] { return boxed[T]{seq: l} }

func (l *List[T]) reverse() *List[T] {
	var out List[T]
	for v := range l.Iter() {
		out.Prepend(v)
	}
	return &out
}

// sortStable returns a sorted copy of the list using a merge sort over the nodes.
func (l *List[T]) sortStable(cmp func(a, b T) int) *List[T] {
	cp := l.Copy().(*List[T])
	cp.head = mergeSort(cp.head, cmp)
	cp.tail = nil
	for n := cp.head; n != nil; n = n.next {
		cp.tail = n
	}
	return cp
}

func mergeSort[T any](head *listNode[T], cmp func(a, b T) int) *listNode[T] {
	if head == nil || head.next == nil {
		return head
	}
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil
	return merge(mergeSort(head, cmp), mergeSort(right, cmp), cmp)
}

// merge takes from the left run on ties, which keeps the sort stable.
func merge[T any](left, right *listNode[T], cmp func(a, b T) int) *listNode[T] {
	var (
		dummy listNode[T]
		tail  = &dummy
	)
	for left != nil && right != nil {
		if cmp(left.value, right.value) <= 0 {
			tail.next, left = left, left.next
		} else {
			tail.next, right = right, right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	return dummy.next
}
