// Package list implements a singly-linked list without a tail pointer.
//
// The chain is a recursive three-variant structure mutated in place: a
// node is empty, a tail holding one element, or a parent holding one
// element plus an owned successor. Every operation rewrites the variant
// at the point it acts, so no auxiliary pointers are kept and the shape
// stays canonical: size 0 is always empty, size 1 always a tail, size 2
// or more always a parent whose successor is never empty.
package list

import "github.com/goose-lang/std"

const (
	empty uint64 = iota
	tail
	parent
)

type node struct {
	kind uint64
	elem uint64
	next *node
}

// List is a sequence of uint64 values. The zero value is an empty list.
// A list must not be mutated from more than one goroutine at a time.
type List struct {
	root node
}

func New() *List {
	return &List{}
}

// From builds a list holding elems in order, front to back.
func From(elems []uint64) *List {
	l := New()
	for _, v := range elems {
		l.Push(v)
	}
	return l
}

// ToSlice drains the list front to back and returns the elements in
// that order. The list is empty afterward.
func (l *List) ToSlice() []uint64 {
	elems := []uint64{}
	for {
		v, ok := l.PopFront()
		if !ok {
			break
		}
		elems = append(elems, v)
	}
	return elems
}

// Push appends v at the back. Traverses the whole chain.
func (l *List) Push(v uint64) {
	l.root.push(v)
}

// PushFront prepends v at the front in constant time.
func (l *List) PushFront(v uint64) {
	l.root.pushFront(v)
}

// Pop removes and returns the back element. The second return is false
// when the list is empty.
func (l *List) Pop() (uint64, bool) {
	return l.root.pop()
}

// PopFront removes and returns the front element. The second return is
// false when the list is empty.
func (l *List) PopFront() (uint64, bool) {
	return l.root.popFront()
}

// Size counts the elements by traversal.
func (l *List) Size() uint64 {
	return l.root.size()
}

// Equal reports whether l and other hold the same elements in the same
// order.
func (l *List) Equal(other *List) bool {
	a := &l.root
	b := &other.root
	for {
		if a.kind != b.kind {
			return false
		}
		if a.kind == empty {
			return true
		}
		if a.elem != b.elem {
			return false
		}
		if a.kind == tail {
			return true
		}
		a = a.next
		b = b.next
	}
}

func (n *node) push(v uint64) {
	switch n.kind {
	case empty:
		n.kind = tail
		n.elem = v
	case tail:
		// this node was the back; grow a new tail under it
		n.kind = parent
		n.next = &node{kind: tail, elem: v}
	case parent:
		n.next.push(v)
	}
}

func (n *node) pushFront(v uint64) {
	if n.kind == empty {
		n.push(v)
		return
	}
	// move the node's current contents down one level, then take its place
	child := *n
	n.kind = parent
	n.elem = v
	n.next = &child
}

func (n *node) pop() (uint64, bool) {
	switch n.kind {
	case empty:
		return 0, false
	case tail:
		return n.toEmpty(), true
	default:
		if n.next.kind == tail {
			return n.toTail(), true
		}
		return n.next.pop()
	}
}

func (n *node) popFront() (uint64, bool) {
	switch n.kind {
	case empty:
		return 0, false
	case tail:
		return n.toEmpty(), true
	default:
		v := n.value()
		// the successor's contents move up over this node; the old
		// successor reference is dropped in the same assignment
		*n = *n.next
		return v, true
	}
}

func (n *node) size() uint64 {
	switch n.kind {
	case empty:
		return 0
	case tail:
		return 1
	default:
		return 1 + n.next.size()
	}
}

// toEmpty clears the node and yields the element it held.
func (n *node) toEmpty() uint64 {
	v := n.value()
	*n = node{}
	return v
}

// toTail consumes the node's tail successor, demotes the node from
// parent to tail, and yields the successor's element.
func (n *node) toTail() uint64 {
	popped := n.next.toEmpty()
	n.kind = tail
	n.next = nil
	return popped
}

// value reads the node's element. Calling it on an empty node is a bug
// in this package, never reachable through List's methods.
func (n *node) value() uint64 {
	std.Assert(n.kind != empty)
	return n.elem
}
