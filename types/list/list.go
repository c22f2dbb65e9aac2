package list

import "sync"

// List is a doubly linked list used as the FIFO order queue of a single
// price level: pushes happen at the tail (new arrivals), pops happen at
// the head (oldest order first) and arbitrary elements are removed in
// O(1) on cancel. Handles (*Element[T]) stay valid across unrelated
// insertions and removals, which is what lets the order index hold a
// direct pointer into the middle of the queue.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release list elements
	root Element[T] // sentinel list element, only &root, root.prev, and root.next are used
	len  int        // current list length excluding the sentinel element
}

// New creates a new, empty List.
func New[T any]() *List[T] {
	return NewPooled[T](nil)
}

// NewPooled creates a new, empty List that uses pool to create/release elements.
func NewPooled[T any](pool *sync.Pool) *List[T] {
	l := &List[T]{pool: pool}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Front returns the first element of l or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of l or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack inserts a new element with value v at the back of l and returns it.
func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()
	return l.insertValue(v, l.root.prev)
}

// Remove removes e from l if e belongs to l.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		return v, ErrElementIsNil
	}
	if e.list != l {
		return v, ErrElementNotInList
	}
	v = e.Value
	l.remove(e)
	return v, nil
}

// Clean removes all elements from l, releasing them to the pool if one is configured.
func (l *List[T]) Clean() {
	if l.pool != nil {
		for e := l.Front(); e != nil; {
			next := e.next
			var zero T
			e.Value = zero
			e.next, e.prev, e.list = nil, nil, nil
			l.pool.Put(e)
			e = next
		}
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *List[T]) insert(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

func (l *List[T]) insertValue(v T, at *Element[T]) *Element[T] {
	var e *Element[T]
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		e.Value = v
	} else {
		e = &Element[T]{Value: v}
	}
	return l.insert(e, at)
}

func (l *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.len--

	if l.pool != nil {
		l.pool.Put(e)
	}
}
