package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for ordered Go types (numbers & strings),
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of
// self-balancing BST. This guarantees O(log n) insertion, search, and
// deletion, and O(1) access to the most-left/most-right key — exactly what a
// price ladder needs for its best bid or best ask.
type Tree[K, V any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// The pooled tree uses the given pool for node creation/release.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Contains checks if a node with the given key exists in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	if t.root == nil {
		return false
	}
	return t.root.contains(key, t.compare)
}

// Find finds the node with the given key in the tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Add inserts a node with the given key and value into the tree.
// Duplicate keys are not allowed; an error is returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (node *Node[K, V], err error) {
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.add(node, t.compare)
		if err != nil {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return nil, err
		}
		t.root = newRoot
	}
	t.size++
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}
	return node, nil
}

// Remove removes the node with the given key from the tree.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrNodeNotFound
		return
	}
	var node, newRoot *Node[K, V]
	node, newRoot, err = t.root.remove(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	value = node.value
	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
	t.size--
	if t.mostLeft == node {
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	if t.mostRight == node {
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		} else {
			t.mostRight = nil
		}
	}
	return
}

// MostLeft returns the node holding the smallest key by compare order.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns the node holding the largest key by compare order.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// Clear resets the tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IteratePreOrder visits each node's value, then its left branch, then its right branch.
func (t *Tree[K, V]) IteratePreOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(n *Node[K, V]) bool {
		return f(n.value)
	})
}

// IterateInOrder visits each node's left branch, then its own value, then its
// right branch — i.e. it walks the tree in ascending key order.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(n *Node[K, V]) bool {
		return f(n.value)
	})
}

// IteratePostOrder visits each node's left branch, then its right branch, then its own value.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(n *Node[K, V]) bool {
		return f(n.value)
	})
}
