// Package pqueue provides an array-backed binary max-heap whose elements carry
// a unique id. An id-to-position index allows priorities of queued elements to
// be changed in O(log n) and positions to be looked up in O(1).
package pqueue

// Element is the contract for values stored in a BinaryMaxHeap
type Element[T any] interface {
	// UID identifies the element; it must be unique within a heap and stable
	// while the element is queued
	UID() uint64
	// Compare returns a positive number if the receiver ranks above other,
	// negative if below and zero if equal
	Compare(other T) int
}

// BinaryMaxHeap keeps the highest ranked element at the root. It is not safe
// for concurrent use.
type BinaryMaxHeap[T Element[T]] struct {
	items []T
	index map[uint64]int // uid → position in items
}

// New creates an empty heap
func New[T Element[T]]() *BinaryMaxHeap[T] {
	return &BinaryMaxHeap[T]{index: make(map[uint64]int)}
}

// FromSlice builds a heap from existing elements in O(n). The slice is taken
// over by the heap. Elements with duplicate ids keep the later occurrence.
func FromSlice[T Element[T]](items []T) *BinaryMaxHeap[T] {
	h := &BinaryMaxHeap[T]{index: make(map[uint64]int, len(items))}
	for _, item := range items {
		if i, ok := h.index[item.UID()]; ok {
			h.items[i] = item
			continue
		}
		h.index[item.UID()] = len(h.items)
		h.items = append(h.items, item)
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Len returns the number of queued elements
func (h *BinaryMaxHeap[T]) Len() int {
	return len(h.items)
}

// Push adds an element. An element whose id is already queued replaces the
// old one and is moved to its new position.
func (h *BinaryMaxHeap[T]) Push(item T) {
	if i, ok := h.index[item.UID()]; ok {
		h.items[i] = item
		h.Fix(i)
		return
	}
	h.items = append(h.items, item)
	i := len(h.items) - 1
	h.index[item.UID()] = i
	h.up(i)
}

// Peek returns the highest ranked element without removing it
func (h *BinaryMaxHeap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the highest ranked element
func (h *BinaryMaxHeap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.removeAt(0), true
}

// Get returns the element at heap position i
func (h *BinaryMaxHeap[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(h.items) {
		var zero T
		return zero, false
	}
	return h.items[i], true
}

// IndexOf returns the heap position of the element with the given id
func (h *BinaryMaxHeap[T]) IndexOf(uid uint64) (int, bool) {
	i, ok := h.index[uid]
	return i, ok
}

// Fix restores heap order after the element at position i changed rank
func (h *BinaryMaxHeap[T]) Fix(i int) {
	if i < 0 || i >= len(h.items) {
		return
	}
	if !h.up(i) {
		h.down(i)
	}
}

// Update applies fn to the element with the given id and restores heap order.
// fn must not change the element's id. It reports whether the id was queued.
func (h *BinaryMaxHeap[T]) Update(uid uint64, fn func(T) T) bool {
	i, ok := h.index[uid]
	if !ok {
		return false
	}
	h.items[i] = fn(h.items[i])
	h.Fix(i)
	return true
}

// Remove deletes the element with the given id
func (h *BinaryMaxHeap[T]) Remove(uid uint64) (T, bool) {
	i, ok := h.index[uid]
	if !ok {
		var zero T
		return zero, false
	}
	return h.removeAt(i), true
}

func (h *BinaryMaxHeap[T]) removeAt(i int) T {
	item := h.items[i]
	last := len(h.items) - 1
	if i != last {
		h.swap(i, last)
	}

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	delete(h.index, item.UID())

	if i != last {
		h.Fix(i)
	}
	return item
}

// up sifts the element at i towards the root and reports whether it moved
func (h *BinaryMaxHeap[T]) up(i int) bool {
	start := i
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Compare(h.items[parent]) <= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return i != start
}

func (h *BinaryMaxHeap[T]) down(i int) {
	n := len(h.items)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.items[left].Compare(h.items[largest]) > 0 {
			largest = left
		}
		if right < n && h.items[right].Compare(h.items[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *BinaryMaxHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].UID()] = i
	h.index[h.items[j].UID()] = j
}
