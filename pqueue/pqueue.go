package pqueue

// New returns an empty PriorityQueue ordered by cmp.
// Returns ErrNilComparator if cmp is nil.
func New[T any](cmp Comparator[T]) (*PriorityQueue[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	return &PriorityQueue[T]{cmp: cmp}, nil
}

// Len returns the number of live items. Complexity: O(1).
func (pq *PriorityQueue[T]) Len() int { return pq.count }

// Insert adds item to the queue.
//
// The most recently freed slot is claimed if there is one, otherwise a new
// slot is appended; the item then sifts up until its parent is at least as
// good as it is. Complexity: O(log n).
func (pq *PriorityQueue[T]) Insert(item T) {
	var pos int
	if n := len(pq.free); n > 0 {
		pos = pq.free[n-1]
		pq.free = pq.free[:n-1]
	} else {
		pos = len(pq.data)
		pq.data = append(pq.data, slot[T]{})
	}
	pq.data[pos] = slot[T]{item: item, used: true}
	pq.count++

	pq.siftUp(pos)
}

// Remove extracts the best item according to the comparator.
// Returns ErrEmptyQueue if the queue holds no items. Complexity: O(log n).
func (pq *PriorityQueue[T]) Remove() (T, error) {
	var zero T
	if pq.count == 0 {
		return zero, ErrEmptyQueue
	}

	root := pq.data[0].item
	pq.siftDown(0)
	pq.count--

	return root, nil
}

// Peek returns the best item without removing it.
// Returns ErrEmptyQueue if the queue holds no items. Complexity: O(1).
func (pq *PriorityQueue[T]) Peek() (T, error) {
	var zero T
	if pq.count == 0 {
		return zero, ErrEmptyQueue
	}

	return pq.data[0].item, nil
}

// siftUp moves the item at pos toward the root while it beats its parent.
func (pq *PriorityQueue[T]) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if pq.cmp(pq.data[parent].item, pq.data[pos].item) <= 0 {
			return
		}
		pq.data[parent], pq.data[pos] = pq.data[pos], pq.data[parent]
		pos = parent
	}
}

// siftDown fills the hole at pos by repeatedly promoting the better live
// child, then records the final empty slot on the free list.
func (pq *PriorityQueue[T]) siftDown(pos int) {
	var zero T
	for {
		child := pq.betterChild(pos)
		if child < 0 {
			pq.data[pos] = slot[T]{item: zero}
			pq.free = append(pq.free, pos)
			return
		}
		pq.data[pos] = pq.data[child]
		pos = child
	}
}

// betterChild returns the index of the live child of pos that should be
// extracted first, or -1 if pos has no live child.
func (pq *PriorityQueue[T]) betterChild(pos int) int {
	left, right := 2*pos+1, 2*pos+2
	leftOK := pq.live(left)
	rightOK := pq.live(right)

	switch {
	case leftOK && rightOK:
		if pq.cmp(pq.data[right].item, pq.data[left].item) < 0 {
			return right
		}
		return left
	case leftOK:
		return left
	case rightOK:
		return right
	}

	return -1
}

// live reports whether i addresses an occupied slot.
func (pq *PriorityQueue[T]) live(i int) bool {
	return i < len(pq.data) && pq.data[i].used
}
