// SPDX-License-Identifier: MIT

package pq

import (
	"container/heap"
	"errors"
	"fmt"
)

// absent marks an identity that is not currently queued.
const absent = -1

// Sentinel errors returned by Queue methods.
var (
	// ErrFull is returned by Push when the queue already holds capacity entries.
	ErrFull = errors.New("pq: queue is full")

	// ErrBadID is returned for an identity outside [0, capacity).
	ErrBadID = errors.New("pq: identity out of range")

	// ErrDuplicate is returned by Push for an identity that is already queued.
	ErrDuplicate = errors.New("pq: identity already queued")

	// ErrKeyDecrease is returned by IncreaseKey when the new key is smaller
	// than the queued one.
	ErrKeyDecrease = errors.New("pq: key may only increase")
)

// Compile time check that binaryHeap satisfies heap.Interface.
var _ heap.Interface = (*binaryHeap)(nil)

// entry is one queued identity and its key.
type entry struct {
	id  int
	key float64
}

// binaryHeap is the heap.Interface adapter; Swap, Push and Pop keep pos in
// step with items.
type binaryHeap struct {
	items []entry
	pos   []int
}

func (h *binaryHeap) Len() int           { return len(h.items) }
func (h *binaryHeap) Less(i, j int) bool { return h.items[i].key < h.items[j].key }

func (h *binaryHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

func (h *binaryHeap) Push(x any) {
	e := x.(entry)
	h.pos[e.id] = len(h.items)
	h.items = append(h.items, e)
}

func (h *binaryHeap) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[e.id] = absent

	return e
}

// Queue is an indexed min-priority queue for identities in [0, capacity).
type Queue struct {
	h binaryHeap
}

// New returns an empty queue for identities 0..capacity-1.
func New(capacity int) *Queue {
	capacity = max(capacity, 0)
	q := &Queue{h: binaryHeap{
		items: make([]entry, 0, capacity),
		pos:   make([]int, capacity),
	}}
	for i := range q.h.pos {
		q.h.pos[i] = absent
	}

	return q
}

// Len returns the number of queued identities.
func (q *Queue) Len() int { return len(q.h.items) }

// Cap returns the identity capacity.
func (q *Queue) Cap() int { return len(q.h.pos) }

// Contains reports whether id is currently queued.
func (q *Queue) Contains(id int) bool {
	return id >= 0 && id < len(q.h.pos) && q.h.pos[id] != absent
}

// Push queues id with the given key.
func (q *Queue) Push(id int, key float64) error {
	if id < 0 || id >= len(q.h.pos) {
		return fmt.Errorf("%w: %d", ErrBadID, id)
	}
	if q.h.pos[id] != absent {
		return fmt.Errorf("%w: %d", ErrDuplicate, id)
	}
	if len(q.h.items) == len(q.h.pos) {
		return ErrFull
	}
	heap.Push(&q.h, entry{id: id, key: key})

	return nil
}

// Pop removes and returns the identity with the smallest key. ok is false
// when the queue is empty.
func (q *Queue) Pop() (id int, key float64, ok bool) {
	if len(q.h.items) == 0 {
		return absent, 0, false
	}
	e := heap.Pop(&q.h).(entry)

	return e.id, e.key, true
}

// Peek returns the identity with the smallest key without removing it.
func (q *Queue) Peek() (id int, key float64, ok bool) {
	if len(q.h.items) == 0 {
		return absent, 0, false
	}
	e := q.h.items[0]

	return e.id, e.key, true
}

// IncreaseKey raises the key of a queued id and restores heap order. It is a
// no-op for an id that is not queued (for instance, already popped).
func (q *Queue) IncreaseKey(id int, key float64) error {
	if id < 0 || id >= len(q.h.pos) {
		return fmt.Errorf("%w: %d", ErrBadID, id)
	}
	slot := q.h.pos[id]
	if slot == absent {
		return nil
	}
	if key < q.h.items[slot].key {
		return fmt.Errorf("%w: id %d from %g to %g", ErrKeyDecrease, id, q.h.items[slot].key, key)
	}
	q.h.items[slot].key = key
	heap.Fix(&q.h, slot)

	return nil
}
