// Package pq provides the indexed min-heap that drives lazy selection: every
// queued identity carries a key that may only grow, and the reverse index
// lets callers raise any key without searching the heap.
//
//	q := pq.New(m)
//	_ = q.Push(id, lower)
//	id, key, _ := q.Peek()
//	_ = q.IncreaseKey(id, tighter)
package pq
