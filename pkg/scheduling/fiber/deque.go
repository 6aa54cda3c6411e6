package fiber

import (
	"cmp"
	"slices"
)

// node pairs a value with its insertion sequence number.
// Sequence numbers start at 1 and only grow, so live nodes are sorted by seq.
type node[T any] struct {
	seq uint64
	v   T
}

func bySeq[T any](n node[T], target uint64) int {
	return cmp.Compare(n.seq, target)
}

// deque is a slice-backed FIFO: append at the tail, pop from the head.
type deque[T any] struct {
	items []node[T]
	head  int
	last  uint64
}

func (d *deque[T]) len() int {
	return len(d.items) - d.head
}

// watermark is the sequence number of the most recently appended entry.
func (d *deque[T]) watermark() uint64 {
	return d.last
}

func (d *deque[T]) pushBack(v T) uint64 {
	d.last++
	d.items = append(d.items, node[T]{seq: d.last, v: v})
	return d.last
}

func (d *deque[T]) popFront() (T, bool) {
	return d.popFrontUpTo(^uint64(0))
}

// popFrontUpTo pops the head only if it was appended at or before limit.
func (d *deque[T]) popFrontUpTo(limit uint64) (T, bool) {
	var zero T
	if d.len() == 0 || d.items[d.head].seq > limit {
		return zero, false
	}

	n := d.items[d.head]
	d.items[d.head] = node[T]{}
	d.head++
	d.compact()
	return n.v, true
}

// remove erases the entry with the given seq, wherever it sits.
func (d *deque[T]) remove(seq uint64) bool {
	live := d.items[d.head:]
	i, found := slices.BinarySearchFunc(live, seq, bySeq[T])
	if !found {
		return false
	}

	at := d.head + i
	copy(d.items[at:], d.items[at+1:])
	d.items[len(d.items)-1] = node[T]{}
	d.items = d.items[:len(d.items)-1]
	d.compact()
	return true
}

func (d *deque[T]) contains(seq uint64) bool {
	live := d.items[d.head:]
	_, found := slices.BinarySearchFunc(live, seq, bySeq[T])
	return found
}

func (d *deque[T]) nodes() []node[T] {
	return slices.Clone(d.items[d.head:])
}

func (d *deque[T]) clear() int {
	n := d.len()
	clear(d.items)
	d.items = d.items[:0]
	d.head = 0
	return n
}

// compact reclaims the consumed prefix once it dominates the backing array.
func (d *deque[T]) compact() {
	if d.head == len(d.items) {
		d.items = d.items[:0]
		d.head = 0
		return
	}
	if d.head < 64 || d.head*2 < len(d.items) {
		return
	}
	n := copy(d.items, d.items[d.head:])
	clear(d.items[n:])
	d.items = d.items[:n]
	d.head = 0
}

// drain pops and runs the head until the deque is empty, including entries
// that run itself appends. It returns the number of entries run.
func (d *deque[T]) drain(run func(T)) int {
	ran := 0
	for {
		v, ok := d.popFront()
		if !ok {
			return ran
		}
		ran++
		run(v)
	}
}

// runGeneration runs only the entries present when it was called.
// Entries appended by run stay queued; entries removed by run are skipped.
func (d *deque[T]) runGeneration(run func(T)) int {
	limit := d.watermark()
	ran := 0
	for {
		v, ok := d.popFrontUpTo(limit)
		if !ok {
			return ran
		}
		ran++
		run(v)
	}
}
