// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides a FIFO queue backed by a single growable slice, with
// consumed slots discarded lazily in batches.
package queue

import (
	"iter"
	"slices"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// A Bounded queue is a FIFO queue whose wasted space is bounded by periodic
// compaction. Popping marks the front slot as empty and advances a logical
// head instead of shifting the slice; once enough of the slice sits behind the
// head, as defined by the queue's [Config], the consumed prefix is removed in
// one pass.
//
// The zero value is valid and equivalent to a queue returned by [New] with
// [DefaultConfig] and no logger. A Bounded queue is not safe for concurrent
// use.
type Bounded[T any] struct {
	storage []slot[T]
	head    int // 0 <= head <= len(storage); all slots before head are empty

	cfg *Config // nil => DefaultConfig()
	log logging.Logger
}

// slot is an optional value; the zero slot is empty.
type slot[T any] struct {
	val T
	ok  bool
}

// New constructs an empty [Bounded] queue that compacts according to `cfg`. A
// nil logger is equivalent to [logging.NoLog].
func New[T any](cfg Config, log logging.Logger) (*Bounded[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NoLog{}
	}
	return &Bounded[T]{
		cfg: &cfg,
		log: log,
	}, nil
}

func zero[T any]() (z T) { return }

// Len returns the number of elements in the queue.
func (q *Bounded[T]) Len() int {
	return len(q.storage) - q.head
}

// IsEmpty returns whether [Bounded.Len] is zero.
func (q *Bounded[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Push adds `x` to the back of the queue.
func (q *Bounded[T]) Push(x T) {
	q.storage = append(q.storage, slot[T]{val: x, ok: true})
}

// Peek returns the element at the front of the queue without removing it. The
// boolean is false i.f.f. the queue is empty.
func (q *Bounded[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		return zero[T](), false
	}
	return q.storage[q.head].val, true
}

// Pop removes and returns the element at the front of the queue. The boolean
// is false i.f.f. the queue is empty, in which case Pop is a no-op.
func (q *Bounded[T]) Pop() (T, bool) {
	if q.head >= len(q.storage) || !q.storage[q.head].ok {
		return zero[T](), false
	}

	x := q.storage[q.head].val
	q.storage[q.head] = slot[T]{}
	q.head++
	q.maybeCompact()
	return x, true
}

// All returns an iterator over the queue's elements, front to back. The queue
// MUST NOT be modified during iteration.
func (q *Bounded[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		// Every slot from head onwards is occupied.
		for _, s := range q.storage[q.head:] {
			if !yield(s.val) {
				return
			}
		}
	}
}

// Grow increases the queue's allocated buffer to hold at least `n` more
// elements without reallocation. This does not place a limit on the size of
// the queue, but pre-allocates memory.
func (q *Bounded[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	q.storage = slices.Grow(q.storage, n)
}

func (q *Bounded[T]) config() Config {
	if q.cfg == nil {
		return DefaultConfig()
	}
	return *q.cfg
}

func (q *Bounded[T]) logger() logging.Logger {
	if q.log == nil {
		return logging.NoLog{}
	}
	return q.log
}

// wastedRatio returns the fraction of the storage slice occupied by consumed
// slots. It MUST NOT be called with empty storage.
func (q *Bounded[T]) wastedRatio() float64 {
	return float64(q.head) / float64(len(q.storage))
}

func (q *Bounded[T]) maybeCompact() {
	cfg := q.config()
	if len(q.storage) <= cfg.MinLen || q.wastedRatio() <= cfg.MaxWastedRatio {
		return
	}

	discarded := q.head
	// [slices.Delete] zeroes the vacated tail so no stale values are retained.
	q.storage = slices.Delete(q.storage, 0, q.head)
	q.head = 0

	q.logger().Debug("Compacted queue",
		zap.Int("discarded", discarded),
		zap.Int("remaining", len(q.storage)),
	)
}
