package idgen

import "sync/atomic"

// Sequence yields monotonically increasing values. Implementations must be
// safe for concurrent use.
type Sequence interface {
	Next() int64
}

type counter struct {
	n atomic.Int64
}

// NewCounter returns an in-process atomic Sequence whose first Next call
// yields seed.
func NewCounter(seed int64) Sequence {
	c := &counter{}
	c.n.Store(seed)
	return c
}

func (c *counter) Next() int64 {
	return c.n.Add(1) - 1
}
