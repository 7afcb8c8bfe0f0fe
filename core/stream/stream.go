package stream

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrOverflow is returned when a drain would exceed the caller's byte
	// budget. The partial bytes are discarded and the stream is left in its
	// terminal state.
	ErrOverflow = errors.New("stream: drain limit exceeded")

	// ErrAlreadyConsumed is returned by a second drain attempt on a handle
	// whose contents were already delivered.
	ErrAlreadyConsumed = errors.New("stream: already consumed")

	// ErrDrainInProgress is returned when a drain starts while another one
	// is still in flight on the same handle.
	ErrDrainInProgress = errors.New("stream: drain already in progress")

	// ErrStreamClosed is returned by Push once the stream reached a
	// terminal state or the producer side finished.
	ErrStreamClosed = errors.New("stream: closed")
)

// DefaultBuffer is the chunk channel depth used when New is given a
// non-positive buffer size.
const DefaultBuffer = 16

// Chunked is a handle to an open-ended chunked byte producer. Chunks are
// delivered to the consumer in producer order. The handle admits exactly
// one successful drain; afterwards it is terminal and only describable,
// never re-drainable.
//
// Push and Close must be called from a single producer goroutine. At most
// one drain may be in flight at a time; a concurrent second drain is a
// usage error, not a supported race.
type Chunked struct {
	ch   chan []byte
	done chan struct{}

	closeOnce sync.Once
	termOnce  sync.Once

	closed   atomic.Bool // producer finished pushing
	consumed atomic.Bool // terminal: drained, overflowed or abandoned
	draining atomic.Bool
}

// New creates an open stream whose delivery channel buffers up to buffer
// chunks before Push blocks.
func New(buffer int) *Chunked {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Chunked{
		ch:   make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// Push delivers one chunk to the consumer, blocking while the delivery
// buffer is full. The producer owns chunk until Push returns.
func (c *Chunked) Push(chunk []byte) error {
	if c.closed.Load() || c.consumed.Load() {
		return ErrStreamClosed
	}

	select {
	case c.ch <- chunk:
		return nil
	case <-c.done:
		// Consumer reached a terminal state mid-push
		return ErrStreamClosed
	}
}

// Close marks the producer side finished. A drain in flight will return
// once the buffered chunks are delivered. Idempotent.
func (c *Chunked) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.ch)
	})
}

// IsClosed reports whether the stream reached its terminal state: fully
// drained, overflowed, or otherwise unusable. A terminal stream can still
// be described but never drained again.
func (c *Chunked) IsClosed() bool {
	return c.consumed.Load()
}

func (c *Chunked) terminate() {
	c.consumed.Store(true)
	c.termOnce.Do(func() {
		close(c.done)
	})
}

// Drain consumes the stream to completion and returns its bytes. If the
// accumulated size would exceed max the drain fails with ErrOverflow
// rather than truncating, the partial bytes are discarded and the stream
// becomes terminal. max < 0 means unbounded.
//
// Drain blocks while awaiting the next chunk from the producer. It is
// destructive: a second call returns ErrAlreadyConsumed.
func (c *Chunked) Drain(max int64) ([]byte, error) {
	if c.consumed.Load() {
		return nil, ErrAlreadyConsumed
	}
	if !c.draining.CompareAndSwap(false, true) {
		return nil, ErrDrainInProgress
	}
	defer c.draining.Store(false)

	var (
		buf   []byte
		total int64
	)
	for chunk := range c.ch {
		total += int64(len(chunk))
		if max >= 0 && total > max {
			c.terminate()
			return nil, ErrOverflow
		}
		buf = append(buf, chunk...)
	}

	c.terminate()
	return buf, nil
}
