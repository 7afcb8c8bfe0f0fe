package exec

import "context"

// Future is the eventual byte-sequence result of a deferred computation.
// It completes exactly once; all accessors are safe for concurrent use.
type Future struct {
	done chan struct{}
	data []byte
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a future that is already completed with data. Used for
// payloads whose bytes are known up front, so callers handle immediate and
// deferred results through one code path.
func Resolved(data []byte) *Future {
	f := newFuture()
	f.complete(data, nil)
	return f
}

// Failed returns a future that is already completed with err.
func Failed(err error) *Future {
	f := newFuture()
	f.complete(nil, err)
	return f
}

func (f *Future) complete(data []byte, err error) {
	f.data = data
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the computation completes.
func (f *Future) Result() ([]byte, error) {
	<-f.done
	return f.data, f.err
}

// Wait blocks until the computation completes or ctx is cancelled. The
// underlying task keeps running after cancellation; only the wait is
// abandoned.
func (f *Future) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-f.done:
		return f.data, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
