package exec

// Task produces the byte payload of a deferred computation.
type Task func() ([]byte, error)

// Executor schedules deferred byte-producing work and hands back a Future
// for its result.
type Executor interface {
	Submit(task Task) *Future
}

type submission struct {
	task   Task
	future *Future
}

// Pool is a fixed-worker executor. Tasks are queued on a buffered channel
// and picked up by worker goroutines; when the queue is full the task is
// spilled to a fresh goroutine so a slow consumer cannot stall the caller.
type Pool struct {
	tasks chan submission
}

// NewPool starts a pool with the given worker count and queue depth.
// Non-positive values fall back to 4 workers and a 256-deep queue.
func NewPool(workers, queueDepth int) *Pool {
	if workers <= 0 {
		workers = 4
	}
	if queueDepth <= 0 {
		queueDepth = 256
	}

	p := &Pool{
		tasks: make(chan submission, queueDepth),
	}

	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for s := range p.tasks {
		s.future.complete(s.task())
	}
}

// Submit schedules task and returns its Future. Never blocks.
func (p *Pool) Submit(task Task) *Future {
	f := newFuture()
	s := submission{task: task, future: f}

	select {
	case p.tasks <- s:
		// Queued
	default:
		// Queue full, run on a dedicated goroutine
		go func() {
			f.complete(task())
		}()
	}

	return f
}

// Close stops the workers once queued tasks finish. Submitting after Close
// is a usage error.
func (p *Pool) Close() {
	close(p.tasks)
}

// Inline runs every task synchronously on the calling goroutine. Intended
// for diagnostics and tests where deferral adds nothing.
type Inline struct{}

// Submit runs task immediately and returns its completed Future.
func (Inline) Submit(task Task) *Future {
	f := newFuture()
	f.complete(task())
	return f
}
