package exec

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestResolvedImmediate - a resolved future is done before anyone waits
func TestResolvedImmediate(t *testing.T) {
	f := Resolved([]byte("hello"))

	select {
	case <-f.Done():
	default:
		t.Fatal("Resolved future should be done immediately")
	}

	data, err := f.Result()
	if err != nil {
		t.Fatalf("Result returned error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected 'hello', got %q", data)
	}
}

// TestFailedImmediate - a failed future carries its error
func TestFailedImmediate(t *testing.T) {
	boom := errors.New("boom")
	f := Failed(boom)

	data, err := f.Result()
	if data != nil {
		t.Errorf("Expected nil data, got %q", data)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

// TestPoolSubmit - tasks run on workers and complete their futures
func TestPoolSubmit(t *testing.T) {
	p := NewPool(2, 8)
	defer p.Close()

	f := p.Submit(func() ([]byte, error) {
		return []byte("payload"), nil
	})

	data, err := f.Result()
	if err != nil {
		t.Fatalf("Result returned error: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Expected 'payload', got %q", data)
	}
}

// TestPoolQueueSpill - a full queue spills to a fresh goroutine instead of blocking
func TestPoolQueueSpill(t *testing.T) {
	p := NewPool(1, 1)
	defer p.Close()

	block := make(chan struct{})
	started := make(chan struct{})

	// Occupy the single worker, then fill the single queue slot.
	p.Submit(func() ([]byte, error) {
		close(started)
		<-block
		return nil, nil
	})
	<-started
	p.Submit(func() ([]byte, error) {
		return nil, nil
	})

	// This submission must not block and must still complete.
	done := make(chan struct{})
	go func() {
		f := p.Submit(func() ([]byte, error) {
			return []byte("spilled"), nil
		})
		data, _ := f.Result()
		if string(data) == "spilled" {
			close(done)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Spilled task did not complete")
	}
	close(block)
}

// TestWaitCancel - Wait returns on context cancellation without completing
func TestWaitCancel(t *testing.T) {
	p := NewPool(1, 1)
	defer p.Close()

	block := make(chan struct{})
	f := p.Submit(func() ([]byte, error) {
		<-block
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	close(block)
}

// TestInline - the inline executor runs synchronously
func TestInline(t *testing.T) {
	ran := false
	f := Inline{}.Submit(func() ([]byte, error) {
		ran = true
		return []byte("now"), nil
	})

	if !ran {
		t.Fatal("Inline task should run before Submit returns")
	}

	data, err := f.Result()
	if err != nil || string(data) != "now" {
		t.Errorf("Expected 'now', got %q (err %v)", data, err)
	}
}

// BenchmarkPoolSubmit - submission throughput with trivial tasks
func BenchmarkPoolSubmit(b *testing.B) {
	p := NewPool(4, 256)
	defer p.Close()

	task := func() ([]byte, error) { return nil, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Submit(task).Result()
	}
}
