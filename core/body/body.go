package body

import (
	"github.com/searchktools/fast-message/core/exec"
	"github.com/searchktools/fast-message/core/stream"
)

// Body is the payload portion of an HTTP message, independent of headers,
// status or method. It is a value type owning exactly one Storage; a
// message changes its body only by whole-value replacement.
//
// Copies of a buffer-backed Body share the underlying bytes read-only.
// Copies of a stream-backed Body share the producer handle, which admits
// a single in-flight consumption; the handle may outlive its Body if a
// caller retains the consumption future after discarding the message.
type Body struct {
	storage Storage
}

// Empty returns a body with no payload. The zero value is equivalent.
func Empty() Body {
	return Body{}
}

// FromBytes wraps an owned byte block. The body takes exclusive ownership
// of block; the caller must not retain it.
func FromBytes(block []byte) Body {
	return Body{storage: Storage{kind: KindBytes, block: block}}
}

// FromBuffer wraps a shared read-only view, possibly a sub-range of a
// larger allocation. The view is never copied and never mutated.
func FromBuffer(view []byte) Body {
	return Body{storage: Storage{kind: KindBuffer, view: view}}
}

// FromText wraps an owned text value.
func FromText(s string) Body {
	return Body{storage: Storage{kind: KindText, text: s}}
}

// FromStatic wraps a compile-time-constant string with process lifetime.
// Behaves like FromText; the distinct kind records that the storage is
// borrowed, never owned.
func FromStatic(s string) Body {
	return Body{storage: Storage{kind: KindStaticText, text: s}}
}

// FromStream wraps a handle to an open-ended chunked producer.
func FromStream(c *stream.Chunked) Body {
	return Body{storage: Storage{kind: KindStream, stream: c}}
}

// Kind returns the active storage representation.
func (b Body) Kind() Kind {
	return b.storage.kind
}

// ByteCount delegates to the storage: the exact length for fixed bodies,
// absent for streams.
func (b Body) ByteCount() (int64, bool) {
	return b.storage.ByteCount()
}

// SyncBytes delegates to the storage: the full payload for fixed bodies,
// absent for streams.
func (b Body) SyncBytes() ([]byte, bool) {
	return b.storage.SyncBytes()
}

// Consume is the single sanctioned way to obtain the bytes of a body whose
// representation is unknown to the caller. It resolves immediately for
// fixed bodies and drains the producer under the byte budget for streams;
// see Storage.BoundedConsume.
func (b Body) Consume(max int64, ex exec.Executor) *exec.Future {
	return b.storage.BoundedConsume(max, ex)
}
