package body

import (
	"github.com/searchktools/fast-message/core/exec"
	"github.com/searchktools/fast-message/core/stream"
)

// Kind tags the storage representation backing a Body.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBuffer
	KindBytes
	KindStaticText
	KindText
	KindStream
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBuffer:
		return "buffer"
	case KindBytes:
		return "bytes"
	case KindStaticText:
		return "static"
	case KindText:
		return "text"
	case KindStream:
		return "stream"
	}
	return "unknown"
}

// Storage is a closed union over the body representations: exactly one is
// active, selected by kind. The zero value is the empty body.
type Storage struct {
	kind   Kind
	view   []byte          // KindBuffer: shared read-only window, may alias a larger allocation
	block  []byte          // KindBytes: exclusively owned
	text   string          // KindText and KindStaticText
	stream *stream.Chunked // KindStream: shared handle
}

// Kind returns the active representation tag.
func (s Storage) Kind() Kind {
	return s.kind
}

// ByteCount returns the exact payload length for fixed kinds. The second
// result is false if and only if the storage is a stream, whose total
// length is unknown until drained. The negotiator trusts this count
// without re-scanning the payload.
func (s Storage) ByteCount() (int64, bool) {
	switch s.kind {
	case KindEmpty:
		return 0, true
	case KindBuffer:
		return int64(len(s.view)), true
	case KindBytes:
		return int64(len(s.block)), true
	case KindStaticText, KindText:
		return int64(len(s.text)), true
	case KindStream:
		return 0, false
	}
	panic("body: unknown storage kind")
}

// SyncBytes returns the full payload of a fixed body. Buffer-backed
// storage hands out its shared view without copying; callers must treat
// the result as read-only. Absent for streams.
func (s Storage) SyncBytes() ([]byte, bool) {
	switch s.kind {
	case KindEmpty:
		return nil, true
	case KindBuffer:
		return s.view, true
	case KindBytes:
		return s.block, true
	case KindStaticText, KindText:
		return []byte(s.text), true
	case KindStream:
		return nil, false
	}
	panic("body: unknown storage kind")
}

// BoundedConsume materializes the payload as a deferred result. Fixed
// kinds resolve immediately with their already-known bytes; the bound is
// advisory there, since fixed bodies are size-vetted by whoever built
// them. A stream delegates to its own bounded drain on the executor, which
// fails rather than truncates when max would be exceeded. Consuming a
// stream is destructive.
func (s Storage) BoundedConsume(max int64, ex exec.Executor) *exec.Future {
	if s.kind == KindStream {
		st := s.stream
		return ex.Submit(func() ([]byte, error) {
			return st.Drain(max)
		})
	}

	data, _ := s.SyncBytes()
	return exec.Resolved(data)
}
