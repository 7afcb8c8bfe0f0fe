package body

import (
	"strings"
	"testing"
	"time"

	"github.com/searchktools/fast-message/core/exec"
	"github.com/searchktools/fast-message/core/stream"
)

// TestDescriptionFixed - fixed bodies render a size, not content
func TestDescriptionFixed(t *testing.T) {
	if d := Empty().Description(); d != "<empty>" {
		t.Errorf("Empty description = %q", d)
	}
	if d := FromText("hello").Description(); d != "5 bytes" {
		t.Errorf("Text description = %q", d)
	}
}

// TestDescriptionOpenStream - the short rendering never consumes the stream
func TestDescriptionOpenStream(t *testing.T) {
	s := stream.New(4)
	s.Push([]byte("secret"))
	b := FromStream(s)

	d := b.Description()
	if d != "<stream: consume to view content>" {
		t.Errorf("Open stream description = %q", d)
	}
	if strings.Contains(d, "secret") {
		t.Error("Description leaked stream content")
	}
	if s.IsClosed() {
		t.Error("Description must not consume the stream")
	}

	// The content is still drainable afterwards.
	s.Close()
	data, err := s.Drain(100)
	if err != nil || string(data) != "secret" {
		t.Errorf("Stream was disturbed: %q (%v)", data, err)
	}
}

// TestDescriptionConsumedStream - terminal streams render the fixed placeholder
func TestDescriptionConsumedStream(t *testing.T) {
	s := stream.New(4)
	s.Close()
	b := FromStream(s)

	b.Consume(10, exec.Inline{}).Result()

	if d := b.Description(); d != "<stream: already consumed>" {
		t.Errorf("Consumed stream description = %q", d)
	}
	if d := b.DebugDescription(); d != "<stream: already consumed>" {
		t.Errorf("Consumed stream debug description = %q", d)
	}
}

// TestDebugDescriptionDrainsOpenStream - the debug path may consume, bounded
func TestDebugDescriptionDrainsOpenStream(t *testing.T) {
	s := stream.New(4)
	s.Push([]byte("he"))
	s.Push([]byte("llo"))
	s.Close()

	b := FromStream(s)
	if d := b.DebugDescription(); d != "hello" {
		t.Errorf("Debug description = %q, want 'hello'", d)
	}
	if !s.IsClosed() {
		t.Error("Debug description should leave the stream terminal")
	}
}

// TestDebugDescriptionStreamError - drain failures render inline
func TestDebugDescriptionStreamError(t *testing.T) {
	s := stream.New(4)
	b := FromStream(s)

	started := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		close(started)
		s.Drain(-1)
		close(finished)
	}()
	<-started
	time.Sleep(50 * time.Millisecond)

	d := b.DebugDescription()
	if !strings.Contains(d, "drain already in progress") {
		t.Errorf("Expected inline drain error, got %q", d)
	}

	s.Close()
	<-finished
}

// TestDebugDescriptionUTF8 - valid text decodes as-is
func TestDebugDescriptionUTF8(t *testing.T) {
	if d := FromText("héllo wörld").DebugDescription(); d != "héllo wörld" {
		t.Errorf("UTF-8 debug description = %q", d)
	}
	if d := FromBytes([]byte("line1\nline2")).DebugDescription(); d != "line1\nline2" {
		t.Errorf("Multiline debug description = %q", d)
	}
}

// TestDebugDescriptionBinaryFallback - undecodable payloads render "n/a"
func TestDebugDescriptionBinaryFallback(t *testing.T) {
	if d := FromBytes([]byte{0x00, 0x01, 0x02, 0xff}).DebugDescription(); d != "n/a" {
		t.Errorf("Binary debug description = %q, want 'n/a'", d)
	}
	// Valid UTF-8 but control-laden is still binary.
	if d := FromBytes([]byte("abc\x00def")).DebugDescription(); d != "n/a" {
		t.Errorf("NUL-laden debug description = %q, want 'n/a'", d)
	}
}

// TestDebugDescriptionUTF16 - BOM-marked UTF-16 decodes
func TestDebugDescriptionUTF16(t *testing.T) {
	// "hi" in UTF-16LE with BOM
	payload := []byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00}
	if d := FromBytes(payload).DebugDescription(); d != "hi" {
		t.Errorf("UTF-16 debug description = %q, want 'hi'", d)
	}
}

// TestDebugDescriptionLatin1 - printable Latin-1 decodes
func TestDebugDescriptionLatin1(t *testing.T) {
	// "café" in ISO-8859-1: 0xE9 is not valid UTF-8 on its own
	payload := []byte{'c', 'a', 'f', 0xe9}
	if d := FromBytes(payload).DebugDescription(); d != "café" {
		t.Errorf("Latin-1 debug description = %q, want 'café'", d)
	}
}

// TestDebugDescriptionEmpty - empty payloads render the empty placeholder
func TestDebugDescriptionEmpty(t *testing.T) {
	if d := Empty().DebugDescription(); d != "<empty>" {
		t.Errorf("Empty debug description = %q", d)
	}

	s := stream.New(1)
	s.Close()
	if d := FromStream(s).DebugDescription(); d != "<empty>" {
		t.Errorf("Empty stream debug description = %q", d)
	}
}
