package body

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/searchktools/fast-message/core/optimize"
)

// DebugDrainLimit caps the forced drain performed by DebugDescription on
// an open stream.
const DebugDrainLimit = 1 << 20

const (
	placeholderOpenStream = "<stream: consume to view content>"
	placeholderConsumed   = "<stream: already consumed>"
	placeholderEmpty      = "<empty>"
	decodeFallback        = "n/a"
)

// Description renders a short, safe summary. It never consumes an open
// stream: an open stream renders a fixed placeholder, a terminal one the
// "already consumed" placeholder. Fixed bodies render their size.
func (b Body) Description() string {
	switch b.storage.kind {
	case KindEmpty:
		return placeholderEmpty
	case KindStream:
		if b.storage.stream.IsClosed() {
			return placeholderConsumed
		}
		return placeholderOpenStream
	default:
		n, _ := b.ByteCount()
		return strconv.FormatInt(n, 10) + " bytes"
	}
}

// DebugDescription renders the payload itself, decoded as text on a best
// effort basis.
//
// For an open stream this is the one sanctioned blocking path: it
// force-drains up to DebugDrainLimit bytes on the calling goroutine, which
// is only appropriate in diagnostics and tests. A drain failure is
// rendered inline; formatting never fails. A terminal stream renders the
// "already consumed" placeholder and is never re-drained.
func (b Body) DebugDescription() string {
	if b.storage.kind == KindStream {
		st := b.storage.stream
		if st.IsClosed() {
			return placeholderConsumed
		}
		data, err := st.Drain(DebugDrainLimit)
		if err != nil {
			return "<stream error: " + err.Error() + ">"
		}
		if len(data) == 0 {
			return placeholderEmpty
		}
		return decodeText(data)
	}

	data, _ := b.SyncBytes()
	if len(data) == 0 {
		return placeholderEmpty
	}
	return decodeText(data)
}

// decodeText decodes payload bytes as text: UTF-8 first, then BOM-marked
// UTF-16, then Latin-1 when every byte is printable. Binary-looking
// payloads render the fixed fallback.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		if printableRunes(data) {
			return string(data)
		}
		return decodeFallback
	}

	if out, ok := decodeUTF16(data); ok {
		return out
	}

	if optimize.PrintableText(data) {
		return decodeLatin1(data)
	}

	return decodeFallback
}

// printableRunes rejects UTF-8 text carrying control characters other than
// tab, CR and LF.
func printableRunes(data []byte) bool {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r < 0x20 && r != '\t' && r != '\r' && r != '\n' {
			return false
		}
		if r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return false
		}
		i += size
	}
	return true
}

func decodeUTF16(data []byte) (string, bool) {
	if len(data) < 2 || len(data)%2 != 0 {
		return "", false
	}
	hasBOM := (data[0] == 0xfe && data[1] == 0xff) || (data[0] == 0xff && data[1] == 0xfe)
	if !hasBOM {
		return "", false
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil || !utf8.Valid(out) || !printableRunes(out) {
		return "", false
	}
	return string(out), true
}

func decodeLatin1(data []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return decodeFallback
	}
	return string(out)
}
