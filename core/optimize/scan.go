package optimize

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Wide-scan capability detection
var (
	useWide bool
)

func init() {
	// Word-at-a-time scanning pays off on cores with fast unaligned loads
	if cpu.X86.HasSSE42 || cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		useWide = true
	}
}

const (
	lsbMask = 0x0101010101010101
	msbMask = 0x8080808080808080
)

// PrintableText reports whether every byte of b is printable text: the
// visible ASCII range, tab/CR/LF, or the printable Latin-1 range
// (0xA0-0xFF). C0 controls (other than tab/CR/LF), DEL and C1 controls
// disqualify.
func PrintableText(b []byte) bool {
	if useWide {
		return printableWide(b)
	}
	return printableScalar(b)
}

func printableScalar(b []byte) bool {
	for _, c := range b {
		if !printableByte(c) {
			return false
		}
	}
	return true
}

func printableByte(c byte) bool {
	if c < 0x20 {
		return c == '\t' || c == '\r' || c == '\n'
	}
	// DEL and C1 controls
	return c < 0x7f || c >= 0xa0
}

// printableWide scans eight bytes per step. A word that is entirely visible
// ASCII passes without byte inspection; anything else falls back to the
// scalar check for that word, which also handles tab/CR/LF and Latin-1.
func printableWide(b []byte) bool {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		w := binary.LittleEndian.Uint64(b[i:])
		if asciiPrintableWord(w) {
			continue
		}
		if !printableScalar(b[i : i+8]) {
			return false
		}
	}
	return printableScalar(b[i:])
}

// asciiPrintableWord reports whether all eight bytes are in 0x20-0x7E.
func asciiPrintableWord(w uint64) bool {
	below := (w - 0x2020202020202020) & ^w & msbMask // any byte < 0x20
	high := w & msbMask                              // any byte >= 0x80
	x := w ^ 0x7f7f7f7f7f7f7f7f
	del := (x - lsbMask) & ^x & msbMask // any byte == 0x7F
	return below|high|del == 0
}
