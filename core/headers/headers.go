package headers

import (
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Header names used by the transport layer.
const (
	ContentLength    = "Content-Length"
	TransferEncoding = "Transfer-Encoding"
	ContentType      = "Content-Type"
)

// Field is one header entry with its original casing preserved.
type Field struct {
	Name  string
	Value string
}

// Headers is a case-insensitive, insertion-ordered header multimap.
// Lookups go through a lowercased index; iteration preserves the order and
// casing fields were added with.
type Headers struct {
	fields []Field
	index  map[string][]int
}

// New creates an empty header set.
func New() *Headers {
	return &Headers{
		index: make(map[string][]int),
	}
}

// Valid reports whether name and value form a legal header field.
func Valid(name, value string) bool {
	return httpguts.ValidHeaderFieldName(name) && httpguts.ValidHeaderFieldValue(value)
}

// Add appends a field, keeping any existing values under the same name.
func (h *Headers) Add(name, value string) {
	h.fields = append(h.fields, Field{Name: name, Value: value})
	key := strings.ToLower(name)
	h.index[key] = append(h.index[key], len(h.fields)-1)
}

// Set replaces every field under name with a single value.
func (h *Headers) Set(name, value string) {
	h.Del(name)
	h.Add(name, value)
}

// Get returns the first value under name.
func (h *Headers) Get(name string) (string, bool) {
	idxs, ok := h.index[strings.ToLower(name)]
	if !ok || len(idxs) == 0 {
		return "", false
	}
	return h.fields[idxs[0]].Value, true
}

// Values returns every value under name in insertion order.
func (h *Headers) Values(name string) []string {
	idxs, ok := h.index[strings.ToLower(name)]
	if !ok || len(idxs) == 0 {
		return nil
	}

	values := make([]string, 0, len(idxs))
	for _, i := range idxs {
		values = append(values, h.fields[i].Value)
	}
	return values
}

// Del removes every field under name. Removed slots become tombstones so
// the positions of the surviving fields stay stable.
func (h *Headers) Del(name string) {
	key := strings.ToLower(name)
	idxs, ok := h.index[key]
	if !ok {
		return
	}

	for _, i := range idxs {
		h.fields[i] = Field{}
	}
	delete(h.index, key)
}

// Has reports whether at least one field exists under name.
func (h *Headers) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Len returns the number of live fields.
func (h *Headers) Len() int {
	n := 0
	for _, f := range h.fields {
		if f.Name != "" {
			n++
		}
	}
	return n
}

// List returns the live fields in insertion order.
func (h *Headers) List() []Field {
	out := make([]Field, 0, len(h.fields))
	for _, f := range h.fields {
		if f.Name != "" {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a compacted deep copy.
func (h *Headers) Clone() *Headers {
	out := New()
	for _, f := range h.List() {
		out.Add(f.Name, f.Value)
	}
	return out
}

// ContentLength parses the declared body length. It is absent when the
// header is missing, duplicated or malformed; a declared length is never
// negative.
func (h *Headers) ContentLength() (int64, bool) {
	values := h.Values(ContentLength)
	if len(values) != 1 {
		// Missing or ambiguous
		return 0, false
	}

	n, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsChunked reports whether the final Transfer-Encoding token is
// "chunked". Only the last token matters: chunked must be the outermost
// coding applied.
func (h *Headers) IsChunked() bool {
	values := h.Values(TransferEncoding)
	if len(values) == 0 {
		return false
	}

	last := values[len(values)-1]
	if i := strings.LastIndexByte(last, ','); i >= 0 {
		last = last[i+1:]
	}
	return strings.EqualFold(strings.TrimSpace(last), "chunked")
}
