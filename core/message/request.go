package message

import (
	"strings"

	"github.com/searchktools/fast-message/core/body"
	"github.com/searchktools/fast-message/core/headers"
)

// Request is an HTTP request envelope: method, target, headers and body.
// The body changes only by whole-value replacement through SetBody, which
// keeps the transport headers negotiated.
type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers *headers.Headers

	body body.Body
}

// NewRequest creates a request with an empty, already-negotiated body.
func NewRequest(method, path string) *Request {
	r := &Request{
		Method:  method,
		Path:    path,
		Proto:   "HTTP/1.1",
		Headers: headers.New(),
	}
	r.SetBody(body.Empty())
	return r
}

// Body returns the current body.
func (r *Request) Body() body.Body {
	return r.body
}

// SetBody replaces the body wholesale and renegotiates the transport
// headers.
func (r *Request) SetBody(b body.Body) {
	r.body = b
	NegotiateTransport(r.Headers, b)
}

// String renders a short, safe summary. It never consumes a streaming
// body.
func (r *Request) String() string {
	return r.Method + " " + r.Path + " " + r.Proto + " [" + r.body.Description() + "]"
}

// DebugString renders the full envelope including the decoded body. For an
// open streaming body this force-drains the stream; see
// body.DebugDescription.
func (r *Request) DebugString() string {
	var sb strings.Builder
	sb.WriteString(r.Method)
	sb.WriteByte(' ')
	sb.WriteString(r.Path)
	sb.WriteByte(' ')
	sb.WriteString(r.Proto)
	sb.WriteByte('\n')
	writeHeaders(&sb, r.Headers)
	sb.WriteByte('\n')
	sb.WriteString(r.body.DebugDescription())
	return sb.String()
}

func writeHeaders(sb *strings.Builder, h *headers.Headers) {
	for _, f := range h.List() {
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
		sb.WriteByte('\n')
	}
}
