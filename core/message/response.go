package message

import (
	"strconv"
	"strings"

	"github.com/searchktools/fast-message/core/body"
	"github.com/searchktools/fast-message/core/headers"
)

// Response is an HTTP response envelope: status, headers and body.
type Response struct {
	StatusCode int
	Proto      string
	Headers    *headers.Headers

	body body.Body
}

// NewResponse creates a response with an empty, already-negotiated body.
func NewResponse(code int) *Response {
	r := &Response{
		StatusCode: code,
		Proto:      "HTTP/1.1",
		Headers:    headers.New(),
	}
	r.SetBody(body.Empty())
	return r
}

// Body returns the current body.
func (r *Response) Body() body.Body {
	return r.body
}

// SetBody replaces the body wholesale and renegotiates the transport
// headers.
func (r *Response) SetBody(b body.Body) {
	r.body = b
	NegotiateTransport(r.Headers, b)
}

// String renders a short, safe summary. It never consumes a streaming
// body.
func (r *Response) String() string {
	return r.Proto + " " + strconv.Itoa(r.StatusCode) + " " + StatusText(r.StatusCode) +
		" [" + r.body.Description() + "]"
}

// DebugString renders the full envelope including the decoded body. For an
// open streaming body this force-drains the stream; see
// body.DebugDescription.
func (r *Response) DebugString() string {
	var sb strings.Builder
	sb.WriteString(r.Proto)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.StatusCode))
	sb.WriteByte(' ')
	sb.WriteString(StatusText(r.StatusCode))
	sb.WriteByte('\n')
	writeHeaders(&sb, r.Headers)
	sb.WriteByte('\n')
	sb.WriteString(r.body.DebugDescription())
	return sb.String()
}

// StatusText returns the reason phrase for the given status code.
func StatusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 304:
		return "Not Modified"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 413:
		return "Content Too Large"
	case 429:
		return "Too Many Requests"
	case 500:
		return "Internal Server Error"
	case 502:
		return "Bad Gateway"
	case 503:
		return "Service Unavailable"
	default:
		return "Unknown"
	}
}
