package message

import (
	"strconv"

	"github.com/searchktools/fast-message/core/body"
	"github.com/searchktools/fast-message/core/headers"
)

const chunkedCoding = "chunked"

// NegotiateTransport derives the framing headers from the body's declared
// byte count. A body with a known length carries Content-Length; a
// streaming body of indeterminate length carries Transfer-Encoding:
// chunked. After negotiation exactly one of the two is present.
//
// Safe to invoke redundantly: matching headers are left untouched, so
// repeated negotiation never churns the header set. A zero-length body
// still declares Content-Length: 0; an empty body is not a stream of
// unknown length.
func NegotiateTransport(h *headers.Headers, b body.Body) {
	if n, ok := b.ByteCount(); ok {
		h.Del(headers.TransferEncoding)
		want := strconv.FormatInt(n, 10)
		if cur, present := h.Get(headers.ContentLength); !present || cur != want {
			h.Set(headers.ContentLength, want)
		}
		return
	}

	h.Del(headers.ContentLength)
	if cur, present := h.Get(headers.TransferEncoding); !present || cur != chunkedCoding {
		h.Set(headers.TransferEncoding, chunkedCoding)
	}
}
