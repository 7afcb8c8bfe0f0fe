package message

import (
	"errors"

	"github.com/searchktools/fast-message/core/body"
	"github.com/searchktools/fast-message/core/codec"
	"github.com/searchktools/fast-message/core/headers"
)

// ErrStreamingPayload is returned when decoding is attempted on a
// streaming body. Streams must be consumed into bytes first.
var ErrStreamingPayload = errors.New("message: streaming body must be consumed before decoding")

// EncodePayload marshals v with c, installs the bytes as the body and
// stamps the Content-Type.
func (r *Request) EncodePayload(c codec.Codec, v any) error {
	data, err := c.Encode(v)
	if err != nil {
		return err
	}
	r.Headers.Set(headers.ContentType, c.ContentType())
	r.SetBody(body.FromBytes(data))
	return nil
}

// DecodePayload unmarshals the body into v using the codec selected by the
// Content-Type header. Fails for streaming bodies.
func (r *Request) DecodePayload(v any) error {
	return decodePayload(r.Headers, r.body, v)
}

// EncodePayload marshals v with c, installs the bytes as the body and
// stamps the Content-Type.
func (r *Response) EncodePayload(c codec.Codec, v any) error {
	data, err := c.Encode(v)
	if err != nil {
		return err
	}
	r.Headers.Set(headers.ContentType, c.ContentType())
	r.SetBody(body.FromBytes(data))
	return nil
}

// DecodePayload unmarshals the body into v using the codec selected by the
// Content-Type header. Fails for streaming bodies.
func (r *Response) DecodePayload(v any) error {
	return decodePayload(r.Headers, r.body, v)
}

func decodePayload(h *headers.Headers, b body.Body, v any) error {
	ct, _ := h.Get(headers.ContentType)
	c, err := codec.ForContentType(ct)
	if err != nil {
		return err
	}

	data, ok := b.SyncBytes()
	if !ok {
		return ErrStreamingPayload
	}
	return c.Decode(data, v)
}
