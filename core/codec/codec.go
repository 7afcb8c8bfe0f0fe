package codec

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrUnsupportedContentType = errors.New("codec: unsupported content type")
)

// Codec encodes and decodes message payloads.
type Codec interface {
	// Encode encodes a value to bytes
	Encode(v any) ([]byte, error)

	// Decode decodes bytes to a value
	Decode(data []byte, v any) error

	// Name returns the codec name
	Name() string

	// ContentType returns the media type stamped on encoded payloads
	ContentType() string
}

// ForContentType returns the codec for a Content-Type header value.
// Parameters after ';' are ignored; an empty value defaults to JSON.
func ForContentType(ct string) (Codec, error) {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	switch strings.ToLower(strings.TrimSpace(ct)) {
	case "", "application/json":
		return JSON{}, nil
	case "application/x-protobuf", "application/protobuf":
		return Protobuf{}, nil
	default:
		return nil, ErrUnsupportedContentType
	}
}

// JSON implements JSON encoding/decoding
type JSON struct{}

func (JSON) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return "json"
}

func (JSON) ContentType() string {
	return "application/json"
}
