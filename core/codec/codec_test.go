package codec

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TestJSONRoundTrip - JSON codec round trip
func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	in := payload{Name: "fast", Count: 3}
	data, err := JSON{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var out payload
	if err := (JSON{}).Decode(data, &out); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out != in {
		t.Errorf("Round trip mismatch: %+v != %+v", out, in)
	}
}

// TestProtobufRoundTrip - protobuf codec round trip with a wrapper message
func TestProtobufRoundTrip(t *testing.T) {
	in := wrapperspb.String("hello")
	data, err := Protobuf{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := &wrapperspb.StringValue{}
	if err := (Protobuf{}).Decode(data, out); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.GetValue() != "hello" {
		t.Errorf("Expected 'hello', got %q", out.GetValue())
	}
}

// TestProtobufRejectsNonMessage - plain structs are not proto messages
func TestProtobufRejectsNonMessage(t *testing.T) {
	if _, err := (Protobuf{}).Encode(struct{ X int }{1}); err == nil {
		t.Error("Encode should reject non-proto values")
	}
	var v struct{ X int }
	if err := (Protobuf{}).Decode(nil, &v); err == nil {
		t.Error("Decode should reject non-proto values")
	}
}

// TestForContentType - lookup semantics
func TestForContentType(t *testing.T) {
	c, err := ForContentType("application/json; charset=utf-8")
	if err != nil || c.Name() != "json" {
		t.Errorf("JSON with params: got %v (%v)", c, err)
	}

	c, err = ForContentType("")
	if err != nil || c.Name() != "json" {
		t.Errorf("Empty content type should default to JSON, got %v (%v)", c, err)
	}

	c, err = ForContentType("Application/X-Protobuf")
	if err != nil || c.Name() != "protobuf" {
		t.Errorf("Protobuf lookup failed: %v (%v)", c, err)
	}

	if _, err = ForContentType("text/csv"); !errors.Is(err, ErrUnsupportedContentType) {
		t.Errorf("Expected ErrUnsupportedContentType, got %v", err)
	}
}
