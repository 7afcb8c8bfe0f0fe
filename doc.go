/*
Package fast-message provides the HTTP message-body abstraction used by the
fast-server family: one value type covering fixed in-memory payloads and
open-ended chunked streams, with uniform bounded consumption and automatic
transport-header negotiation.

A Body holds exactly one storage representation - empty, an owned byte
block, a shared read-only buffer view, owned or static text, or a handle to
a chunked producer. Fixed representations know their byte count; a stream
does not, and that single distinction drives the framing decision:
Content-Length for bodies of known length, Transfer-Encoding: chunked for
streams.

Features

  - Closed storage union: six representations behind one contract
  - Bounded consumption: one async code path for fixed and streaming bodies,
    failing (never truncating) when a stream exceeds the byte budget
  - Transport negotiation: idempotent Content-Length / Transfer-Encoding
    rewriting driven by body determinacy
  - Safe rendering: short descriptions never consume an open stream; debug
    rendering decodes payloads best effort (UTF-8, UTF-16, Latin-1)
  - Envelopes: request/response types that renegotiate framing on every
    body replacement, with JSON and protobuf payload codecs

Quick Start

Basic usage example:

package main

import (
    "github.com/searchktools/fast-message/core/body"
    "github.com/searchktools/fast-message/core/exec"
    "github.com/searchktools/fast-message/core/message"
    "github.com/searchktools/fast-message/core/stream"
)

func main() {
    pool := exec.NewPool(4, 256)
    defer pool.Close()

    req := message.NewRequest("POST", "/upload")
    req.SetBody(body.FromText("hello"))
    // req.Headers now carries Content-Length: 5

    s := stream.New(16)
    req.SetBody(body.FromStream(s))
    // req.Headers now carries Transfer-Encoding: chunked

    future := req.Body().Consume(1<<20, pool)
    go func() {
        s.Push([]byte("chunked "))
        s.Push([]byte("payload"))
        s.Close()
    }()
    data, err := future.Result()
    _ = data
    _ = err
}

Modules

The library is organized into several modules:

  - core/body: storage union, Body facade, bounded consumption, rendering
  - core/stream: chunked producer handles with destructive bounded drain
  - core/headers: case-insensitive ordered header multimap
  - core/message: request/response envelopes and transport negotiation
  - core/exec: executor and futures for deferred byte results
  - core/codec: JSON and protobuf payload codecs
  - core/optimize: printable-text scanning fast paths
  - config: configuration loading and defaults

Wire-level HTTP framing, TLS and connection management are out of scope;
this library sits between a transport and application code.
*/
package fastmessage
