package taxiitest

import (
	"context"
	"sync"

	"github.com/outofforest/taxii/wire"
)

// Request is the request received by the transport.
type Request struct {
	Address string
	Message any
}

// Transport passes requests to the handler in-process and records them.
type Transport struct {
	handler Handler
	schemes []string
	codec   wire.Codec

	// Fail, if set, is called before the request is handled. Returned error is returned by Send
	// as if the network failed.
	Fail func(req Request) error

	mu       sync.Mutex
	requests []Request
}

// NewTransport creates transport. Schemes default to http and https.
func NewTransport(handler Handler, schemes ...string) *Transport {
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	return &Transport{
		handler: handler,
		schemes: schemes,
		codec:   wire.NewCodec(),
	}
}

// Schemes returns URI schemes supported by the transport.
func (t *Transport) Schemes() []string {
	return t.schemes
}

// Send passes the request to the handler.
func (t *Transport) Send(ctx context.Context, address string, payload []byte) ([]byte, error) {
	msg, err := t.codec.Decode(payload)
	if err != nil {
		return nil, err
	}

	req := Request{
		Address: address,
		Message: msg,
	}

	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	if t.Fail != nil {
		if err := t.Fail(req); err != nil {
			return nil, err
		}
	}

	return serve(ctx, t.codec, t.handler, payload)
}

// Requests returns requests received so far.
func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Request(nil), t.requests...)
}
