package wire

import (
	"github.com/outofforest/varuint64"
	"github.com/pkg/errors"
)

// Codec encodes messages to bytes and decodes them back.
// Encoded form is the varuint64 message ID followed by the marshalled message.
type Codec struct {
	m Marshaller
}

// NewCodec creates codec.
func NewCodec() Codec {
	return Codec{m: NewMarshaller()}
}

// Encode encodes message.
func (c Codec) Encode(msg any) ([]byte, error) {
	id, err := c.m.ID(msg)
	if err != nil {
		return nil, err
	}
	size, err := c.m.Size(msg)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, varuint64.MaxSize+size)
	n := varuint64.Put(buf, id)
	_, msgSize, err := c.m.Marshal(msg, buf[n:])
	if err != nil {
		return nil, err
	}
	return buf[:n+msgSize], nil
}

// Decode decodes message. The whole buffer must be taken by a single message.
func (c Codec) Decode(buf []byte) (any, error) {
	if !varuint64.Contains(buf) {
		return nil, errors.New("invalid message header")
	}

	id, n := varuint64.Parse(buf)
	msg, msgSize, err := c.m.Unmarshal(id, buf[n:])
	if err != nil {
		return nil, err
	}

	if expectedSize := uint64(len(buf)) - n; msgSize != expectedSize {
		return nil, errors.Errorf("expected message size %d, got %d", expectedSize, msgSize)
	}
	return msg, nil
}
