package taxiitest

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/taxii/wire"
)

// Handler processes request and returns response message.
type Handler interface {
	Handle(ctx context.Context, msg any) (any, error)
}

// HandlerFunc is a function implementing Handler.
type HandlerFunc func(ctx context.Context, msg any) (any, error)

// Handle calls the function.
func (f HandlerFunc) Handle(ctx context.Context, msg any) (any, error) {
	return f(ctx, msg)
}

// Status builds status message.
func Status(status wire.StatusType, message string) *wire.StatusMessage {
	return &wire.StatusMessage{
		Status:  status,
		Message: message,
	}
}

// serve decodes request, passes it to the handler and encodes the response.
// Handler errors are reported to the client as failure status.
func serve(ctx context.Context, codec wire.Codec, handler Handler, payload []byte) ([]byte, error) {
	log := logger.Get(ctx)

	msg, err := codec.Decode(payload)
	if err != nil {
		log.Error("Decoding request failed", zap.Error(err))
		return codec.Encode(Status(wire.StatusBadMessage, err.Error()))
	}

	resp, err := handler.Handle(ctx, msg)
	if err != nil {
		log.Error("Handling request failed", zap.Error(err))
		resp = Status(wire.StatusFailure, err.Error())
	}

	stampResponse(resp, uuid.NewString(), requestID(msg))
	return codec.Encode(resp)
}

func requestID(msg any) string {
	switch m := msg.(type) {
	case *wire.DiscoveryRequest:
		return m.MessageID
	case *wire.CollectionInformationRequest:
		return m.MessageID
	case *wire.ManageCollectionSubscriptionRequest:
		return m.MessageID
	case *wire.InboxMessage:
		return m.MessageID
	case *wire.PollRequest:
		return m.MessageID
	case *wire.PollFulfillmentRequest:
		return m.MessageID
	default:
		return ""
	}
}

func stampResponse(msg any, id, inResponseTo string) {
	switch m := msg.(type) {
	case *wire.StatusMessage:
		m.MessageID, m.InResponseTo = id, inResponseTo
	case *wire.DiscoveryResponse:
		m.MessageID, m.InResponseTo = id, inResponseTo
	case *wire.CollectionInformationResponse:
		m.MessageID, m.InResponseTo = id, inResponseTo
	case *wire.ManageCollectionSubscriptionResponse:
		m.MessageID, m.InResponseTo = id, inResponseTo
	case *wire.PollResponse:
		m.MessageID, m.InResponseTo = id, inResponseTo
	}
}
