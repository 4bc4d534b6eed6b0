package taxii

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/taxii/wire"
)

// dispatcher sends requests and validates responses.
type dispatcher struct {
	resolver  *resolver
	transport Transport
	codec     Codec
	ids       IDGenerator
	metrics   *Metrics
}

// Execute sends the message to the service of the kind and returns validated response.
// Response other than unsuccessful status message is returned unmodified.
func (d *dispatcher) Execute(ctx context.Context, msg any, kind ServiceKind, address string) (any, error) {
	address, err := d.resolver.Resolve(ctx, kind, address)
	if err != nil {
		return nil, err
	}

	log := logger.Get(ctx).With(
		zap.String("service", string(kind)),
		zap.String("address", address),
		zap.String("request", fmt.Sprintf("%T", msg)),
	)

	messageID, stamped := stampMessageID(msg, d.ids)
	if stamped {
		log = log.With(zap.String("messageID", messageID))
	}

	payload, err := d.codec.Encode(msg)
	if err != nil {
		return nil, err
	}

	log.Debug("Sending request")

	start := time.Now()
	respPayload, err := d.transport.Send(ctx, address, payload)
	if err != nil {
		d.metrics.observe(kind, outcomeTransportError, time.Since(start))
		return nil, err
	}

	resp, err := d.codec.Decode(respPayload)
	if err != nil {
		d.metrics.observe(kind, outcomeDecodeError, time.Since(start))
		return nil, err
	}

	if inResponseTo := responseTo(resp); stamped && inResponseTo != messageID {
		log.Warn("Response refers to another request", zap.String("inResponseTo", inResponseTo))
	}

	if status, ok := resp.(*wire.StatusMessage); ok && status.Status != wire.StatusSuccess {
		d.metrics.observe(kind, outcomeStatusError, time.Since(start))
		log.Debug("Unsuccessful status received",
			zap.String("status", string(status.Status)),
			zap.String("message", status.Message))

		err := &UnsuccessfulStatusError{
			Status:  status.Status,
			Message: status.Message,
		}
		if len(status.Details) > 0 {
			err.Details = make(map[string]string, len(status.Details))
			for _, detail := range status.Details {
				err.Details[detail.Name] = detail.Value
			}
		}
		return nil, errors.WithStack(err)
	}

	d.metrics.observe(kind, outcomeSuccess, time.Since(start))
	log.Debug("Response received", zap.String("response", fmt.Sprintf("%T", resp)))

	return resp, nil
}

func stampMessageID(msg any, ids IDGenerator) (string, bool) {
	var id *string
	switch m := msg.(type) {
	case *wire.DiscoveryRequest:
		id = &m.MessageID
	case *wire.CollectionInformationRequest:
		id = &m.MessageID
	case *wire.ManageCollectionSubscriptionRequest:
		id = &m.MessageID
	case *wire.InboxMessage:
		id = &m.MessageID
	case *wire.PollRequest:
		id = &m.MessageID
	case *wire.PollFulfillmentRequest:
		id = &m.MessageID
	default:
		return "", false
	}

	*id = ids()
	return *id, true
}

func responseTo(msg any) string {
	switch m := msg.(type) {
	case *wire.StatusMessage:
		return m.InResponseTo
	case *wire.DiscoveryResponse:
		return m.InResponseTo
	case *wire.CollectionInformationResponse:
		return m.InResponseTo
	case *wire.ManageCollectionSubscriptionResponse:
		return m.InResponseTo
	case *wire.PollResponse:
		return m.InResponseTo
	default:
		return ""
	}
}
