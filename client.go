package taxii

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/taxii/wire"
)

// DefaultMaxMessageSize is the maximum size of message exchanged by default transports.
const DefaultMaxMessageSize = 16 * 1024 * 1024

// ClientConfig is the config of client.
type ClientConfig struct {
	// DiscoveryAddress is used to discover services when no service of requested kind is known.
	DiscoveryAddress string

	// Services are known upfront, discovered services are added to them.
	Services []ServiceDescriptor

	// Transport defaults to HTTP(S) and stream transports.
	Transport Transport

	// Codec defaults to wire.Codec.
	Codec Codec

	// IDGenerator defaults to NewMessageID.
	IDGenerator IDGenerator

	// Metrics are not collected if nil.
	Metrics *Metrics
}

// Client communicates with TAXII services.
// Client is not safe for concurrent use of operations which might run discovery.
type Client struct {
	config     ClientConfig
	resolver   *resolver
	dispatcher *dispatcher
}

// NewClient creates new client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Transport == nil {
		config.Transport = NewSchemeTransport(
			NewHTTPTransport(HTTPTransportConfig{}),
			NewStreamTransport(StreamTransportConfig{MaxMessageSize: DefaultMaxMessageSize}),
		)
	}
	if config.Codec == nil {
		config.Codec = wire.NewCodec()
	}
	if config.IDGenerator == nil {
		config.IDGenerator = NewMessageID
	}

	client := &Client{
		config: config,
	}
	client.resolver = newResolver(config.DiscoveryAddress, config.Transport.Schemes(), client.discover)
	client.dispatcher = &dispatcher{
		resolver:  client.resolver,
		transport: config.Transport,
		codec:     config.Codec,
		ids:       config.IDGenerator,
		metrics:   config.Metrics,
	}

	if config.DiscoveryAddress != "" {
		if err := client.resolver.Validate(config.DiscoveryAddress); err != nil {
			return nil, err
		}
	}
	for _, s := range config.Services {
		if err := client.resolver.Validate(s.Address); err != nil {
			return nil, err
		}
	}
	client.resolver.Add(config.Services...)

	return client, nil
}

// Services returns known services of the kind. Empty kind returns all of them.
func (c *Client) Services(kind ServiceKind) []ServiceDescriptor {
	return c.resolver.Services(kind)
}

// AddServices adds services to the set of known ones.
func (c *Client) AddServices(services ...ServiceDescriptor) error {
	for _, s := range services {
		if err := c.resolver.Validate(s.Address); err != nil {
			return err
		}
	}
	c.resolver.Add(services...)
	return nil
}

// Discover asks discovery service for the list of services. Discovered services are added to the known ones.
// If address is empty, discovery address from the config is used.
func (c *Client) Discover(ctx context.Context, address string) ([]ServiceDescriptor, error) {
	if address == "" {
		address = c.config.DiscoveryAddress
	}
	if address == "" {
		return nil, errors.WithStack(ErrNoAddressProvided)
	}
	return c.discover(ctx, address)
}

func (c *Client) discover(ctx context.Context, address string) ([]ServiceDescriptor, error) {
	resp, err := c.dispatcher.Execute(ctx, &wire.DiscoveryRequest{}, KindDiscovery, address)
	if err != nil {
		return nil, err
	}

	discoveryResp, ok := resp.(*wire.DiscoveryResponse)
	if !ok {
		return nil, unexpectedResponse(resp)
	}

	services, err := convertServices(discoveryResp.Services)
	if err != nil {
		return nil, err
	}

	c.resolver.Add(services...)

	logger.Get(ctx).Debug("Services discovered",
		zap.String("address", address),
		zap.Int("count", len(services)))

	return services, nil
}

// Collections returns collections reported by collection management service, in the server order.
func (c *Client) Collections(ctx context.Context, address string) ([]Collection, error) {
	resp, err := c.dispatcher.Execute(ctx, &wire.CollectionInformationRequest{}, KindCollectionManagement, address)
	if err != nil {
		return nil, err
	}

	collectionsResp, ok := resp.(*wire.CollectionInformationResponse)
	if !ok {
		return nil, unexpectedResponse(resp)
	}

	return convertCollections(collectionsResp.Collections)
}

// SubscriptionAction is the action requested from collection management service.
type SubscriptionAction string

// Subscription actions.
const (
	ActionSubscribe   SubscriptionAction = "SUBSCRIBE"
	ActionUnsubscribe SubscriptionAction = "UNSUBSCRIBE"
	ActionPause       SubscriptionAction = "PAUSE"
	ActionResume      SubscriptionAction = "RESUME"
	ActionStatus      SubscriptionAction = "STATUS"
)

// SubscriptionRequest defines subscription management request.
type SubscriptionRequest struct {
	Collection string
	Action     SubscriptionAction

	// SubscriptionID is required by pause, resume and unsubscribe actions.
	// Status action without it returns all the subscriptions of the collection.
	SubscriptionID string

	// CountOnly, ContentBindings and Inbox are used by subscribe action.
	CountOnly       bool
	ContentBindings []ContentBinding
	Inbox           *InboxService

	// Address of the collection management service. Resolved from known services if empty.
	Address string
}

// ManageSubscription sends subscription management request.
func (c *Client) ManageSubscription(ctx context.Context, req SubscriptionRequest) (SubscriptionResponse, error) {
	if req.Collection == "" {
		return SubscriptionResponse{}, errors.New("collection name is required")
	}

	msg := &wire.ManageCollectionSubscriptionRequest{
		CollectionName: req.Collection,
		SubscriptionID: req.SubscriptionID,
	}

	switch req.Action {
	case ActionSubscribe:
		msg.Action = wire.ActionSubscribe
		msg.Parameters = wire.SubscriptionParameters{
			ResponseType:    wire.ResponseFull,
			ContentBindings: packContentBindings(req.ContentBindings),
		}
		if req.CountOnly {
			msg.Parameters.ResponseType = wire.ResponseCountOnly
		}
		msg.Push = packInbox(req.Inbox)
	case ActionStatus:
		msg.Action = wire.ActionStatus
	case ActionPause, ActionResume, ActionUnsubscribe:
		if req.SubscriptionID == "" {
			return SubscriptionResponse{}, errors.Wrapf(ErrMissingSubscriptionID, "action: %s", req.Action)
		}
		msg.Action = wire.Action(req.Action)
	default:
		return SubscriptionResponse{}, errors.Errorf("unknown subscription action %q", req.Action)
	}

	resp, err := c.dispatcher.Execute(ctx, msg, KindCollectionManagement, req.Address)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	subscriptionResp, ok := resp.(*wire.ManageCollectionSubscriptionResponse)
	if !ok {
		return SubscriptionResponse{}, unexpectedResponse(resp)
	}

	return convertSubscriptionResponse(subscriptionResp)
}

// SubscriptionStatus returns the status of the subscription, or of all the subscriptions of the collection if
// subscriptionID is empty.
func (c *Client) SubscriptionStatus(
	ctx context.Context,
	collection, subscriptionID, address string,
) (SubscriptionResponse, error) {
	return c.ManageSubscription(ctx, SubscriptionRequest{
		Collection:     collection,
		Action:         ActionStatus,
		SubscriptionID: subscriptionID,
		Address:        address,
	})
}

// Subscribe creates subscription.
func (c *Client) Subscribe(ctx context.Context, req SubscriptionRequest) (SubscriptionResponse, error) {
	req.Action = ActionSubscribe
	return c.ManageSubscription(ctx, req)
}

// PauseSubscription pauses subscription.
func (c *Client) PauseSubscription(
	ctx context.Context,
	collection, subscriptionID, address string,
) (SubscriptionResponse, error) {
	return c.ManageSubscription(ctx, SubscriptionRequest{
		Collection:     collection,
		Action:         ActionPause,
		SubscriptionID: subscriptionID,
		Address:        address,
	})
}

// ResumeSubscription resumes subscription.
func (c *Client) ResumeSubscription(
	ctx context.Context,
	collection, subscriptionID, address string,
) (SubscriptionResponse, error) {
	return c.ManageSubscription(ctx, SubscriptionRequest{
		Collection:     collection,
		Action:         ActionResume,
		SubscriptionID: subscriptionID,
		Address:        address,
	})
}

// Unsubscribe cancels subscription.
func (c *Client) Unsubscribe(
	ctx context.Context,
	collection, subscriptionID, address string,
) (SubscriptionResponse, error) {
	return c.ManageSubscription(ctx, SubscriptionRequest{
		Collection:     collection,
		Action:         ActionUnsubscribe,
		SubscriptionID: subscriptionID,
		Address:        address,
	})
}

// PushRequest defines content pushed to inbox service.
type PushRequest struct {
	Content string
	Binding ContentBinding

	// Collections are the destination collections. Inbox service decides if empty.
	Collections []string

	// Timestamp is the timestamp label of the content block, current time if zero.
	Timestamp time.Time

	// Address of the inbox service. Resolved from known services if empty.
	Address string
}

// Push pushes content to inbox service.
func (c *Client) Push(ctx context.Context, req PushRequest) (Acknowledgement, error) {
	if req.Binding.ID == "" {
		return Acknowledgement{}, errors.New("content binding is required")
	}

	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	msg := &wire.InboxMessage{
		DestinationCollectionNames: cloneStrings(req.Collections),
		ContentBlocks: []wire.ContentBlock{
			{
				Binding:        packContentBinding(req.Binding),
				Content:        req.Content,
				TimestampLabel: formatTimestamp(timestamp),
			},
		},
	}

	resp, err := c.dispatcher.Execute(ctx, msg, KindInbox, req.Address)
	if err != nil {
		return Acknowledgement{}, err
	}

	status, ok := resp.(*wire.StatusMessage)
	if !ok {
		return Acknowledgement{}, unexpectedResponse(resp)
	}

	logger.Get(ctx).Debug("Content pushed", zap.String("messageID", msg.MessageID))

	return Acknowledgement{
		MessageID:    status.MessageID,
		InResponseTo: status.InResponseTo,
		Message:      status.Message,
	}, nil
}
