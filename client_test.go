package taxii_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/qa"
	"github.com/outofforest/taxii"
	"github.com/outofforest/taxii/taxiitest"
	"github.com/outofforest/taxii/wire"
)

const (
	discoveryAddress   = "https://taxii.example.com/discovery"
	collectionsAddress = "https://taxii.example.com/collections"
	pollAddress        = "https://taxii.example.com/poll"
	inboxAddress       = "https://taxii.example.com/inbox"
	bindingSTIX        = "urn:stix.mitre.org:xml:1.1.1"
	collectionName     = "feed-1"
)

var errBroken = errors.New("connection broken")

func testServices() []wire.ServiceInstance {
	return []wire.ServiceInstance{
		{
			ServiceType:     wire.ServiceDiscovery,
			ServiceVersion:  wire.ServicesVersion,
			ProtocolBinding: wire.ProtocolHTTPS,
			Address:         discoveryAddress,
			MessageBindings: []string{wire.MessageBindingProton},
			Available:       true,
		},
		{
			ServiceType:     wire.ServiceCollectionManagement,
			ServiceVersion:  wire.ServicesVersion,
			ProtocolBinding: wire.ProtocolHTTPS,
			Address:         collectionsAddress,
			MessageBindings: []string{wire.MessageBindingProton},
			Available:       true,
		},
		{
			ServiceType:     wire.ServicePoll,
			ServiceVersion:  wire.ServicesVersion,
			ProtocolBinding: wire.ProtocolHTTPS,
			Address:         pollAddress,
			MessageBindings: []string{wire.MessageBindingProton},
			Available:       true,
		},
		{
			ServiceType:     wire.ServiceInbox,
			ServiceVersion:  wire.ServicesVersion,
			ProtocolBinding: wire.ProtocolHTTPS,
			Address:         inboxAddress,
			MessageBindings: []string{wire.MessageBindingProton},
			Available:       true,
		},
	}
}

func testBlocks(contents ...string) []wire.ContentBlock {
	blocks := make([]wire.ContentBlock, 0, len(contents))
	for _, c := range contents {
		blocks = append(blocks, wire.ContentBlock{
			Binding:        wire.ContentBinding{BindingID: bindingSTIX},
			Content:        c,
			TimestampLabel: "2024-01-01T00:00:00Z",
		})
	}
	return blocks
}

func newTestFeed(partSize int, contents ...string) *taxiitest.Feed {
	return taxiitest.NewFeed(taxiitest.FeedConfig{
		Services: testServices(),
		Collections: []wire.CollectionInformation{
			{
				CollectionName: collectionName,
				CollectionType: wire.CollectionDataFeed,
				Available:      true,
				ContentBindings: []wire.ContentBinding{
					{BindingID: bindingSTIX},
				},
				PollingServices: []wire.ServiceEndpoint{
					{ProtocolBinding: wire.ProtocolHTTPS, Address: pollAddress},
				},
			},
		},
		Blocks: map[string][]wire.ContentBlock{
			collectionName: testBlocks(contents...),
		},
		PartSize: partSize,
	})
}

func newTestClient(
	requireT *require.Assertions,
	handler taxiitest.Handler,
	config taxii.ClientConfig,
) (*taxii.Client, *taxiitest.Transport) {
	transport := taxiitest.NewTransport(handler)
	config.Transport = transport

	client, err := taxii.NewClient(config)
	requireT.NoError(err)
	return client, transport
}

func countRequests[T any](requests []taxiitest.Request) int {
	var count int
	for _, r := range requests {
		if _, ok := r.Message.(T); ok {
			count++
		}
	}
	return count
}

func messageID(msg any) string {
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

func TestNewClientRejectsInvalidAddresses(t *testing.T) {
	requireT := require.New(t)

	_, err := taxii.NewClient(taxii.ClientConfig{
		DiscoveryAddress: "taxii.example.com/discovery",
	})
	requireT.ErrorIs(err, taxii.ErrInvalidAddress)

	_, err = taxii.NewClient(taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindPoll, Address: "ftp://taxii.example.com/poll"},
		},
	})
	requireT.ErrorIs(err, taxii.ErrInvalidAddress)

	_, err = taxii.NewClient(taxii.ClientConfig{
		DiscoveryAddress: "tcp://localhost:1000",
	})
	requireT.NoError(err)
}

func TestDiscover(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	_, err := client.Discover(ctx, "")
	requireT.ErrorIs(err, taxii.ErrNoAddressProvided)
	requireT.Empty(transport.Requests())

	services, err := client.Discover(ctx, discoveryAddress)
	requireT.NoError(err)
	requireT.Len(services, 4)
	requireT.Equal(taxii.KindDiscovery, services[0].Kind)
	requireT.Equal(taxii.KindCollectionManagement, services[1].Kind)
	requireT.Equal(taxii.KindPoll, services[2].Kind)
	requireT.Equal(taxii.KindInbox, services[3].Kind)
	requireT.Equal(inboxAddress, services[3].Address)
	requireT.Equal(wire.ServicesVersion, services[3].Version)
	requireT.True(services[3].Available)

	requireT.Equal(services, client.Services(""))
	requireT.Len(client.Services(taxii.KindPoll), 1)

	requests := transport.Requests()
	requireT.Len(requests, 1)
	requireT.Equal(discoveryAddress, requests[0].Address)
	requireT.IsType(&wire.DiscoveryRequest{}, requests[0].Message)
}

func TestCollections(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindCollectionManagement, Address: collectionsAddress},
		},
	})

	collections, err := client.Collections(ctx, "")
	requireT.NoError(err)
	requireT.Equal([]taxii.Collection{
		{
			Name:      collectionName,
			Type:      taxii.CollectionDataFeed,
			Available: true,
			ContentBindings: []taxii.ContentBinding{
				{ID: bindingSTIX},
			},
			PollingServices: []taxii.ServiceEndpoint{
				{ProtocolBinding: wire.ProtocolHTTPS, Address: pollAddress},
			},
		},
	}, collections)

	requests := transport.Requests()
	requireT.Len(requests, 1)
	requireT.Equal(collectionsAddress, requests[0].Address)
}

func TestCollectionsWithoutAddress(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	collections, err := client.Collections(ctx, "")
	requireT.ErrorIs(err, taxii.ErrNoAddressProvided)
	requireT.Nil(collections)
	requireT.Empty(transport.Requests())
}

func TestDiscoveryRunsOnlyWhenNeeded(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		DiscoveryAddress: discoveryAddress,
	})

	_, err := client.Collections(ctx, "")
	requireT.NoError(err)
	_, err = client.Collections(ctx, "")
	requireT.NoError(err)

	requests := transport.Requests()
	requireT.Len(requests, 3)
	requireT.Equal(1, countRequests[*wire.DiscoveryRequest](requests))
	requireT.Equal(discoveryAddress, requests[0].Address)
	requireT.Equal(collectionsAddress, requests[1].Address)
	requireT.Equal(collectionsAddress, requests[2].Address)
}

func TestAmbiguousServicesAreNotGuessed(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		DiscoveryAddress: discoveryAddress,
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindPoll, Address: "https://a.example.com/poll"},
			{Kind: taxii.KindPoll, Address: "https://b.example.com/poll"},
		},
	})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{})
	requireT.Nil(cursor)

	var ambiguousErr *taxii.AmbiguousServicesError
	requireT.ErrorAs(err, &ambiguousErr)
	requireT.Equal(taxii.KindPoll, ambiguousErr.Kind)
	requireT.Equal([]string{"https://a.example.com/poll", "https://b.example.com/poll"}, ambiguousErr.Addresses)
	requireT.Empty(transport.Requests())

	// Explicit address wins.
	cursor, err = client.Poll(ctx, collectionName, taxii.PollParams{Address: "https://b.example.com/poll"})
	requireT.NoError(err)
	requireT.False(cursor.Next(ctx))
	requireT.NoError(cursor.Err())
	requireT.Equal("https://b.example.com/poll", transport.Requests()[0].Address)
}

func TestUnsuccessfulStatusIsReturnedAsError(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, _ := newTestClient(requireT, taxiitest.HandlerFunc(func(ctx context.Context, msg any) (any, error) {
		status := taxiitest.Status(wire.StatusUnauthorized, "access denied")
		status.Details = []wire.StatusDetail{
			{Name: "REALM", Value: "feeds"},
		}
		return status, nil
	}), taxii.ClientConfig{})

	collections, err := client.Collections(ctx, collectionsAddress)
	requireT.Nil(collections)

	var statusErr *taxii.UnsuccessfulStatusError
	requireT.ErrorAs(err, &statusErr)
	requireT.Equal(wire.StatusUnauthorized, statusErr.Status)
	requireT.Equal("access denied", statusErr.Message)
	requireT.Equal(map[string]string{"REALM": "feeds"}, statusErr.Details)
}

func TestUnexpectedResponseIsRejected(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, _ := newTestClient(requireT, taxiitest.HandlerFunc(func(ctx context.Context, msg any) (any, error) {
		return &wire.DiscoveryResponse{}, nil
	}), taxii.ClientConfig{})

	_, err := client.Collections(ctx, collectionsAddress)

	var convErr *taxii.ConversionError
	requireT.ErrorAs(err, &convErr)
	requireT.Equal("message", convErr.Field)
}

func TestTransportErrorIsPassedThrough(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})
	transport.Fail = func(taxiitest.Request) error {
		return errBroken
	}

	_, err := client.Collections(ctx, collectionsAddress)
	requireT.ErrorIs(err, errBroken)
	requireT.Len(transport.Requests(), 1)
}

func TestPush(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	feed := newTestFeed(0)
	client, transport := newTestClient(requireT, feed, taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindInbox, Address: inboxAddress},
		},
	})

	ack, err := client.Push(ctx, taxii.PushRequest{
		Content:     "x",
		Binding:     taxii.Binding("urn:test"),
		Collections: []string{collectionName},
	})
	requireT.NoError(err)

	requests := transport.Requests()
	requireT.Len(requests, 1)
	requireT.Equal(inboxAddress, requests[0].Address)
	requireT.Equal(messageID(requests[0].Message), ack.InResponseTo)
	requireT.NotEmpty(ack.MessageID)

	inbox := feed.Inbox()
	requireT.Len(inbox, 1)
	requireT.Equal([]string{collectionName}, inbox[0].DestinationCollectionNames)
	requireT.Len(inbox[0].ContentBlocks, 1)
	requireT.Equal("x", inbox[0].ContentBlocks[0].Content)
	requireT.Equal("urn:test", inbox[0].ContentBlocks[0].Binding.BindingID)
	requireT.NotEmpty(inbox[0].ContentBlocks[0].TimestampLabel)
}

func TestPushRequiresBinding(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	_, err := client.Push(ctx, taxii.PushRequest{
		Content: "x",
		Address: inboxAddress,
	})
	requireT.Error(err)
	requireT.Empty(transport.Requests())
}

func TestSubscriptionLifecycle(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindCollectionManagement, Address: collectionsAddress},
		},
	})

	resp, err := client.Subscribe(ctx, taxii.SubscriptionRequest{
		Collection:      collectionName,
		CountOnly:       true,
		ContentBindings: []taxii.ContentBinding{taxii.Binding(bindingSTIX)},
		Inbox: &taxii.InboxService{
			Address:         inboxAddress,
			ProtocolBinding: wire.ProtocolHTTPS,
			MessageBindings: []string{wire.MessageBindingProton},
		},
	})
	requireT.NoError(err)
	requireT.Equal(collectionName, resp.Collection)
	requireT.Len(resp.Subscriptions, 1)

	subscription := resp.Subscriptions[0]
	requireT.Equal("subscription-1", subscription.ID)
	requireT.Equal(taxii.SubscriptionActive, subscription.Status)
	requireT.True(subscription.CountOnly)
	requireT.Equal([]taxii.ContentBinding{{ID: bindingSTIX}}, subscription.ContentBindings)
	requireT.Equal(&taxii.PushParameters{
		Address:        inboxAddress,
		Protocol:       wire.ProtocolHTTPS,
		MessageBinding: wire.MessageBindingProton,
	}, subscription.Push)

	resp, err = client.PauseSubscription(ctx, collectionName, subscription.ID, "")
	requireT.NoError(err)
	requireT.Equal(taxii.SubscriptionPaused, resp.Subscriptions[0].Status)

	resp, err = client.ResumeSubscription(ctx, collectionName, subscription.ID, "")
	requireT.NoError(err)
	requireT.Equal(taxii.SubscriptionActive, resp.Subscriptions[0].Status)

	_, err = client.Subscribe(ctx, taxii.SubscriptionRequest{Collection: collectionName})
	requireT.NoError(err)

	resp, err = client.SubscriptionStatus(ctx, collectionName, "", "")
	requireT.NoError(err)
	requireT.Len(resp.Subscriptions, 2)
	requireT.Equal("subscription-1", resp.Subscriptions[0].ID)
	requireT.Equal("subscription-2", resp.Subscriptions[1].ID)
	requireT.False(resp.Subscriptions[1].CountOnly)
	requireT.Nil(resp.Subscriptions[1].Push)

	resp, err = client.Unsubscribe(ctx, collectionName, subscription.ID, "")
	requireT.NoError(err)
	requireT.Equal(taxii.SubscriptionUnsubscribed, resp.Subscriptions[0].Status)

	resp, err = client.SubscriptionStatus(ctx, collectionName, subscription.ID, "")
	requireT.NoError(err)
	requireT.Len(resp.Subscriptions, 1)
	requireT.Equal(taxii.SubscriptionUnsubscribed, resp.Subscriptions[0].Status)

	requests := transport.Requests()
	requireT.Len(requests, 7)
	subscribeReq, ok := requests[0].Message.(*wire.ManageCollectionSubscriptionRequest)
	requireT.True(ok)
	requireT.Equal(wire.ActionSubscribe, subscribeReq.Action)
	requireT.Equal(wire.ResponseCountOnly, subscribeReq.Parameters.ResponseType)
	requireT.Equal(inboxAddress, subscribeReq.Push.InboxAddress)
}

func TestSubscriptionActionsRequireID(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	_, err := client.PauseSubscription(ctx, collectionName, "", collectionsAddress)
	requireT.ErrorIs(err, taxii.ErrMissingSubscriptionID)
	_, err = client.ResumeSubscription(ctx, collectionName, "", collectionsAddress)
	requireT.ErrorIs(err, taxii.ErrMissingSubscriptionID)
	_, err = client.Unsubscribe(ctx, collectionName, "", collectionsAddress)
	requireT.ErrorIs(err, taxii.ErrMissingSubscriptionID)
	requireT.Empty(transport.Requests())
}

func TestUnknownSubscriptionIsReported(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, _ := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	_, err := client.PauseSubscription(ctx, collectionName, "missing", collectionsAddress)

	var statusErr *taxii.UnsuccessfulStatusError
	requireT.ErrorAs(err, &statusErr)
	requireT.Equal(wire.StatusNotFound, statusErr.Status)
}

func TestMessageIDsAreDistinct(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(1, "a", "b", "c"), taxii.ClientConfig{
		DiscoveryAddress: discoveryAddress,
	})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{})
	requireT.NoError(err)
	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Len(blocks, 3)

	requests := transport.Requests()
	requireT.Len(requests, 4)

	ids := map[string]struct{}{}
	for _, r := range requests {
		id := messageID(r.Message)
		requireT.NotEmpty(id)
		ids[id] = struct{}{}
	}
	requireT.Len(ids, len(requests))
}

func TestCustomIDGenerator(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		IDGenerator: func() string {
			return "fixed"
		},
	})

	_, err := client.Collections(ctx, collectionsAddress)
	requireT.NoError(err)
	requireT.Equal("fixed", messageID(transport.Requests()[0].Message))
}

func TestMetricsAreCollected(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	reg := prometheus.NewRegistry()
	metrics, err := taxii.NewMetrics(reg)
	requireT.NoError(err)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{
		Metrics: metrics,
	})

	_, err = client.Collections(ctx, collectionsAddress)
	requireT.NoError(err)
	_, err = client.PauseSubscription(ctx, collectionName, "missing", collectionsAddress)
	requireT.Error(err)

	transport.Fail = func(taxiitest.Request) error {
		return errBroken
	}
	_, err = client.Collections(ctx, collectionsAddress)
	requireT.ErrorIs(err, errBroken)

	count, err := testutil.GatherAndCount(reg, "taxii_client_requests_total")
	requireT.NoError(err)
	requireT.Equal(3, count)
}
