package taxii_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/qa"
	"github.com/outofforest/taxii"
	"github.com/outofforest/taxii/taxiitest"
	"github.com/outofforest/taxii/wire"
)

func contents(blocks []taxii.ContentBlock) []string {
	result := make([]string, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, b.Content)
	}
	return result
}

func twoPartHandler() taxiitest.HandlerFunc {
	return func(_ context.Context, msg any) (any, error) {
		switch m := msg.(type) {
		case *wire.PollRequest:
			return &wire.PollResponse{
				CollectionName:   m.CollectionName,
				ResultID:         "r1",
				ResultPartNumber: 1,
				More:             true,
				ContentBlocks:    testBlocks("b1"),
			}, nil
		case *wire.PollFulfillmentRequest:
			if m.ResultID != "r1" || m.ResultPartNumber != 2 {
				return taxiitest.Status(wire.StatusInvalidResponsePart, "unknown part"), nil
			}
			return &wire.PollResponse{
				CollectionName:   m.CollectionName,
				ResultID:         "r1",
				ResultPartNumber: 2,
				ContentBlocks:    testBlocks("b2"),
			}, nil
		default:
			return taxiitest.Status(wire.StatusBadMessage, "unexpected"), nil
		}
	}
}

func TestPollUsesSinglePollService(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0, "a", "b"), taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindPoll, Address: pollAddress},
		},
	})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{})
	requireT.NoError(err)

	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Equal([]string{"a", "b"}, contents(blocks))
	requireT.Equal(taxii.ContentBinding{ID: bindingSTIX}, blocks[0].Binding)
	requireT.Equal("2024-01-01T00:00:00Z", blocks[0].Timestamp)
	requireT.Equal(&taxii.RecordCount{Value: 2}, cursor.RecordCount())

	requests := transport.Requests()
	requireT.Len(requests, 1)
	requireT.Equal(pollAddress, requests[0].Address)

	req, ok := requests[0].Message.(*wire.PollRequest)
	requireT.True(ok)
	requireT.Equal(collectionName, req.CollectionName)
	requireT.Equal(wire.ResponseFull, req.Parameters.ResponseType)
	requireT.False(req.Parameters.AllowAsynch)
}

func TestPollFollowsResultSet(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, twoPartHandler(), taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})
	requireT.NoError(err)
	requireT.Equal(taxii.PollResultWindow{ResultID: "r1", PartNumber: 1, More: true}, cursor.Window())
	requireT.Len(transport.Requests(), 1)

	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Equal([]string{"b1", "b2"}, contents(blocks))
	requireT.Equal(taxii.PollResultWindow{ResultID: "r1", PartNumber: 2}, cursor.Window())

	requests := transport.Requests()
	requireT.Len(requests, 2)
	requireT.Equal(pollAddress, requests[1].Address)

	req, ok := requests[1].Message.(*wire.PollFulfillmentRequest)
	requireT.True(ok)
	requireT.Equal(collectionName, req.CollectionName)
	requireT.Equal("r1", req.ResultID)
	requireT.Equal(uint64(2), req.ResultPartNumber)
}

func TestPollFollowsAllParts(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(2, "a", "b", "c", "d", "e"), taxii.ClientConfig{
		DiscoveryAddress: discoveryAddress,
	})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{})
	requireT.NoError(err)

	var received []string
	for block, err := range cursor.All(ctx) {
		requireT.NoError(err)
		received = append(received, block.Content)
	}
	requireT.Equal([]string{"a", "b", "c", "d", "e"}, received)
	requireT.Equal(taxii.PollResultWindow{ResultID: "result-1", PartNumber: 3}, cursor.Window())

	requests := transport.Requests()
	requireT.Equal(1, countRequests[*wire.DiscoveryRequest](requests))
	requireT.Equal(1, countRequests[*wire.PollRequest](requests))
	requireT.Equal(2, countRequests[*wire.PollFulfillmentRequest](requests))
	for _, r := range requests[1:] {
		requireT.Equal(pollAddress, r.Address)
	}
}

func TestPollStopsFetchingWhenConsumerStops(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, twoPartHandler(), taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})
	requireT.NoError(err)
	requireT.True(cursor.Next(ctx))
	requireT.Equal("b1", cursor.Block().Content)
	requireT.Len(transport.Requests(), 1)

	cursor, err = client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})
	requireT.NoError(err)
	for block, err := range cursor.All(ctx) {
		requireT.NoError(err)
		requireT.Equal("b1", block.Content)
		break
	}
	requireT.Equal(0, countRequests[*wire.PollFulfillmentRequest](transport.Requests()))
}

func TestPollFailureKeepsReceivedBlocks(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, twoPartHandler(), taxii.ClientConfig{})
	transport.Fail = func(req taxiitest.Request) error {
		if _, ok := req.Message.(*wire.PollFulfillmentRequest); ok {
			return errBroken
		}
		return nil
	}

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})
	requireT.NoError(err)

	blocks, err := cursor.Collect(ctx)
	requireT.ErrorIs(err, errBroken)
	requireT.Equal([]string{"b1"}, contents(blocks))

	requireT.False(cursor.Next(ctx))
	requireT.ErrorIs(cursor.Err(), errBroken)
	requireT.Len(transport.Requests(), 2)
}

func TestPollFailureIsYieldedLast(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, twoPartHandler(), taxii.ClientConfig{})
	transport.Fail = func(req taxiitest.Request) error {
		if _, ok := req.Message.(*wire.PollFulfillmentRequest); ok {
			return errBroken
		}
		return nil
	}

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})
	requireT.NoError(err)

	var received []string
	var iterErr error
	for block, err := range cursor.All(ctx) {
		if err != nil {
			iterErr = err
			continue
		}
		received = append(received, block.Content)
	}
	requireT.Equal([]string{"b1"}, received)
	requireT.ErrorIs(iterErr, errBroken)
}

func TestPollRejectsConflictingParameters(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	for _, params := range []taxii.PollParams{
		{SubscriptionID: "s1", CountOnly: true},
		{SubscriptionID: "s1", ContentBindings: []taxii.ContentBinding{taxii.Binding(bindingSTIX)}},
		{SubscriptionID: "s1", Inbox: &taxii.InboxService{Address: inboxAddress}},
	} {
		params.Address = pollAddress
		_, err := client.Poll(ctx, collectionName, params)
		requireT.ErrorIs(err, taxii.ErrConflictingPollParameters)
	}
	requireT.Empty(transport.Requests())
}

func TestPollRejectsInvalidRange(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0), taxii.ClientConfig{})

	now := time.Now()
	_, err := client.Poll(ctx, collectionName, taxii.PollParams{
		Begin:   now,
		End:     now.Add(-time.Hour),
		Address: pollAddress,
	})
	requireT.Error(err)

	_, err = client.Poll(ctx, "", taxii.PollParams{Address: pollAddress})
	requireT.Error(err)
	requireT.Empty(transport.Requests())
}

func TestPollWithSubscription(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0, "a"), taxii.ClientConfig{})

	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := begin.Add(24 * time.Hour)
	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{
		Begin:          begin,
		End:            end,
		SubscriptionID: "s1",
		Address:        pollAddress,
	})
	requireT.NoError(err)

	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Equal([]string{"a"}, contents(blocks))

	req, ok := transport.Requests()[0].Message.(*wire.PollRequest)
	requireT.True(ok)
	requireT.Equal("s1", req.SubscriptionID)
	requireT.Equal(wire.PollParameters{}, req.Parameters)
	requireT.Equal("2024-01-01T00:00:00Z", req.ExclusiveBeginTimestamp)
	requireT.Equal("2024-01-02T00:00:00Z", req.InclusiveEndTimestamp)
}

func TestPollWithContentBindings(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	feed := taxiitest.NewFeed(taxiitest.FeedConfig{
		Collections: []wire.CollectionInformation{
			{CollectionName: collectionName, CollectionType: wire.CollectionDataSet},
		},
		Blocks: map[string][]wire.ContentBlock{
			collectionName: {
				{Binding: wire.ContentBinding{BindingID: bindingSTIX}, Content: "stix"},
				{Binding: wire.ContentBinding{BindingID: "urn:test"}, Content: "test"},
			},
		},
	})
	client, _ := newTestClient(requireT, feed, taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{
		ContentBindings: []taxii.ContentBinding{taxii.Binding("urn:test")},
		Address:         pollAddress,
	})
	requireT.NoError(err)

	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Equal([]string{"test"}, contents(blocks))
}

func TestPollCountOnly(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(0, "a", "b", "c"), taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{
		CountOnly: true,
		Address:   pollAddress,
	})
	requireT.NoError(err)
	requireT.Equal(&taxii.RecordCount{Value: 3}, cursor.RecordCount())
	requireT.False(cursor.Next(ctx))
	requireT.NoError(cursor.Err())

	req, ok := transport.Requests()[0].Message.(*wire.PollRequest)
	requireT.True(ok)
	requireT.Equal(wire.ResponseCountOnly, req.Parameters.ResponseType)
}

func TestPollCountOnlyWithoutMatches(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, _ := newTestClient(requireT, taxiitest.HandlerFunc(func(_ context.Context, msg any) (any, error) {
		return &wire.PollResponse{
			CollectionName: collectionName,
		}, nil
	}), taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{
		CountOnly: true,
		Address:   pollAddress,
	})
	requireT.NoError(err)
	requireT.Equal(&taxii.RecordCount{Value: 0}, cursor.RecordCount())
	requireT.False(cursor.Next(ctx))
	requireT.NoError(cursor.Err())
}

func TestPollAsynchronousDelivery(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, taxiitest.HandlerFunc(func(_ context.Context, msg any) (any, error) {
		return taxiitest.Status(wire.StatusSuccess, "delivery scheduled"), nil
	}), taxii.ClientConfig{})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{
		Inbox: &taxii.InboxService{
			Address:         inboxAddress,
			ProtocolBinding: wire.ProtocolHTTPS,
			MessageBindings: []string{wire.MessageBindingProton},
		},
		Address: pollAddress,
	})
	requireT.NoError(err)
	requireT.False(cursor.Next(ctx))
	requireT.NoError(cursor.Err())
	requireT.Nil(cursor.RecordCount())

	req, ok := transport.Requests()[0].Message.(*wire.PollRequest)
	requireT.True(ok)
	requireT.True(req.Parameters.AllowAsynch)
	requireT.Equal(wire.PushParameters{
		InboxProtocol:          wire.ProtocolHTTPS,
		InboxAddress:           inboxAddress,
		DeliveryMessageBinding: wire.MessageBindingProton,
	}, req.Parameters.Delivery)
}

func TestPollRejectsMoreWithoutResultID(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, _ := newTestClient(requireT, taxiitest.HandlerFunc(func(_ context.Context, msg any) (any, error) {
		return &wire.PollResponse{
			CollectionName: collectionName,
			More:           true,
		}, nil
	}), taxii.ClientConfig{})

	_, err := client.Poll(ctx, collectionName, taxii.PollParams{Address: pollAddress})

	var convErr *taxii.ConversionError
	requireT.ErrorAs(err, &convErr)
	requireT.Equal("result_id", convErr.Field)
}

func TestFulfilment(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, newTestFeed(2, "a", "b", "c", "d", "e"), taxii.ClientConfig{
		Services: []taxii.ServiceDescriptor{
			{Kind: taxii.KindPoll, Address: pollAddress},
		},
	})

	cursor, err := client.Poll(ctx, collectionName, taxii.PollParams{})
	requireT.NoError(err)
	resultID := cursor.Window().ResultID
	requireT.Equal("result-1", resultID)

	cursor, err = client.Fulfilment(ctx, collectionName, resultID, 2, "")
	requireT.NoError(err)
	requireT.Equal(taxii.PollResultWindow{ResultID: resultID, PartNumber: 2, More: true}, cursor.Window())

	blocks, err := cursor.Collect(ctx)
	requireT.NoError(err)
	requireT.Equal([]string{"c", "d"}, contents(blocks))

	requests := transport.Requests()
	requireT.Len(requests, 2)
	requireT.Equal(pollAddress, requests[1].Address)

	_, err = client.Fulfilment(ctx, collectionName, resultID, 4, "")
	var statusErr *taxii.UnsuccessfulStatusError
	requireT.ErrorAs(err, &statusErr)
	requireT.Equal(wire.StatusInvalidResponsePart, statusErr.Status)

	_, err = client.Fulfilment(ctx, collectionName, "missing", 1, "")
	requireT.ErrorAs(err, &statusErr)
	requireT.Equal(wire.StatusNotFound, statusErr.Status)
}

func TestFulfilmentRejectsPartZero(t *testing.T) {
	requireT := require.New(t)
	ctx := qa.NewContext(t)

	client, transport := newTestClient(requireT, twoPartHandler(), taxii.ClientConfig{})

	_, err := client.Fulfilment(ctx, collectionName, "r1", 0, pollAddress)
	requireT.ErrorIs(err, taxii.ErrInvalidPartNumber)
	requireT.Empty(transport.Requests())
}
