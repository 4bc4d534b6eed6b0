package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/parallel"
	"github.com/outofforest/qa"
	"github.com/outofforest/taxii/taxiitest"
	"github.com/outofforest/taxii/wire"
)

const bindingSTIX = "urn:stix.mitre.org:xml:1.1.1"

type testEnv struct {
	ctx       context.Context
	requireT  *require.Assertions
	discovery string
	feed      *taxiitest.Feed
}

func newTestEnv(t *testing.T) *testEnv {
	requireT := require.New(t)

	ctx := qa.NewContext(t)
	group := qa.NewGroup(ctx, t)
	t.Cleanup(func() {
		group.Exit(nil)
		requireT.NoError(group.Wait())
	})

	ls, err := net.Listen("tcp", "localhost:0")
	requireT.NoError(err)

	base := "http://" + ls.Addr().String()
	feed := taxiitest.NewFeed(taxiitest.FeedConfig{
		Services: []wire.ServiceInstance{
			{ServiceType: wire.ServiceDiscovery, ProtocolBinding: wire.ProtocolHTTP, Address: base + "/discovery"},
			{
				ServiceType:     wire.ServiceCollectionManagement,
				ProtocolBinding: wire.ProtocolHTTP,
				Address:         base + "/collections",
			},
			{ServiceType: wire.ServicePoll, ProtocolBinding: wire.ProtocolHTTP, Address: base + "/poll"},
			{ServiceType: wire.ServiceInbox, ProtocolBinding: wire.ProtocolHTTP, Address: base + "/inbox"},
		},
		Collections: []wire.CollectionInformation{
			{
				CollectionName: "feed-1",
				CollectionType: wire.CollectionDataFeed,
				Available:      true,
				ContentBindings: []wire.ContentBinding{
					{BindingID: bindingSTIX},
				},
			},
		},
		Blocks: map[string][]wire.ContentBlock{
			"feed-1": {
				{Binding: wire.ContentBinding{BindingID: bindingSTIX}, Content: "a"},
				{Binding: wire.ContentBinding{BindingID: bindingSTIX}, Content: "b"},
				{Binding: wire.ContentBinding{BindingID: bindingSTIX}, Content: "c"},
			},
		},
		PartSize: 2,
	})

	group.Spawn("server", parallel.Fail, func(ctx context.Context) error {
		return taxiitest.RunServer(ctx, taxiitest.ServerConfig{HTTPListener: ls}, feed)
	})

	return &testEnv{
		ctx:       ctx,
		requireT:  requireT,
		discovery: base + "/discovery",
		feed:      feed,
	}
}

func (e *testEnv) run(out any, args ...string) {
	buf := &bytes.Buffer{}
	cmd := newRootCommand(buf)
	cmd.SetArgs(append([]string{"--discovery", e.discovery}, args...))

	e.requireT.NoError(cmd.ExecuteContext(e.ctx))
	e.requireT.NoError(yaml.Unmarshal(buf.Bytes(), out))
}

func TestDiscoverCommand(t *testing.T) {
	env := newTestEnv(t)

	var services []serviceOutput
	env.run(&services, "discover")
	env.requireT.Len(services, 4)
	env.requireT.Equal("POLL", services[2].Kind)
}

func TestCollectionsCommand(t *testing.T) {
	env := newTestEnv(t)

	var collections []collectionOutput
	env.run(&collections, "collections")
	env.requireT.Equal([]collectionOutput{
		{
			Name:            "feed-1",
			Type:            "DATA_FEED",
			Available:       true,
			ContentBindings: []string{bindingSTIX},
		},
	}, collections)
}

func TestPollCommand(t *testing.T) {
	env := newTestEnv(t)

	var out pollOutput
	env.run(&out, "poll", "feed-1")
	env.requireT.Len(out.Blocks, 3)
	env.requireT.Equal("c", out.Blocks[2].Content)
	env.requireT.False(out.More)

	out = pollOutput{}
	env.run(&out, "poll", "feed-1", "--limit", "1")
	env.requireT.Len(out.Blocks, 1)
	env.requireT.True(out.More)
	env.requireT.Equal("result-2", out.ResultID)

	out = pollOutput{}
	env.run(&out, "fulfilment", "feed-1", "result-2", "2")
	env.requireT.Len(out.Blocks, 1)
	env.requireT.Equal("c", out.Blocks[0].Content)

	out = pollOutput{}
	env.run(&out, "poll", "feed-1", "--count-only")
	env.requireT.Empty(out.Blocks)
	env.requireT.NotNil(out.RecordCount)
	env.requireT.Equal(uint64(3), *out.RecordCount)
}

func TestPushCommand(t *testing.T) {
	env := newTestEnv(t)

	var ack acknowledgementOutput
	env.run(&ack, "push", "--binding", bindingSTIX, "--dest", "feed-1", "content")
	env.requireT.NotEmpty(ack.InResponseTo)

	inbox := env.feed.Inbox()
	env.requireT.Len(inbox, 1)
	env.requireT.Equal([]string{"feed-1"}, inbox[0].DestinationCollectionNames)
	env.requireT.Equal("content", inbox[0].ContentBlocks[0].Content)
}

func TestSubscriptionCommands(t *testing.T) {
	env := newTestEnv(t)

	var out subscriptionResponseOutput
	env.run(&out, "subscription", "subscribe", "feed-1", "--count-only")
	env.requireT.Len(out.Subscriptions, 1)
	env.requireT.Equal("subscription-1", out.Subscriptions[0].ID)
	env.requireT.True(out.Subscriptions[0].CountOnly)

	out = subscriptionResponseOutput{}
	env.run(&out, "subscription", "pause", "feed-1", "subscription-1")
	env.requireT.Equal("PAUSED", out.Subscriptions[0].Status)

	out = subscriptionResponseOutput{}
	env.run(&out, "subscription", "status", "feed-1")
	env.requireT.Len(out.Subscriptions, 1)
	env.requireT.Equal("PAUSED", out.Subscriptions[0].Status)

	out = subscriptionResponseOutput{}
	env.run(&out, "subscription", "unsubscribe", "feed-1", "subscription-1")
	env.requireT.Equal("UNSUBSCRIBED", out.Subscriptions[0].Status)
}
