package taxiitest

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/outofforest/taxii/wire"
)

// FeedConfig defines content served by the feed.
type FeedConfig struct {
	Services    []wire.ServiceInstance
	Collections []wire.CollectionInformation

	// Blocks are the content blocks of collections.
	Blocks map[string][]wire.ContentBlock

	// PartSize is the maximum number of blocks in a single part of the result set. Zero means no limit.
	PartSize int
}

type resultSet struct {
	collection string
	parts      [][]wire.ContentBlock
}

// Feed is a TAXII service keeping everything in memory.
type Feed struct {
	config FeedConfig

	mu            sync.Mutex
	inbox         []*wire.InboxMessage
	subscriptions map[string][]*wire.SubscriptionInstance
	results       map[string]resultSet
	nextID        uint64
}

// NewFeed creates feed.
func NewFeed(config FeedConfig) *Feed {
	return &Feed{
		config:        config,
		subscriptions: map[string][]*wire.SubscriptionInstance{},
		results:       map[string]resultSet{},
	}
}

// Inbox returns messages pushed to the feed.
func (f *Feed) Inbox() []*wire.InboxMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*wire.InboxMessage(nil), f.inbox...)
}

// Handle handles request.
func (f *Feed) Handle(_ context.Context, msg any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch m := msg.(type) {
	case *wire.DiscoveryRequest:
		return &wire.DiscoveryResponse{Services: f.config.Services}, nil
	case *wire.CollectionInformationRequest:
		return &wire.CollectionInformationResponse{Collections: f.config.Collections}, nil
	case *wire.ManageCollectionSubscriptionRequest:
		return f.manageSubscription(m), nil
	case *wire.InboxMessage:
		f.inbox = append(f.inbox, m)
		return Status(wire.StatusSuccess, ""), nil
	case *wire.PollRequest:
		return f.poll(m), nil
	case *wire.PollFulfillmentRequest:
		return f.fulfil(m), nil
	default:
		return nil, errors.Errorf("unsupported message %T", msg)
	}
}

func (f *Feed) collectionExists(name string) bool {
	for _, c := range f.config.Collections {
		if c.CollectionName == name {
			return true
		}
	}
	return false
}

func (f *Feed) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *Feed) manageSubscription(m *wire.ManageCollectionSubscriptionRequest) any {
	if !f.collectionExists(m.CollectionName) {
		return Status(wire.StatusNotFound, "collection does not exist")
	}

	resp := &wire.ManageCollectionSubscriptionResponse{
		CollectionName: m.CollectionName,
	}

	if m.Action == wire.ActionSubscribe {
		s := &wire.SubscriptionInstance{
			SubscriptionID: f.newID("subscription"),
			Status:         wire.SubscriptionActive,
			Parameters:     m.Parameters,
			Push:           m.Push,
		}
		f.subscriptions[m.CollectionName] = append(f.subscriptions[m.CollectionName], s)
		resp.Subscriptions = []wire.SubscriptionInstance{*s}
		return resp
	}

	if m.Action == wire.ActionStatus && m.SubscriptionID == "" {
		for _, s := range f.subscriptions[m.CollectionName] {
			resp.Subscriptions = append(resp.Subscriptions, *s)
		}
		return resp
	}

	var subscription *wire.SubscriptionInstance
	for _, s := range f.subscriptions[m.CollectionName] {
		if s.SubscriptionID == m.SubscriptionID {
			subscription = s
			break
		}
	}
	if subscription == nil {
		return Status(wire.StatusNotFound, "subscription does not exist")
	}

	switch m.Action {
	case wire.ActionPause:
		subscription.Status = wire.SubscriptionPaused
	case wire.ActionResume:
		subscription.Status = wire.SubscriptionActive
	case wire.ActionUnsubscribe:
		subscription.Status = wire.SubscriptionUnsubscribed
	case wire.ActionStatus:
	default:
		return Status(wire.StatusBadMessage, "unknown action")
	}

	resp.Subscriptions = []wire.SubscriptionInstance{*subscription}
	return resp
}

func (f *Feed) poll(m *wire.PollRequest) any {
	if !f.collectionExists(m.CollectionName) {
		return Status(wire.StatusNotFound, "collection does not exist")
	}

	blocks := f.filter(m.CollectionName, m.Parameters.ContentBindings)

	if m.SubscriptionID == "" && m.Parameters.ResponseType == wire.ResponseCountOnly {
		return &wire.PollResponse{
			CollectionName:   m.CollectionName,
			ResultPartNumber: 1,
			RecordCount:      uint64(len(blocks)),
		}
	}

	parts := split(blocks, f.config.PartSize)
	resp := &wire.PollResponse{
		CollectionName:   m.CollectionName,
		SubscriptionID:   m.SubscriptionID,
		ResultPartNumber: 1,
		RecordCount:      uint64(len(blocks)),
		ContentBlocks:    parts[0],
	}
	if len(parts) > 1 {
		resp.More = true
		resp.ResultID = f.newID("result")
		f.results[resp.ResultID] = resultSet{
			collection: m.CollectionName,
			parts:      parts,
		}
	}
	return resp
}

func (f *Feed) fulfil(m *wire.PollFulfillmentRequest) any {
	result, exists := f.results[m.ResultID]
	if !exists || result.collection != m.CollectionName {
		return Status(wire.StatusNotFound, "result set does not exist")
	}
	if m.ResultPartNumber == 0 || m.ResultPartNumber > uint64(len(result.parts)) {
		return Status(wire.StatusInvalidResponsePart, "part does not exist")
	}

	return &wire.PollResponse{
		CollectionName:   m.CollectionName,
		More:             m.ResultPartNumber < uint64(len(result.parts)),
		ResultID:         m.ResultID,
		ResultPartNumber: m.ResultPartNumber,
		ContentBlocks:    result.parts[m.ResultPartNumber-1],
	}
}

func (f *Feed) filter(collection string, bindings []wire.ContentBinding) []wire.ContentBlock {
	blocks := f.config.Blocks[collection]
	if len(bindings) == 0 {
		return blocks
	}

	var filtered []wire.ContentBlock
	for _, b := range blocks {
		for _, b2 := range bindings {
			if b.Binding.BindingID == b2.BindingID {
				filtered = append(filtered, b)
				break
			}
		}
	}
	return filtered
}

func split(blocks []wire.ContentBlock, size int) [][]wire.ContentBlock {
	if size <= 0 || len(blocks) <= size {
		return [][]wire.ContentBlock{blocks}
	}

	parts := make([][]wire.ContentBlock, 0, (len(blocks)+size-1)/size)
	for len(blocks) > size {
		parts = append(parts, blocks[:size])
		blocks = blocks[size:]
	}
	return append(parts, blocks)
}
