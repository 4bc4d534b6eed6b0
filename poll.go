package taxii

import (
	"context"
	"iter"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/taxii/wire"
)

// PollParams defines the poll request.
// SubscriptionID is mutually exclusive with CountOnly, ContentBindings and Inbox.
type PollParams struct {
	// Begin selects content created after this time (exclusive).
	Begin time.Time

	// End selects content created before or at this time (inclusive).
	End time.Time

	CountOnly bool

	// SubscriptionID polls in the context of the subscription. Begin and End are still sent with it.
	SubscriptionID string

	ContentBindings []ContentBinding

	// Inbox requests asynchronous delivery of the result set to the inbox service.
	Inbox *InboxService

	// Address of the poll service. Resolved from known services if empty.
	Address string
}

func (p PollParams) request(collection string) (*wire.PollRequest, error) {
	if collection == "" {
		return nil, errors.New("collection name is required")
	}
	if !p.Begin.IsZero() && !p.End.IsZero() && !p.End.After(p.Begin) {
		return nil, errors.Errorf("end %s is not after begin %s", p.End, p.Begin)
	}

	req := &wire.PollRequest{
		CollectionName:          collection,
		ExclusiveBeginTimestamp: formatTimestamp(p.Begin),
		InclusiveEndTimestamp:   formatTimestamp(p.End),
	}

	if p.SubscriptionID != "" {
		if p.CountOnly || len(p.ContentBindings) > 0 || p.Inbox != nil {
			return nil, errors.WithStack(ErrConflictingPollParameters)
		}
		req.SubscriptionID = p.SubscriptionID
		return req, nil
	}

	req.Parameters = wire.PollParameters{
		ResponseType:    wire.ResponseFull,
		ContentBindings: packContentBindings(p.ContentBindings),
	}
	if p.CountOnly {
		req.Parameters.ResponseType = wire.ResponseCountOnly
	}
	if p.Inbox != nil {
		req.Parameters.AllowAsynch = true
		req.Parameters.Delivery = packInbox(p.Inbox)
	}
	return req, nil
}

// Cursor iterates over content blocks of the poll result set.
// Next part of the result set is requested only when all the blocks of the current one have been consumed.
// Cursor is not safe for concurrent use.
type Cursor struct {
	client     *Client
	collection string
	address    string
	follow     bool

	window      PollResultWindow
	recordCount *RecordCount
	blocks      []ContentBlock
	block       ContentBlock
	err         error
}

func newCursor(client *Client, collection, address string, follow bool, part pollPart) *Cursor {
	return &Cursor{
		client:      client,
		collection:  collection,
		address:     address,
		follow:      follow,
		window:      part.Window,
		recordCount: part.RecordCount,
		blocks:      part.Blocks,
	}
}

// Next advances the cursor to the next block. It returns false when result set is exhausted or an error occurred.
func (c *Cursor) Next(ctx context.Context) bool {
	for {
		if c.err != nil {
			return false
		}

		if len(c.blocks) > 0 {
			c.block = c.blocks[0]
			c.blocks[0] = ContentBlock{}
			c.blocks = c.blocks[1:]
			return true
		}

		c.block = ContentBlock{}
		if !c.follow || !c.window.More {
			return false
		}

		partNumber := c.window.PartNumber + 1
		logger.Get(ctx).Debug("Requesting next part of the result set",
			zap.String("collection", c.collection),
			zap.String("resultID", c.window.ResultID),
			zap.Uint64("part", partNumber))

		part, err := c.client.fulfil(ctx, c.collection, c.window.ResultID, partNumber, c.address)
		if err != nil {
			c.err = err
			return false
		}

		c.window = part.Window
		c.blocks = part.Blocks
		if part.RecordCount != nil {
			c.recordCount = part.RecordCount
		}
	}
}

// Block returns the block the cursor points to.
func (c *Cursor) Block() ContentBlock {
	return c.block
}

// Err returns the error which terminated iteration.
func (c *Cursor) Err() error {
	return c.err
}

// Window returns the window of the most recently received part.
func (c *Cursor) Window() PollResultWindow {
	return c.window
}

// RecordCount returns the record count reported by the server, nil if not reported.
func (c *Cursor) RecordCount() *RecordCount {
	return c.recordCount
}

// All returns iterator over remaining blocks. Error terminating the iteration is yielded as the last element.
func (c *Cursor) All(ctx context.Context) iter.Seq2[ContentBlock, error] {
	return func(yield func(ContentBlock, error) bool) {
		for c.Next(ctx) {
			if !yield(c.Block(), nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield(ContentBlock{}, err)
		}
	}
}

// Collect reads all the remaining blocks. Blocks received before an error are returned together with the error.
func (c *Cursor) Collect(ctx context.Context) ([]ContentBlock, error) {
	var blocks []ContentBlock
	for c.Next(ctx) {
		blocks = append(blocks, c.Block())
	}
	return blocks, c.Err()
}

// Poll polls content of the collection. Initial request is sent immediately, the following parts of the result set
// are requested while iterating over the returned cursor.
func (c *Client) Poll(ctx context.Context, collection string, params PollParams) (*Cursor, error) {
	req, err := params.request(collection)
	if err != nil {
		return nil, err
	}

	address, err := c.resolver.Resolve(ctx, KindPoll, params.Address)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatcher.Execute(ctx, req, KindPoll, address)
	if err != nil {
		return nil, err
	}

	part, err := toPollPart(resp, 1, req.Parameters.ResponseType == wire.ResponseCountOnly)
	if err != nil {
		return nil, err
	}

	logger.Get(ctx).Debug("Poll response received",
		zap.String("collection", collection),
		zap.String("resultID", part.Window.ResultID),
		zap.Uint64("part", part.Window.PartNumber),
		zap.Bool("more", part.Window.More),
		zap.Int("blocks", len(part.Blocks)))

	return newCursor(c, collection, address, true, part), nil
}

// Fulfilment requests single part of existing result set. Returned cursor does not request further parts,
// use Window to check if there are more of them.
func (c *Client) Fulfilment(
	ctx context.Context,
	collection, resultID string,
	partNumber uint64,
	address string,
) (*Cursor, error) {
	if partNumber == 0 {
		return nil, errors.WithStack(ErrInvalidPartNumber)
	}

	address, err := c.resolver.Resolve(ctx, KindPoll, address)
	if err != nil {
		return nil, err
	}

	part, err := c.fulfil(ctx, collection, resultID, partNumber, address)
	if err != nil {
		return nil, err
	}
	return newCursor(c, collection, address, false, part), nil
}

func (c *Client) fulfil(
	ctx context.Context,
	collection, resultID string,
	partNumber uint64,
	address string,
) (pollPart, error) {
	resp, err := c.dispatcher.Execute(ctx, &wire.PollFulfillmentRequest{
		CollectionName:   collection,
		ResultID:         resultID,
		ResultPartNumber: partNumber,
	}, KindPoll, address)
	if err != nil {
		return pollPart{}, err
	}
	return toPollPart(resp, partNumber, false)
}

func toPollPart(resp any, partNumber uint64, countOnly bool) (pollPart, error) {
	switch r := resp.(type) {
	case *wire.PollResponse:
		return convertPollResponse(r, partNumber, countOnly)
	case *wire.StatusMessage:
		// Result set is delivered asynchronously.
		return pollPart{Window: PollResultWindow{PartNumber: partNumber}}, nil
	default:
		return pollPart{}, unexpectedResponse(resp)
	}
}
