package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecPreservesPollResponse(t *testing.T) {
	requireT := require.New(t)

	msg := &PollResponse{
		MessageID:        "1234567890",
		InResponseTo:     "0987654321",
		CollectionName:   "feed-1",
		More:             true,
		ResultID:         "r1",
		ResultPartNumber: 1,
		RecordCount:      300,
		PartialCount:     true,
		ContentBlocks: []ContentBlock{
			{
				Binding: ContentBinding{
					BindingID:  "urn:stix.mitre.org:xml:1.1.1",
					SubtypeIDs: []string{"a", "b"},
				},
				Content:        "<stix:STIX_Package/>",
				TimestampLabel: "2024-01-02T03:04:05Z",
			},
			{
				Binding: ContentBinding{BindingID: "urn:test"},
				Content: "x",
			},
		},
	}

	c := NewCodec()
	buf, err := c.Encode(msg)
	requireT.NoError(err)

	decoded, err := c.Decode(buf)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestCodecPreservesNestedFlags(t *testing.T) {
	requireT := require.New(t)

	msg := &PollRequest{
		MessageID:      "1",
		CollectionName: "feed-1",
		Parameters: PollParameters{
			AllowAsynch:  true,
			ResponseType: ResponseCountOnly,
			Delivery: PushParameters{
				InboxProtocol: ProtocolHTTPS,
				InboxAddress:  "https://inbox.example.com/inbox",
			},
		},
	}

	c := NewCodec()
	buf, err := c.Encode(msg)
	requireT.NoError(err)

	decoded, err := c.Decode(buf)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestCodecPreservesAllMessages(t *testing.T) {
	requireT := require.New(t)

	bindings := []ContentBinding{
		{BindingID: "urn:stix.mitre.org:xml:1.1.1", SubtypeIDs: []string{"a", ""}},
		{BindingID: "urn:test"},
	}
	endpoints := []ServiceEndpoint{
		{
			ProtocolBinding: ProtocolHTTPS,
			Address:         "https://taxii.example.com/poll",
			MessageBindings: []string{MessageBindingProton},
			ContentBindings: bindings,
		},
	}
	push := PushParameters{
		InboxProtocol:          ProtocolHTTPS,
		InboxAddress:           "https://me.example.com/inbox",
		DeliveryMessageBinding: MessageBindingProton,
	}
	blocks := []ContentBlock{
		{
			Binding:        bindings[0],
			Content:        string(make([]byte, 70000)),
			TimestampLabel: "2024-01-02T03:04:05Z",
			Message:        "m",
			Signature:      "s",
		},
		{},
	}

	msgs := []any{
		&DiscoveryRequest{MessageID: "1"},
		&DiscoveryResponse{
			MessageID:    "1",
			InResponseTo: "2",
			Services: []ServiceInstance{
				{
					ServiceType:     ServicePoll,
					ServiceVersion:  ServicesVersion,
					ProtocolBinding: ProtocolHTTPS,
					Address:         "https://taxii.example.com/poll",
					MessageBindings: []string{MessageBindingProton},
					ContentBindings: bindings,
					Available:       true,
					Message:         "m",
				},
				{},
			},
		},
		&StatusMessage{
			MessageID:    "1",
			InResponseTo: "2",
			Status:       StatusFailure,
			Message:      "m",
			Details:      []StatusDetail{{Name: "n", Value: "v"}},
		},
		&CollectionInformationRequest{MessageID: "1"},
		&CollectionInformationResponse{
			MessageID:    "1",
			InResponseTo: "2",
			Collections: []CollectionInformation{
				{
					CollectionName:       "feed-1",
					CollectionType:       CollectionDataSet,
					Description:          "d",
					Available:            true,
					Volume:               1<<63 + 5,
					ContentBindings:      bindings,
					PollingServices:      endpoints,
					SubscriptionServices: endpoints,
					ReceivingInboxes:     endpoints,
				},
			},
		},
		&ManageCollectionSubscriptionRequest{
			MessageID:      "1",
			CollectionName: "feed-1",
			Action:         ActionPause,
			SubscriptionID: "s1",
			Parameters:     SubscriptionParameters{ResponseType: ResponseCountOnly, ContentBindings: bindings},
			Push:           push,
		},
		&ManageCollectionSubscriptionResponse{
			MessageID:      "1",
			InResponseTo:   "2",
			CollectionName: "feed-1",
			Message:        "m",
			Subscriptions: []SubscriptionInstance{
				{
					SubscriptionID: "s1",
					Status:         SubscriptionPaused,
					Parameters:     SubscriptionParameters{ResponseType: ResponseFull, ContentBindings: bindings},
					Push:           push,
					PollInstances:  endpoints,
				},
			},
		},
		&InboxMessage{
			MessageID:                  "1",
			ResultID:                   "r1",
			DestinationCollectionNames: []string{"a", "b"},
			Message:                    "m",
			ContentBlocks:              blocks,
		},
		&PollRequest{
			MessageID:               "1",
			CollectionName:          "feed-1",
			ExclusiveBeginTimestamp: "2024-01-01T00:00:00Z",
			InclusiveEndTimestamp:   "2024-01-02T00:00:00Z",
			SubscriptionID:          "s1",
			Parameters: PollParameters{
				AllowAsynch:     true,
				ResponseType:    ResponseFull,
				ContentBindings: bindings,
				Delivery:        push,
			},
		},
		&PollResponse{
			MessageID:               "1",
			InResponseTo:            "2",
			CollectionName:          "feed-1",
			SubscriptionID:          "s1",
			ExclusiveBeginTimestamp: "2024-01-01T00:00:00Z",
			InclusiveEndTimestamp:   "2024-01-02T00:00:00Z",
			More:                    true,
			ResultID:                "r1",
			ResultPartNumber:        1 << 40,
			RecordCount:             7,
			PartialCount:            true,
			Message:                 "m",
			ContentBlocks:           blocks,
		},
		&PollFulfillmentRequest{
			MessageID:        "1",
			CollectionName:   "feed-1",
			ResultID:         "r1",
			ResultPartNumber: 1<<64 - 1,
		},
	}

	c := NewCodec()
	for _, msg := range msgs {
		buf, err := c.Encode(msg)
		requireT.NoError(err)

		decoded, err := c.Decode(buf)
		requireT.NoError(err)
		requireT.Equal(msg, decoded)
	}
}

func TestCodecRejectsTrailingBytes(t *testing.T) {
	requireT := require.New(t)

	c := NewCodec()
	buf, err := c.Encode(&PollFulfillmentRequest{
		MessageID:        "1",
		CollectionName:   "feed-1",
		ResultID:         "r1",
		ResultPartNumber: 2,
	})
	requireT.NoError(err)

	_, err = c.Decode(append(buf, 0xde, 0xad, 0xbe, 0xef))
	requireT.Error(err)

	_, err = c.Decode(buf[:len(buf)-1])
	requireT.Error(err)
}

func TestCodecRejectsUnknownMessage(t *testing.T) {
	requireT := require.New(t)

	c := NewCodec()
	_, err := c.Encode(&struct{}{})
	requireT.Error(err)

	_, err = c.Decode([]byte{0x7f})
	requireT.Error(err)

	_, err = c.Decode(nil)
	requireT.Error(err)
}
