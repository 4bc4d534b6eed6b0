package taxii

import (
	"time"

	"github.com/pkg/errors"
)

// ServiceKind is the role a service endpoint fulfils.
type ServiceKind string

// Service kinds.
const (
	KindDiscovery            ServiceKind = "DISCOVERY"
	KindCollectionManagement ServiceKind = "COLLECTION_MANAGEMENT"
	KindPoll                 ServiceKind = "POLL"
	KindInbox                ServiceKind = "INBOX"
)

// ServiceDescriptor describes a discovered service.
type ServiceDescriptor struct {
	Kind            ServiceKind
	Address         string
	ProtocolBinding string
	MessageBindings []string
	Version         string
	Available       bool
	ContentBindings []ContentBinding
	Message         string
}

// ContentBinding identifies the format of a content, optionally narrowed to subtypes.
type ContentBinding struct {
	ID       string
	Subtypes []string
}

// Binding creates content binding.
func Binding(id string, subtypes ...string) ContentBinding {
	return ContentBinding{ID: id, Subtypes: subtypes}
}

// Equal reports whether bindings have the same identifier.
func (b ContentBinding) Equal(b2 ContentBinding) bool {
	return b.ID == b2.ID
}

// ContentBlock is a piece of content received from the server.
type ContentBlock struct {
	Content   string
	Binding   ContentBinding
	Timestamp string
	Message   string
	Signature string
}

// Time parses timestamp label of the block.
func (b ContentBlock) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, b.Timestamp)
	return t, errors.WithStack(err)
}

// CollectionType defines how content is organised in a collection.
type CollectionType string

// Collection types.
const (
	CollectionDataFeed CollectionType = "DATA_FEED"
	CollectionDataSet  CollectionType = "DATA_SET"
)

// ServiceEndpoint is a service related to a collection or a subscription.
type ServiceEndpoint struct {
	Address         string
	ProtocolBinding string
	MessageBindings []string
	ContentBindings []ContentBinding
}

// Collection is the snapshot of collection reported by the server.
type Collection struct {
	Name                 string
	Type                 CollectionType
	Description          string
	Available            bool
	Volume               uint64
	ContentBindings      []ContentBinding
	PollingServices      []ServiceEndpoint
	SubscriptionServices []ServiceEndpoint
	ReceivingInboxes     []ServiceEndpoint
}

// SubscriptionStatus is the state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionActive       SubscriptionStatus = "ACTIVE"
	SubscriptionPaused       SubscriptionStatus = "PAUSED"
	SubscriptionUnsubscribed SubscriptionStatus = "UNSUBSCRIBED"
)

// InboxService is the inbox server delivers content to.
type InboxService struct {
	Address         string
	ProtocolBinding string
	MessageBindings []string
	ContentBindings []ContentBinding
}

// PushParameters defines where content of a subscription is delivered.
type PushParameters struct {
	Address        string
	Protocol       string
	MessageBinding string
}

// Subscription is the state of a single subscription.
type Subscription struct {
	ID              string
	Status          SubscriptionStatus
	CountOnly       bool
	ContentBindings []ContentBinding
	Push            *PushParameters
	PollServices    []ServiceEndpoint
}

// SubscriptionResponse is returned by collection management service for subscription requests.
type SubscriptionResponse struct {
	Collection    string
	Message       string
	Subscriptions []Subscription
}

// PollResultWindow identifies the part of a poll result set.
type PollResultWindow struct {
	ResultID   string
	PartNumber uint64
	More       bool
}

// RecordCount is the number of records matching poll request.
type RecordCount struct {
	Value   uint64
	Partial bool
}

// Acknowledgement is the success status returned by the server.
type Acknowledgement struct {
	MessageID    string
	InResponseTo string
	Message      string
}
