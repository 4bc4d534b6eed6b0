package wire

type (
	// ServiceType defines the role of a TAXII service.
	ServiceType string

	// StatusType is the status reported by a status message.
	StatusType string

	// Action is the action requested from collection management service.
	Action string

	// ResponseType selects between full content and counts only.
	ResponseType string

	// SubscriptionStatus is the state of a subscription.
	SubscriptionStatus string

	// CollectionType defines how content is organised in a collection.
	CollectionType string
)

// ContentBinding identifies the format of a content.
type ContentBinding struct {
	BindingID  string
	SubtypeIDs []string
}

// ServiceInstance describes a service returned by discovery service.
type ServiceInstance struct {
	ServiceType     ServiceType
	ServiceVersion  string
	ProtocolBinding string
	Address         string
	MessageBindings []string
	ContentBindings []ContentBinding
	Available       bool
	Message         string
}

// ServiceEndpoint describes a service related to a collection or a subscription.
type ServiceEndpoint struct {
	ProtocolBinding string
	Address         string
	MessageBindings []string
	ContentBindings []ContentBinding
}

// PushParameters defines an inbox the server delivers content to.
type PushParameters struct {
	InboxProtocol          string
	InboxAddress           string
	DeliveryMessageBinding string
}

// StatusDetail is a single name-value detail of the status message.
type StatusDetail struct {
	Name  string
	Value string
}

// CollectionInformation describes a collection.
type CollectionInformation struct {
	CollectionName       string
	CollectionType       CollectionType
	Description          string
	Available            bool
	Volume               uint64
	ContentBindings      []ContentBinding
	PollingServices      []ServiceEndpoint
	SubscriptionServices []ServiceEndpoint
	ReceivingInboxes     []ServiceEndpoint
}

// SubscriptionParameters defines what is delivered in the context of a subscription.
type SubscriptionParameters struct {
	ResponseType    ResponseType
	ContentBindings []ContentBinding
}

// SubscriptionInstance describes a subscription.
type SubscriptionInstance struct {
	SubscriptionID string
	Status         SubscriptionStatus
	Parameters     SubscriptionParameters
	Push           PushParameters
	PollInstances  []ServiceEndpoint
}

// ContentBlock carries a piece of content.
type ContentBlock struct {
	Binding        ContentBinding
	Content        string
	TimestampLabel string
	Message        string
	Signature      string
}

// PollParameters defines filters of the ad-hoc poll request.
type PollParameters struct {
	AllowAsynch     bool
	ResponseType    ResponseType
	ContentBindings []ContentBinding
	Delivery        PushParameters
}

// DiscoveryRequest asks for the list of services.
type DiscoveryRequest struct {
	MessageID string
}

// DiscoveryResponse lists services.
type DiscoveryResponse struct {
	MessageID    string
	InResponseTo string
	Services     []ServiceInstance
}

// StatusMessage reports the status of request processing.
type StatusMessage struct {
	MessageID    string
	InResponseTo string
	Status       StatusType
	Message      string
	Details      []StatusDetail
}

// CollectionInformationRequest asks for the list of collections.
type CollectionInformationRequest struct {
	MessageID string
}

// CollectionInformationResponse lists collections.
type CollectionInformationResponse struct {
	MessageID    string
	InResponseTo string
	Collections  []CollectionInformation
}

// ManageCollectionSubscriptionRequest manages subscriptions of a collection.
type ManageCollectionSubscriptionRequest struct {
	MessageID      string
	CollectionName string
	Action         Action
	SubscriptionID string
	Parameters     SubscriptionParameters
	Push           PushParameters
}

// ManageCollectionSubscriptionResponse reports subscriptions of a collection.
type ManageCollectionSubscriptionResponse struct {
	MessageID      string
	InResponseTo   string
	CollectionName string
	Message        string
	Subscriptions  []SubscriptionInstance
}

// InboxMessage pushes content blocks to inbox service.
type InboxMessage struct {
	MessageID                  string
	ResultID                   string
	DestinationCollectionNames []string
	Message                    string
	ContentBlocks              []ContentBlock
}

// PollRequest starts polling of a collection.
type PollRequest struct {
	MessageID               string
	CollectionName          string
	ExclusiveBeginTimestamp string
	InclusiveEndTimestamp   string
	SubscriptionID          string
	Parameters              PollParameters
}

// PollResponse carries one part of the poll result set.
type PollResponse struct {
	MessageID               string
	InResponseTo            string
	CollectionName          string
	SubscriptionID          string
	ExclusiveBeginTimestamp string
	InclusiveEndTimestamp   string
	More                    bool
	ResultID                string
	ResultPartNumber        uint64
	RecordCount             uint64
	PartialCount            bool
	Message                 string
	ContentBlocks           []ContentBlock
}

// PollFulfillmentRequest asks for the next part of the poll result set.
type PollFulfillmentRequest struct {
	MessageID        string
	CollectionName   string
	ResultID         string
	ResultPartNumber uint64
}
