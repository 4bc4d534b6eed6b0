package wire

// Service types.
const (
	ServiceDiscovery            ServiceType = "DISCOVERY"
	ServiceCollectionManagement ServiceType = "COLLECTION_MANAGEMENT"
	ServicePoll                 ServiceType = "POLL"
	ServiceInbox                ServiceType = "INBOX"
)

// Status types.
const (
	StatusSuccess                    StatusType = "SUCCESS"
	StatusAsynchronousPollError      StatusType = "ASYNCHRONOUS_POLL_ERROR"
	StatusBadMessage                 StatusType = "BAD_MESSAGE"
	StatusDenied                     StatusType = "DENIED"
	StatusDestinationCollectionError StatusType = "DESTINATION_COLLECTION_ERROR"
	StatusFailure                    StatusType = "FAILURE"
	StatusInvalidResponsePart        StatusType = "INVALID_RESPONSE_PART"
	StatusNetworkError               StatusType = "NETWORK_ERROR"
	StatusNotFound                   StatusType = "NOT_FOUND"
	StatusPending                    StatusType = "PENDING"
	StatusPollingUnsupported         StatusType = "POLLING_UNSUPPORTED"
	StatusRetry                      StatusType = "RETRY"
	StatusUnauthorized               StatusType = "UNAUTHORIZED"
	StatusUnsupportedMessage         StatusType = "UNSUPPORTED_MESSAGE"
	StatusUnsupportedContent         StatusType = "UNSUPPORTED_CONTENT"
	StatusUnsupportedProtocol        StatusType = "UNSUPPORTED_PROTOCOL"
	StatusUnsupportedQuery           StatusType = "UNSUPPORTED_QUERY"
)

// Subscription management actions.
const (
	ActionSubscribe   Action = "SUBSCRIBE"
	ActionUnsubscribe Action = "UNSUBSCRIBE"
	ActionPause       Action = "PAUSE"
	ActionResume      Action = "RESUME"
	ActionStatus      Action = "STATUS"
)

// Response types.
const (
	ResponseFull      ResponseType = "FULL"
	ResponseCountOnly ResponseType = "COUNT_ONLY"
)

// Subscription statuses.
const (
	SubscriptionActive       SubscriptionStatus = "ACTIVE"
	SubscriptionPaused       SubscriptionStatus = "PAUSED"
	SubscriptionUnsubscribed SubscriptionStatus = "UNSUBSCRIBED"
)

// Collection types.
const (
	CollectionDataFeed CollectionType = "DATA_FEED"
	CollectionDataSet  CollectionType = "DATA_SET"
)

// Bindings.
const (
	ServicesVersion      = "urn:taxii.mitre.org:services:1.1"
	ProtocolHTTP         = "urn:taxii.mitre.org:protocol:http:1.0"
	ProtocolHTTPS        = "urn:taxii.mitre.org:protocol:https:1.0"
	ProtocolStream       = "urn:outofforest:taxii:protocol:resonance:1.0"
	MessageBindingProton = "urn:outofforest:taxii:message:proton:1.1"
)
