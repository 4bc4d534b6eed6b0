package main

import (
	"github.com/outofforest/proton"
	"github.com/outofforest/taxii/wire"
)

//go:generate go run .
func main() {
	proton.Generate("../types.proton.go",
		proton.Message[wire.DiscoveryRequest](),
		proton.Message[wire.DiscoveryResponse](),
		proton.Message[wire.StatusMessage](),
		proton.Message[wire.CollectionInformationRequest](),
		proton.Message[wire.CollectionInformationResponse](),
		proton.Message[wire.ManageCollectionSubscriptionRequest](),
		proton.Message[wire.ManageCollectionSubscriptionResponse](),
		proton.Message[wire.InboxMessage](),
		proton.Message[wire.PollRequest](),
		proton.Message[wire.PollResponse](),
		proton.Message[wire.PollFulfillmentRequest](),
	)
}
