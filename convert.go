package taxii

import (
	"fmt"

	"github.com/outofforest/taxii/wire"
)

func convertServices(services []wire.ServiceInstance) ([]ServiceDescriptor, error) {
	result := make([]ServiceDescriptor, 0, len(services))
	for i, s := range services {
		field := fmt.Sprintf("services[%d]", i)

		kind, err := convertServiceKind(field+".service_type", s.ServiceType)
		if err != nil {
			return nil, err
		}
		if s.Address == "" {
			return nil, missingField(field + ".address")
		}

		bindings, err := convertContentBindings(field+".content_bindings", s.ContentBindings)
		if err != nil {
			return nil, err
		}

		result = append(result, ServiceDescriptor{
			Kind:            kind,
			Address:         s.Address,
			ProtocolBinding: s.ProtocolBinding,
			MessageBindings: cloneStrings(s.MessageBindings),
			Version:         s.ServiceVersion,
			Available:       s.Available,
			ContentBindings: bindings,
			Message:         s.Message,
		})
	}
	return result, nil
}

func convertServiceKind(field string, t wire.ServiceType) (ServiceKind, error) {
	switch t {
	case wire.ServiceDiscovery:
		return KindDiscovery, nil
	case wire.ServiceCollectionManagement:
		return KindCollectionManagement, nil
	case wire.ServicePoll:
		return KindPoll, nil
	case wire.ServiceInbox:
		return KindInbox, nil
	case "":
		return "", missingField(field)
	default:
		return "", invalidField(field, "unknown service type %q", t)
	}
}

func convertCollections(collections []wire.CollectionInformation) ([]Collection, error) {
	result := make([]Collection, 0, len(collections))
	for i, c := range collections {
		field := fmt.Sprintf("collections[%d]", i)

		if c.CollectionName == "" {
			return nil, missingField(field + ".collection_name")
		}

		var collectionType CollectionType
		switch c.CollectionType {
		case wire.CollectionDataFeed:
			collectionType = CollectionDataFeed
		case wire.CollectionDataSet:
			collectionType = CollectionDataSet
		case "":
			return nil, missingField(field + ".collection_type")
		default:
			return nil, invalidField(field+".collection_type", "unknown collection type %q", c.CollectionType)
		}

		bindings, err := convertContentBindings(field+".content_bindings", c.ContentBindings)
		if err != nil {
			return nil, err
		}
		pollingServices, err := convertEndpoints(field+".polling_services", c.PollingServices)
		if err != nil {
			return nil, err
		}
		subscriptionServices, err := convertEndpoints(field+".subscription_services", c.SubscriptionServices)
		if err != nil {
			return nil, err
		}
		receivingInboxes, err := convertEndpoints(field+".receiving_inboxes", c.ReceivingInboxes)
		if err != nil {
			return nil, err
		}

		result = append(result, Collection{
			Name:                 c.CollectionName,
			Type:                 collectionType,
			Description:          c.Description,
			Available:            c.Available,
			Volume:               c.Volume,
			ContentBindings:      bindings,
			PollingServices:      pollingServices,
			SubscriptionServices: subscriptionServices,
			ReceivingInboxes:     receivingInboxes,
		})
	}
	return result, nil
}

func convertSubscriptionResponse(resp *wire.ManageCollectionSubscriptionResponse) (SubscriptionResponse, error) {
	if resp.CollectionName == "" {
		return SubscriptionResponse{}, missingField("collection_name")
	}

	subscriptions := make([]Subscription, 0, len(resp.Subscriptions))
	for i, s := range resp.Subscriptions {
		field := fmt.Sprintf("subscriptions[%d]", i)

		if s.SubscriptionID == "" {
			return SubscriptionResponse{}, missingField(field + ".subscription_id")
		}

		var status SubscriptionStatus
		switch s.Status {
		case wire.SubscriptionActive:
			status = SubscriptionActive
		case wire.SubscriptionPaused:
			status = SubscriptionPaused
		case wire.SubscriptionUnsubscribed:
			status = SubscriptionUnsubscribed
		case "":
			return SubscriptionResponse{}, missingField(field + ".status")
		default:
			return SubscriptionResponse{}, invalidField(field+".status", "unknown subscription status %q", s.Status)
		}

		bindings, err := convertContentBindings(field+".content_bindings", s.Parameters.ContentBindings)
		if err != nil {
			return SubscriptionResponse{}, err
		}
		pollServices, err := convertEndpoints(field+".poll_instances", s.PollInstances)
		if err != nil {
			return SubscriptionResponse{}, err
		}

		var push *PushParameters
		if s.Push.InboxAddress != "" {
			push = &PushParameters{
				Address:        s.Push.InboxAddress,
				Protocol:       s.Push.InboxProtocol,
				MessageBinding: s.Push.DeliveryMessageBinding,
			}
		}

		subscriptions = append(subscriptions, Subscription{
			ID:              s.SubscriptionID,
			Status:          status,
			CountOnly:       s.Parameters.ResponseType == wire.ResponseCountOnly,
			ContentBindings: bindings,
			Push:            push,
			PollServices:    pollServices,
		})
	}

	return SubscriptionResponse{
		Collection:    resp.CollectionName,
		Message:       resp.Message,
		Subscriptions: subscriptions,
	}, nil
}

func convertContentBlocks(blocks []wire.ContentBlock) ([]ContentBlock, error) {
	result := make([]ContentBlock, 0, len(blocks))
	for i, b := range blocks {
		block, err := convertContentBlock(fmt.Sprintf("content_blocks[%d]", i), b)
		if err != nil {
			return nil, err
		}
		result = append(result, block)
	}
	return result, nil
}

func convertContentBlock(field string, b wire.ContentBlock) (ContentBlock, error) {
	binding, err := convertContentBinding(field+".content_binding", b.Binding)
	if err != nil {
		return ContentBlock{}, err
	}
	return ContentBlock{
		Content:   b.Content,
		Binding:   binding,
		Timestamp: b.TimestampLabel,
		Message:   b.Message,
		Signature: b.Signature,
	}, nil
}

type pollPart struct {
	Blocks      []ContentBlock
	Window      PollResultWindow
	RecordCount *RecordCount
}

// convertPollResponse converts poll response. Part number missing in the response is taken from defaultPart.
// Record count is always set for count-only responses, zero included.
func convertPollResponse(resp *wire.PollResponse, defaultPart uint64, countOnly bool) (pollPart, error) {
	if resp.More && resp.ResultID == "" {
		return pollPart{}, missingField("result_id")
	}

	blocks, err := convertContentBlocks(resp.ContentBlocks)
	if err != nil {
		return pollPart{}, err
	}

	part := pollPart{
		Blocks: blocks,
		Window: PollResultWindow{
			ResultID:   resp.ResultID,
			PartNumber: resp.ResultPartNumber,
			More:       resp.More,
		},
	}
	if part.Window.PartNumber == 0 {
		part.Window.PartNumber = defaultPart
	}
	if countOnly || resp.RecordCount > 0 || resp.PartialCount {
		part.RecordCount = &RecordCount{
			Value:   resp.RecordCount,
			Partial: resp.PartialCount,
		}
	}
	return part, nil
}

func convertEndpoints(field string, endpoints []wire.ServiceEndpoint) ([]ServiceEndpoint, error) {
	if len(endpoints) == 0 {
		return nil, nil
	}

	result := make([]ServiceEndpoint, 0, len(endpoints))
	for i, e := range endpoints {
		if e.Address == "" {
			return nil, missingField(fmt.Sprintf("%s[%d].address", field, i))
		}
		bindings, err := convertContentBindings(fmt.Sprintf("%s[%d].content_bindings", field, i), e.ContentBindings)
		if err != nil {
			return nil, err
		}
		result = append(result, ServiceEndpoint{
			Address:         e.Address,
			ProtocolBinding: e.ProtocolBinding,
			MessageBindings: cloneStrings(e.MessageBindings),
			ContentBindings: bindings,
		})
	}
	return result, nil
}

func convertContentBindings(field string, bindings []wire.ContentBinding) ([]ContentBinding, error) {
	if len(bindings) == 0 {
		return nil, nil
	}

	result := make([]ContentBinding, 0, len(bindings))
	for i, b := range bindings {
		binding, err := convertContentBinding(fmt.Sprintf("%s[%d]", field, i), b)
		if err != nil {
			return nil, err
		}
		result = append(result, binding)
	}
	return result, nil
}

func convertContentBinding(field string, b wire.ContentBinding) (ContentBinding, error) {
	if b.BindingID == "" {
		return ContentBinding{}, missingField(field + ".binding_id")
	}
	return ContentBinding{
		ID:       b.BindingID,
		Subtypes: cloneStrings(b.SubtypeIDs),
	}, nil
}

func packContentBindings(bindings []ContentBinding) []wire.ContentBinding {
	if len(bindings) == 0 {
		return nil
	}
	result := make([]wire.ContentBinding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, packContentBinding(b))
	}
	return result
}

func packContentBinding(b ContentBinding) wire.ContentBinding {
	return wire.ContentBinding{
		BindingID:  b.ID,
		SubtypeIDs: cloneStrings(b.Subtypes),
	}
}

func packInbox(inbox *InboxService) wire.PushParameters {
	if inbox == nil {
		return wire.PushParameters{}
	}
	params := wire.PushParameters{
		InboxProtocol: inbox.ProtocolBinding,
		InboxAddress:  inbox.Address,
	}
	if len(inbox.MessageBindings) > 0 {
		params.DeliveryMessageBinding = inbox.MessageBindings[0]
	}
	return params
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
