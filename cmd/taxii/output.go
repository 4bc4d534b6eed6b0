package main

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/taxii"
)

type serviceOutput struct {
	Kind            string   `yaml:"kind"`
	Address         string   `yaml:"address"`
	ProtocolBinding string   `yaml:"protocol_binding,omitempty"`
	MessageBindings []string `yaml:"message_bindings,omitempty"`
	Version         string   `yaml:"version,omitempty"`
	Available       bool     `yaml:"available"`
	Message         string   `yaml:"message,omitempty"`
}

type collectionOutput struct {
	Name            string   `yaml:"name"`
	Type            string   `yaml:"type"`
	Description     string   `yaml:"description,omitempty"`
	Available       bool     `yaml:"available"`
	Volume          uint64   `yaml:"volume,omitempty"`
	ContentBindings []string `yaml:"content_bindings,omitempty"`
	PollingServices []string `yaml:"polling_services,omitempty"`
}

type blockOutput struct {
	Binding   string `yaml:"binding"`
	Timestamp string `yaml:"timestamp,omitempty"`
	Content   string `yaml:"content"`
}

type pollOutput struct {
	ResultID    string        `yaml:"result_id,omitempty"`
	PartNumber  uint64        `yaml:"part_number"`
	More        bool          `yaml:"more"`
	RecordCount *uint64       `yaml:"record_count,omitempty"`
	Partial     bool          `yaml:"partial_count,omitempty"`
	Blocks      []blockOutput `yaml:"blocks"`
}

type subscriptionOutput struct {
	ID              string   `yaml:"id"`
	Status          string   `yaml:"status"`
	CountOnly       bool     `yaml:"count_only"`
	ContentBindings []string `yaml:"content_bindings,omitempty"`
	Inbox           string   `yaml:"inbox,omitempty"`
}

type subscriptionResponseOutput struct {
	Collection    string               `yaml:"collection"`
	Message       string               `yaml:"message,omitempty"`
	Subscriptions []subscriptionOutput `yaml:"subscriptions"`
}

type acknowledgementOutput struct {
	MessageID    string `yaml:"message_id"`
	InResponseTo string `yaml:"in_response_to"`
	Message      string `yaml:"message,omitempty"`
}

func (a *app) print(v any) error {
	e := yaml.NewEncoder(a.out)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(e.Close())
}

func bindingIDs(bindings []taxii.ContentBinding) []string {
	ids := make([]string, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.ID)
	}
	return ids
}

func toServicesOutput(services []taxii.ServiceDescriptor) []serviceOutput {
	result := make([]serviceOutput, 0, len(services))
	for _, s := range services {
		result = append(result, serviceOutput{
			Kind:            string(s.Kind),
			Address:         s.Address,
			ProtocolBinding: s.ProtocolBinding,
			MessageBindings: s.MessageBindings,
			Version:         s.Version,
			Available:       s.Available,
			Message:         s.Message,
		})
	}
	return result
}

func toCollectionsOutput(collections []taxii.Collection) []collectionOutput {
	result := make([]collectionOutput, 0, len(collections))
	for _, c := range collections {
		polling := make([]string, 0, len(c.PollingServices))
		for _, p := range c.PollingServices {
			polling = append(polling, p.Address)
		}
		result = append(result, collectionOutput{
			Name:            c.Name,
			Type:            string(c.Type),
			Description:     c.Description,
			Available:       c.Available,
			Volume:          c.Volume,
			ContentBindings: bindingIDs(c.ContentBindings),
			PollingServices: polling,
		})
	}
	return result
}

func toPollOutput(cursor *taxii.Cursor, blocks []taxii.ContentBlock) pollOutput {
	window := cursor.Window()
	result := pollOutput{
		ResultID:   window.ResultID,
		PartNumber: window.PartNumber,
		More:       window.More,
		Blocks:     make([]blockOutput, 0, len(blocks)),
	}
	if rc := cursor.RecordCount(); rc != nil {
		result.RecordCount = &rc.Value
		result.Partial = rc.Partial
	}
	for _, b := range blocks {
		result.Blocks = append(result.Blocks, blockOutput{
			Binding:   b.Binding.ID,
			Timestamp: b.Timestamp,
			Content:   b.Content,
		})
	}
	return result
}

func toSubscriptionOutput(resp taxii.SubscriptionResponse) subscriptionResponseOutput {
	result := subscriptionResponseOutput{
		Collection:    resp.Collection,
		Message:       resp.Message,
		Subscriptions: make([]subscriptionOutput, 0, len(resp.Subscriptions)),
	}
	for _, s := range resp.Subscriptions {
		so := subscriptionOutput{
			ID:              s.ID,
			Status:          string(s.Status),
			CountOnly:       s.CountOnly,
			ContentBindings: bindingIDs(s.ContentBindings),
		}
		if s.Push != nil {
			so.Inbox = s.Push.Address
		}
		result.Subscriptions = append(result.Subscriptions, so)
	}
	return result
}
