package taxii

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/taxii/wire"
)

var (
	// ErrInvalidAddress is returned when address is malformed or its scheme is not supported.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrServiceNotFound is returned when no service of requested kind is known even after discovery.
	ErrServiceNotFound = errors.New("service not found")

	// ErrNoAddressProvided is returned when there is neither explicit address nor discovery address.
	ErrNoAddressProvided = errors.New("no address provided")

	// ErrConflictingPollParameters is returned when subscription ID is combined with ad-hoc poll filters.
	ErrConflictingPollParameters = errors.New("subscription ID and poll filters are mutually exclusive")

	// ErrInvalidPartNumber is returned when result part number is zero. Parts are numbered from one.
	ErrInvalidPartNumber = errors.New("result part number must be positive")

	// ErrMissingSubscriptionID is returned when action requires subscription ID but none is given.
	ErrMissingSubscriptionID = errors.New("subscription ID is required")
)

// AmbiguousServicesError is returned when more than one service of the requested kind is known.
type AmbiguousServicesError struct {
	Kind      ServiceKind
	Addresses []string
}

func (e *AmbiguousServicesError) Error() string {
	return fmt.Sprintf("more than one %s service found: %s", e.Kind, strings.Join(e.Addresses, ", "))
}

// UnsuccessfulStatusError is returned when server responds with status other than success.
type UnsuccessfulStatusError struct {
	Status  wire.StatusType
	Message string
	Details map[string]string
}

func (e *UnsuccessfulStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unsuccessful status: %s", e.Status)
	}
	return fmt.Sprintf("unsuccessful status: %s: %s", e.Status, e.Message)
}

// ConversionError is returned when response can't be mapped to domain entity.
type ConversionError struct {
	Field  string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion of field %q failed: %s", e.Field, e.Reason)
}

func missingField(field string) error {
	return errors.WithStack(&ConversionError{Field: field, Reason: "value is missing"})
}

func invalidField(field, format string, args ...any) error {
	return errors.WithStack(&ConversionError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func unexpectedResponse(msg any) error {
	return invalidField("message", "unexpected response type %T", msg)
}
