package taxii

import (
	"context"
	"net/url"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
)

type discoverFunc func(ctx context.Context, address string) ([]ServiceDescriptor, error)

// resolver selects the endpoint receiving a request.
// It owns the set of services known to the client.
type resolver struct {
	discoveryAddress string
	schemes          map[string]struct{}
	discover         discoverFunc

	mu       sync.RWMutex
	services []ServiceDescriptor
}

func newResolver(discoveryAddress string, schemes []string, discover discoverFunc) *resolver {
	r := &resolver{
		discoveryAddress: discoveryAddress,
		schemes:          make(map[string]struct{}, len(schemes)),
		discover:         discover,
	}
	for _, s := range schemes {
		r.schemes[s] = struct{}{}
	}
	return r
}

// Resolve returns the address of the service of the kind.
func (r *resolver) Resolve(ctx context.Context, kind ServiceKind, address string) (string, error) {
	if address != "" {
		if err := r.Validate(address); err != nil {
			return "", err
		}
		return address, nil
	}

	services := r.Services(kind)
	if len(services) == 0 {
		if r.discoveryAddress == "" {
			return "", errors.Wrapf(ErrNoAddressProvided, "no %s service known and no discovery address", kind)
		}

		logger.Get(ctx).Debug("No service known, running discovery",
			zap.String("kind", string(kind)),
			zap.String("discoveryAddress", r.discoveryAddress))

		if _, err := r.discover(ctx, r.discoveryAddress); err != nil {
			return "", err
		}
		services = r.Services(kind)
	}

	switch len(services) {
	case 0:
		return "", errors.Wrapf(ErrServiceNotFound, "kind: %s", kind)
	case 1:
		return services[0].Address, nil
	default:
		addresses := make([]string, 0, len(services))
		for _, s := range services {
			addresses = append(addresses, s.Address)
		}
		return "", errors.WithStack(&AmbiguousServicesError{
			Kind:      kind,
			Addresses: addresses,
		})
	}
}

// Validate checks that address is well-formed and its scheme is supported.
func (r *resolver) Validate(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return errors.Wrapf(ErrInvalidAddress, "address %q: %s", address, err)
	}
	if u.Host == "" {
		return errors.Wrapf(ErrInvalidAddress, "address %q has no host", address)
	}
	if _, exists := r.schemes[u.Scheme]; !exists {
		return errors.Wrapf(ErrInvalidAddress, "address %q has unsupported scheme %q", address, u.Scheme)
	}
	return nil
}

// Services returns known services of the kind. Empty kind returns all of them.
func (r *resolver) Services(kind ServiceKind) []ServiceDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var services []ServiceDescriptor
	for _, s := range r.services {
		if kind == "" || s.Kind == kind {
			services = append(services, s)
		}
	}
	return services
}

// Add merges services into the known set. Services with the same kind and address are stored once.
func (r *resolver) Add(services ...ServiceDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range services {
		known := false
		for _, s2 := range r.services {
			if s.Kind == s2.Kind && s.Address == s2.Address {
				known = true
				break
			}
		}
		if !known {
			r.services = append(r.services, s)
		}
	}
}
