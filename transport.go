package taxii

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/outofforest/resonance"
	"github.com/outofforest/taxii/wire"
)

// Transport delivers encoded request to the service and returns encoded response.
type Transport interface {
	// Send sends payload to the address and waits for the response.
	Send(ctx context.Context, address string, payload []byte) ([]byte, error)

	// Schemes returns URI schemes supported by the transport.
	Schemes() []string
}

// Codec encodes requests and decodes responses.
type Codec interface {
	Encode(msg any) ([]byte, error)
	Decode(buf []byte) (any, error)
}

// HTTP headers sent with every request.
const (
	HeaderContentType      = "X-TAXII-Content-Type"
	HeaderProtocol         = "X-TAXII-Protocol"
	HeaderServices         = "X-TAXII-Services"
	HeaderAccept           = "X-TAXII-Accept"
	contentTypeProtonTAXII = "application/vnd.outofforest.taxii+proton"
)

// HTTPTransportConfig is the config of HTTP transport.
type HTTPTransportConfig struct {
	Client  *http.Client
	Timeout time.Duration
	Headers map[string]string

	// MaxResponseSize limits the size of the response body. DefaultMaxMessageSize is used if zero.
	MaxResponseSize uint64
}

// HTTPTransport sends messages in bodies of HTTP POST requests.
type HTTPTransport struct {
	config HTTPTransportConfig
	client *http.Client
}

// NewHTTPTransport creates HTTP transport.
func NewHTTPTransport(config HTTPTransportConfig) *HTTPTransport {
	client := config.Client
	if client == nil {
		client = &http.Client{
			Timeout: config.Timeout,
		}
	}
	if config.MaxResponseSize == 0 {
		config.MaxResponseSize = DefaultMaxMessageSize
	}
	return &HTTPTransport{
		config: config,
		client: client,
	}
}

// Schemes returns URI schemes supported by the transport.
func (t *HTTPTransport) Schemes() []string {
	return []string{"http", "https"}
}

// Send sends payload to the address and waits for the response.
func (t *HTTPTransport) Send(ctx context.Context, address string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, address, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	protocol := wire.ProtocolHTTP
	if req.URL.Scheme == "https" {
		protocol = wire.ProtocolHTTPS
	}

	req.Header.Set("Content-Type", contentTypeProtonTAXII)
	req.Header.Set("Accept", contentTypeProtonTAXII)
	req.Header.Set(HeaderContentType, wire.MessageBindingProton)
	req.Header.Set(HeaderAccept, wire.MessageBindingProton)
	req.Header.Set(HeaderProtocol, protocol)
	req.Header.Set(HeaderServices, wire.ServicesVersion)
	for k, v := range t.config.Headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(t.config.MaxResponseSize)+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if uint64(len(body)) > t.config.MaxResponseSize {
		return nil, errors.Errorf("response from %s exceeds maximum size %d", address, t.config.MaxResponseSize)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected HTTP status %d from %s", resp.StatusCode, address)
	}

	return body, nil
}

// StreamTransportConfig is the config of stream transport.
type StreamTransportConfig struct {
	MaxMessageSize uint64
}

// StreamTransport exchanges messages over resonance connection. Address has form tcp://host:port.
// Every request uses its own connection.
type StreamTransport struct {
	config resonance.Config
}

// NewStreamTransport creates stream transport.
func NewStreamTransport(config StreamTransportConfig) *StreamTransport {
	return &StreamTransport{
		config: resonance.Config{
			MaxMessageSize: config.MaxMessageSize,
		},
	}
}

// Schemes returns URI schemes supported by the transport.
func (t *StreamTransport) Schemes() []string {
	return []string{"tcp"}
}

// Send sends payload to the address and waits for the response.
func (t *StreamTransport) Send(ctx context.Context, address string, payload []byte) ([]byte, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var response []byte
	err = resonance.RunClient(ctx, u.Host, t.config, func(ctx context.Context, c *resonance.Connection) error {
		defer c.Close()

		if err := c.SendBytes(payload); err != nil {
			return err
		}

		resp, err := c.ReceiveBytes()
		if err != nil {
			return err
		}

		response = append([]byte(nil), resp...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, errors.Errorf("no response received from %s", address)
	}
	return response, nil
}

// NewSchemeTransport returns transport routing requests to the transports by URI scheme.
// The first transport declaring a scheme wins.
func NewSchemeTransport(transports ...Transport) Transport {
	st := schemeTransport{
		transports: map[string]Transport{},
	}
	for _, t := range transports {
		for _, s := range t.Schemes() {
			if _, exists := st.transports[s]; exists {
				continue
			}
			st.transports[s] = t
			st.schemes = append(st.schemes, s)
		}
	}
	return st
}

type schemeTransport struct {
	transports map[string]Transport
	schemes    []string
}

func (t schemeTransport) Schemes() []string {
	return t.schemes
}

func (t schemeTransport) Send(ctx context.Context, address string, payload []byte) ([]byte, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	tr, exists := t.transports[u.Scheme]
	if !exists {
		return nil, errors.Wrapf(ErrInvalidAddress, "no transport for scheme %q", u.Scheme)
	}
	return tr.Send(ctx, address, payload)
}
