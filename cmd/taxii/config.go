package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/taxii"
)

type serviceConfig struct {
	Kind    string `toml:"kind" yaml:"kind"`
	Address string `toml:"address" yaml:"address"`
}

// fileConfig is the content of config file.
type fileConfig struct {
	DiscoveryAddress string            `toml:"discovery_address" yaml:"discovery_address"`
	Timeout          string            `toml:"timeout" yaml:"timeout"`
	MaxMessageSize   uint64            `toml:"max_message_size" yaml:"max_message_size"`
	Headers          map[string]string `toml:"headers" yaml:"headers"`
	Services         []serviceConfig   `toml:"services" yaml:"services"`
}

// loadConfig reads config file. Format is chosen by the extension, TOML is the default.
func loadConfig(path string) (fileConfig, error) {
	var config fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return fileConfig{}, errors.WithStack(err)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return fileConfig{}, errors.Wrapf(err, "parsing YAML config %q failed", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return fileConfig{}, errors.Wrapf(err, "parsing TOML config %q failed", path)
		}
	}

	return config, nil
}

// clientConfig converts file config to client config.
func (c fileConfig) clientConfig() (taxii.ClientConfig, error) {
	var timeout time.Duration
	if c.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(c.Timeout)
		if err != nil {
			return taxii.ClientConfig{}, errors.Wrapf(err, "invalid timeout %q", c.Timeout)
		}
	}

	maxMessageSize := c.MaxMessageSize
	if maxMessageSize == 0 {
		maxMessageSize = taxii.DefaultMaxMessageSize
	}

	services := make([]taxii.ServiceDescriptor, 0, len(c.Services))
	for _, s := range c.Services {
		kind, err := parseServiceKind(s.Kind)
		if err != nil {
			return taxii.ClientConfig{}, err
		}
		services = append(services, taxii.ServiceDescriptor{
			Kind:    kind,
			Address: s.Address,
		})
	}

	return taxii.ClientConfig{
		DiscoveryAddress: c.DiscoveryAddress,
		Services:         services,
		Transport: taxii.NewSchemeTransport(
			taxii.NewHTTPTransport(taxii.HTTPTransportConfig{
				Timeout: timeout,
				Headers: c.Headers,
			}),
			taxii.NewStreamTransport(taxii.StreamTransportConfig{
				MaxMessageSize: maxMessageSize,
			}),
		),
	}, nil
}

func parseServiceKind(kind string) (taxii.ServiceKind, error) {
	switch k := taxii.ServiceKind(strings.ToUpper(kind)); k {
	case taxii.KindDiscovery, taxii.KindCollectionManagement, taxii.KindPoll, taxii.KindInbox:
		return k, nil
	default:
		return "", errors.Errorf("unknown service kind %q", kind)
	}
}
