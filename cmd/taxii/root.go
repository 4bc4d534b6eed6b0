package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/outofforest/taxii"
)

type app struct {
	out io.Writer

	configFile       string
	discoveryAddress string
	address          string

	client *taxii.Client
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:           "taxii",
		Short:         "TAXII 1.1 client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to the TOML or YAML config file")
	cmd.PersistentFlags().StringVar(&a.discoveryAddress, "discovery", "",
		"Address of the discovery service, overrides the config file")
	cmd.PersistentFlags().StringVar(&a.address, "address", "",
		"Address of the service receiving the request, resolved from known services if empty")

	cmd.AddCommand(
		a.discoverCommand(),
		a.collectionsCommand(),
		a.pollCommand(),
		a.fulfilmentCommand(),
		a.pushCommand(),
		a.subscriptionCommand(),
	)

	return cmd
}

func (a *app) init() error {
	var config fileConfig
	if a.configFile != "" {
		var err error
		config, err = loadConfig(a.configFile)
		if err != nil {
			return err
		}
	}
	if a.discoveryAddress != "" {
		config.DiscoveryAddress = a.discoveryAddress
	}

	clientConfig, err := config.clientConfig()
	if err != nil {
		return err
	}

	a.client, err = taxii.NewClient(clientConfig)
	return err
}
