package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/taxii"
)

func (a *app) discoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Lists services reported by discovery service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.client.Discover(cmd.Context(), a.address)
			if err != nil {
				return err
			}
			return a.print(toServicesOutput(services))
		},
	}
}

func (a *app) collectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "Lists collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collections, err := a.client.Collections(cmd.Context(), a.address)
			if err != nil {
				return err
			}
			return a.print(toCollectionsOutput(collections))
		},
	}
}

func (a *app) pollCommand() *cobra.Command {
	var (
		begin, end     string
		countOnly      bool
		subscriptionID string
		bindings       []string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "poll <collection>",
		Short: "Polls content of the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := taxii.PollParams{
				CountOnly:       countOnly,
				SubscriptionID:  subscriptionID,
				ContentBindings: toBindings(bindings),
				Address:         a.address,
			}

			var err error
			if params.Begin, err = parseTime(begin); err != nil {
				return err
			}
			if params.End, err = parseTime(end); err != nil {
				return err
			}

			cursor, err := a.client.Poll(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			var blocks []taxii.ContentBlock
			for block, err := range cursor.All(cmd.Context()) {
				if err != nil {
					return err
				}
				blocks = append(blocks, block)
				if limit > 0 && len(blocks) >= limit {
					break
				}
			}

			return a.print(toPollOutput(cursor, blocks))
		},
	}

	cmd.Flags().StringVar(&begin, "begin", "", "Exclusive begin of the time range, RFC 3339")
	cmd.Flags().StringVar(&end, "end", "", "Inclusive end of the time range, RFC 3339")
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "Request only the number of matching records")
	cmd.Flags().StringVar(&subscriptionID, "subscription-id", "", "Poll content of the subscription")
	cmd.Flags().StringSliceVar(&bindings, "binding", nil, "Accepted content binding, may be repeated")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of blocks to fetch, 0 means no limit")

	return cmd
}

func (a *app) fulfilmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fulfilment <collection> <result-id> <part>",
		Short: "Fetches single part of the poll result set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid part number %q", args[2])
			}

			cursor, err := a.client.Fulfilment(cmd.Context(), args[0], args[1], part, a.address)
			if err != nil {
				return err
			}

			blocks, err := cursor.Collect(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(toPollOutput(cursor, blocks))
		},
	}
}

func (a *app) pushCommand() *cobra.Command {
	var (
		file         string
		binding      string
		destinations []string
	)

	cmd := &cobra.Command{
		Use:   "push [content]",
		Short: "Pushes content to inbox service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(file, args)
			if err != nil {
				return err
			}

			ack, err := a.client.Push(cmd.Context(), taxii.PushRequest{
				Content:     content,
				Binding:     taxii.Binding(binding),
				Collections: destinations,
				Address:     a.address,
			})
			if err != nil {
				return err
			}
			return a.print(acknowledgementOutput{
				MessageID:    ack.MessageID,
				InResponseTo: ack.InResponseTo,
				Message:      ack.Message,
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "File to read content from, - reads standard input")
	cmd.Flags().StringVar(&binding, "binding", "", "Content binding of the content")
	cmd.Flags().StringSliceVar(&destinations, "dest", nil, "Destination collection, may be repeated")
	_ = cmd.MarkFlagRequired("binding")

	return cmd
}

func (a *app) subscriptionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manages subscriptions",
	}

	var subscriptionID string
	statusCmd := &cobra.Command{
		Use:   "status <collection>",
		Short: "Shows subscriptions of the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.SubscriptionStatus(cmd.Context(), args[0], subscriptionID, a.address)
			if err != nil {
				return err
			}
			return a.print(toSubscriptionOutput(resp))
		},
	}
	statusCmd.Flags().StringVar(&subscriptionID, "id", "", "Subscription ID, all subscriptions are shown if empty")

	var (
		countOnly bool
		bindings  []string
		inbox     string
	)
	subscribeCmd := &cobra.Command{
		Use:   "subscribe <collection>",
		Short: "Subscribes to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := taxii.SubscriptionRequest{
				Collection:      args[0],
				CountOnly:       countOnly,
				ContentBindings: toBindings(bindings),
				Address:         a.address,
			}
			if inbox != "" {
				req.Inbox = &taxii.InboxService{Address: inbox}
			}

			resp, err := a.client.Subscribe(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(toSubscriptionOutput(resp))
		},
	}
	subscribeCmd.Flags().BoolVar(&countOnly, "count-only", false, "Deliver only the number of matching records")
	subscribeCmd.Flags().StringSliceVar(&bindings, "binding", nil, "Accepted content binding, may be repeated")
	subscribeCmd.Flags().StringVar(&inbox, "inbox", "", "Address of the inbox service receiving content")

	cmd.AddCommand(
		statusCmd,
		subscribeCmd,
		a.subscriptionActionCommand("pause", "Pauses subscription", taxii.ActionPause),
		a.subscriptionActionCommand("resume", "Resumes subscription", taxii.ActionResume),
		a.subscriptionActionCommand("unsubscribe", "Cancels subscription", taxii.ActionUnsubscribe),
	)
	return cmd
}

func (a *app) subscriptionActionCommand(use, short string, action taxii.SubscriptionAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <collection> <subscription-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.ManageSubscription(cmd.Context(), taxii.SubscriptionRequest{
				Collection:     args[0],
				Action:         action,
				SubscriptionID: args[1],
				Address:        a.address,
			})
			if err != nil {
				return err
			}
			return a.print(toSubscriptionOutput(resp))
		},
	}
}

func toBindings(ids []string) []taxii.ContentBinding {
	if len(ids) == 0 {
		return nil
	}
	bindings := make([]taxii.ContentBinding, 0, len(ids))
	for _, id := range ids {
		bindings = append(bindings, taxii.Binding(id))
	}
	return bindings
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid time %q", value)
	}
	return t, nil
}

func readContent(file string, args []string) (string, error) {
	switch {
	case file == "-":
		content, err := io.ReadAll(os.Stdin)
		return string(content), errors.WithStack(err)
	case file != "":
		content, err := os.ReadFile(file)
		return string(content), errors.WithStack(err)
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("content is required")
	}
}
