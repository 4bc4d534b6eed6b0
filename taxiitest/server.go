package taxiitest

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/resonance"
	"github.com/outofforest/taxii/wire"
)

// ServerConfig defines server configuration.
type ServerConfig struct {
	// StreamListener accepts resonance connections, skipped if nil.
	StreamListener net.Listener

	// HTTPListener accepts HTTP connections, skipped if nil.
	HTTPListener net.Listener

	MaxMessageSize uint64
}

// RunServer serves requests until context is canceled.
func RunServer(ctx context.Context, config ServerConfig, handler Handler) error {
	if config.StreamListener == nil && config.HTTPListener == nil {
		return errors.New("no listeners specified")
	}

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		if config.StreamListener != nil {
			connConfig := resonance.Config{
				MaxMessageSize: config.MaxMessageSize,
			}

			spawn("stream", parallel.Fail, func(ctx context.Context) error {
				return resonance.RunServer(ctx, config.StreamListener, connConfig,
					func(ctx context.Context, c *resonance.Connection) error {
						return runServerConn(ctx, c, handler)
					})
			})
		}

		if config.HTTPListener != nil {
			server := &http.Server{
				Handler:           NewHTTPHandler(handler),
				ReadHeaderTimeout: 5 * time.Second,
				BaseContext: func(net.Listener) context.Context {
					return ctx
				},
			}

			spawn("http", parallel.Fail, func(ctx context.Context) error {
				err := server.Serve(config.HTTPListener)
				if ctx.Err() != nil {
					return errors.WithStack(ctx.Err())
				}
				return errors.WithStack(err)
			})
			spawn("httpShutdown", parallel.Fail, func(ctx context.Context) error {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Get(ctx).Error("HTTP server shutdown failed", zap.Error(err))
				}
				return errors.WithStack(ctx.Err())
			})
		}

		return nil
	})
}

func runServerConn(ctx context.Context, c *resonance.Connection, handler Handler) error {
	defer c.Close()

	codec := wire.NewCodec()
	for {
		payload, err := c.ReceiveBytes()
		if err != nil {
			return err
		}

		resp, err := serve(ctx, codec, handler, payload)
		if err != nil {
			return err
		}

		if err := c.SendBytes(resp); err != nil {
			return err
		}
	}
}
