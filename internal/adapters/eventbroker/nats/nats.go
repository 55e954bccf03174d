package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// handleTimeout bounds the handling of one bucket notification
const handleTimeout = 30 * time.Second

// Consumer is a JetStream consumer of bucket notifications
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	iter   jetstream.MessagesContext
	wg     sync.WaitGroup
}

// NewNATSConsumer creates a new consumer
func NewNATSConsumer(cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConsumerName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	return &Consumer{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// ensureStream creates the notification stream when MinIO has not published to it yet
func (n *Consumer) ensureStream(ctx context.Context) error {
	_, err := n.js.Stream(ctx, n.config.StreamName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, jetstream.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", n.config.StreamName, err)
	}

	_, err = n.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     n.config.StreamName,
		Subjects: []string{n.config.Subject},
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", n.config.StreamName, err)
	}
	n.logger.Info("NATS stream created", "stream", n.config.StreamName, "subject", n.config.Subject)
	return nil
}

// Subscribe subscribes to the stream and hands every message to handler.
// A handler error naks the message so it is redelivered, up to MaxDeliver times.
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	if err := n.ensureStream(ctx); err != nil {
		return err
	}

	consumerCfg := jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       handleTimeout + 5*time.Second,
		DeliverGroup:  n.config.DeliverGroup,
		MaxDeliver:    5,
		BackOff:       []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
	}

	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, consumerCfg)
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", n.config.ConsumerName, err)
	}

	iter, err := cons.Messages()
	if err != nil {
		return fmt.Errorf("failed to open message iterator: %w", err)
	}
	n.iter = iter

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.logger.Info("NATS subscription started", "stream", n.config.StreamName, "consumer", n.config.ConsumerName)
		for {
			msg, err := iter.Next()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, jetstream.ErrMsgIteratorClosed) {
					n.logger.Info("NATS subscription stopped")
					return
				}
				n.logger.Error("failed to receive message", "error", err)
				return
			}
			n.process(ctx, handler, msg)
		}
	}()
	return nil
}

func (n *Consumer) process(ctx context.Context, handler port.MessageService, msg jetstream.Msg) {
	handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	if err := handler.HandleMessage(handleCtx, msg.Data()); err != nil {
		n.logger.Warn("failed to handle message", "subject", msg.Subject(), "error", err)
		if errNak := msg.Nak(); errNak != nil {
			n.logger.Error("failed to nak message", "error", errNak)
		}
		return
	}
	if err := msg.Ack(); err != nil {
		n.logger.Error("failed to ack message", "error", err)
	}
}

// Close stops the iterator, waits for the message in flight and closes the connection
func (n *Consumer) Close() error {
	if n.iter != nil {
		n.iter.Stop()
	}

	n.wg.Wait()

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
