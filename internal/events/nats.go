package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"waste-management-api-server/config"
)

type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewNATSPublisher(cfg config.NATSConfig, logger *zap.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.Timeout(10 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.URL, err)
	}
	logger.Info("Connected to NATS", zap.String("url", conn.ConnectedUrl()))

	return &NATSPublisher{conn: conn, logger: logger.Named("nats")}, nil
}

// Publish sends payload as JSON on subject.
func (p *NATSPublisher) Publish(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	p.logger.Debug("Event published", zap.String("subject", subject))
	return nil
}

// Close flushes buffered messages and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", zap.Error(err))
		p.conn.Close()
	}
}
