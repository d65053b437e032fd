// Package notify publishes build completion events to NATS so downstream
// consumers (search indexers, cache warmers) can react to fresh content.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/logfields"
)

const flushTimeout = 5 * time.Second

// Publisher sends build reports over a NATS connection.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to the configured NATS server. The caller owns the
// publisher and must Close it.
func NewPublisher(cfg config.NotificationsConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("notifications are disabled")
	}
	conn, err := nats.Connect(cfg.URL, nats.Name("docsite"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	slog.Info("Notification publisher connected",
		logfields.URL(cfg.URL),
		logfields.Subject(cfg.Subject))
	return &Publisher{conn: conn, subject: cfg.Subject}, nil
}

// PublishReport publishes the serialized build report and flushes so the
// event is on the wire before a short-lived build process exits.
func (p *Publisher) PublishReport(data []byte) error {
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish build notification: %w", err)
	}
	if err := p.conn.FlushTimeout(flushTimeout); err != nil {
		return fmt.Errorf("flush build notification: %w", err)
	}
	slog.Debug("Build notification published", logfields.Subject(p.subject))
	return nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
