package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	_, err := n.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher is used when no NATS URL is configured so the API can run
// standalone. Publishes are logged at debug level and dropped.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	logger.DebugContext(ctx, "Event bus disabled, dropping event", "subject", subject)
	return nil
}

func (NoopPublisher) Close() error { return nil }

// Event subjects
const (
	GuestCreated       = "guest.created"
	RsvpCreated        = "rsvp.created"
	RsvpUpdated        = "rsvp.updated"
	WeddingInfoUpdated = "wedding_info.updated"
	PhotoCreated       = "photo.created"
)

// Event payloads
type GuestCreatedEvent struct {
	GuestID   int64     `json:"guest_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type RsvpCreatedEvent struct {
	RsvpID         int64     `json:"rsvp_id"`
	GuestID        int64     `json:"guest_id"`
	WillAttend     bool      `json:"will_attend"`
	NumberOfGuests int       `json:"number_of_guests"`
	CreatedAt      time.Time `json:"created_at"`
}

type RsvpUpdatedEvent struct {
	RsvpID     int64     `json:"rsvp_id"`
	GuestID    int64     `json:"guest_id"`
	WillAttend bool      `json:"will_attend"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WeddingInfoUpdatedEvent struct {
	UpdatedAt time.Time `json:"updated_at"`
}

type PhotoCreatedEvent struct {
	PhotoID   int64     `json:"photo_id"`
	URL       string    `json:"url"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}
