package events

import "context"

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Handler receives the raw event bytes exactly as they went over the wire.
type Handler func(channel string, payload []byte)

type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channels []string, handler Handler) error
}

type Broker interface {
	Publisher
	Subscriber
}
