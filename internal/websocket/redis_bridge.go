package websocket

import (
	"context"

	"relay-chat/pkg/events"
)

// RedisBridge feeds events arriving on the broker into the local hub, so
// fan-out reaches subscribers on every server instance.
type RedisBridge struct {
	subscriber events.Subscriber
	hub        *Hub
}

func NewRedisBridge(subscriber events.Subscriber, hub *Hub) *RedisBridge {
	return &RedisBridge{subscriber: subscriber, hub: hub}
}

func (b *RedisBridge) Run(ctx context.Context, channels []string) error {
	return b.subscriber.Subscribe(ctx, channels, func(channel string, payload []byte) {
		b.hub.Broadcast(payload)
	})
}
