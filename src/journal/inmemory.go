// Package journal provides the in-process broker implementation.
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// subscriberBuffer bounds each subscriber channel; a subscriber that stops
// draining loses newer events rather than blocking publishers.
const subscriberBuffer = 100

// InMemoryBroker is a channel-based Broker for single-process sessions.
type InMemoryBroker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Message
	offsets     map[string]int64
	closed      bool
}

// NewInMemoryBroker creates a new InMemoryBroker instance.
func NewInMemoryBroker() *InMemoryBroker {
	return &InMemoryBroker{
		subscribers: make(map[string][]chan Message),
		offsets:     make(map[string]int64),
	}
}

// Publish delivers the message to every subscriber of the topic.
func (b *InMemoryBroker) Publish(ctx context.Context, topic string, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("broker is closed")
	}

	offset := b.offsets[topic]
	b.offsets[topic] = offset + 1

	msg := Message{
		Topic:     topic,
		Key:       key,
		Value:     value,
		Offset:    offset,
		Timestamp: time.Now().UnixMilli(),
	}

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
			// Subscriber is not draining; drop rather than block.
		}
	}
	return nil
}

// Subscribe registers a consumer channel for the topic. The groupID is
// ignored in process.
func (b *InMemoryBroker) Subscribe(ctx context.Context, topic string, groupID string) (<-chan Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("broker is closed")
	}

	ch := make(chan Message, subscriberBuffer)
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch, nil
}

// Close closes every subscriber channel.
func (b *InMemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for _, subs := range b.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	b.subscribers = nil
	return nil
}
