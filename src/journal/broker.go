// Package journal records session activity (searches, saves, deletes,
// analyses) as an append-only event stream. Events flow through a Broker so
// a single seat can journal in process while shared deployments publish to
// Redpanda/Kafka. Journaling is advisory: failures are logged by callers and
// never block the workflow that produced the event.
package journal

import "context"

// Broker abstracts event publishing and consumption.
type Broker interface {
	// Publish sends a message to a topic with an optional key for
	// partitioning. The in-process broker ignores the key.
	Publish(ctx context.Context, topic string, key string, value []byte) error

	// Subscribe returns a channel for consuming messages from a topic.
	// groupID is used for consumer group coordination in Kafka and ignored
	// by the in-process broker.
	Subscribe(ctx context.Context, topic string, groupID string) (<-chan Message, error)

	// Close shuts down the broker gracefully.
	Close() error
}

// Message represents a consumed message from a broker.
type Message struct {
	Topic     string
	Key       string
	Value     []byte
	Offset    int64
	Partition int32
	Timestamp int64
}
