package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to a payload type so publishers and subscribers
// agree on the encoding.
type Event[T any] struct {
	topic string
}

// NewEvent creates a typed event for topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{topic: topic}
}

// Topic returns the topic name.
func (e Event[T]) Topic() string {
	return e.topic
}

// Publish JSON-encodes payload and publishes it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, subject string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", e.topic, err)
	}
	return pub.Publish(ctx, Message{Topic: e.topic, Subject: subject, Payload: data})
}

// Decode unmarshals msg's payload into T.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal %s payload: %w", e.topic, err)
	}
	return payload, nil
}
