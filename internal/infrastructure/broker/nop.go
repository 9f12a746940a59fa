package broker

import "context"

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string) error { return nil }

func (NopPublisher) Close() error { return nil }
