package game

import "github.com/mcoot/kumkom/internal/model"

// Publisher receives match events after they are persisted
type Publisher interface {
	Publish(event model.Event)
}

// NopPublisher drops every event
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(model.Event) {}
