package messaging

import (
	"fmt"
)

// Bus is a subject based publish/subscribe transport. NatsServer is the
// production implementation.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

var _ Bus = &NatsServer{}

// ActorSubject returns the subject an actor's output is published on.
func ActorSubject(actorId string) string {
	return fmt.Sprintf("actor-%s", actorId)
}

// ActorBus routes output to individual actors over a Bus.
type ActorBus struct {
	bus Bus
}

// NewActorBus wraps bus for per-actor message delivery.
func NewActorBus(bus Bus) *ActorBus {
	return &ActorBus{bus: bus}
}

// PublishToActor sends data to the actor with the given id.
func (p *ActorBus) PublishToActor(actorId string, data []byte) error {
	if actorId == "" {
		return fmt.Errorf("actor id is required")
	}
	return p.bus.Publish(ActorSubject(actorId), data)
}

// SubscribeActor calls handler with each message sent to the actor.
func (p *ActorBus) SubscribeActor(actorId string, handler func(data []byte)) (func(), error) {
	if actorId == "" {
		return nil, fmt.Errorf("actor id is required")
	}
	return p.bus.Subscribe(ActorSubject(actorId), handler)
}
