package ecs

import (
	"github.com/phanxgames/punkui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for widget interaction
// events. Subscribe to it in your ECS systems to receive pointer and click
// events by widget path.
var InteractionEventType = events.NewEventType[punkui.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) punkui.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event punkui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
