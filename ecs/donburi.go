// Package ecs provides ECS adapters for ripple.
package ecs

import (
	"github.com/phanxgames/ripple"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for ripple emission triggers.
// Subscribe to this in your ECS systems to react to zone movement beyond the
// displacement threshold (spawn entities, play audio, score points).
var TriggerEventType = events.NewEventType[ripple.Trigger]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EmissionStore backed by a Donburi world.
// Triggers are published to TriggerEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) ripple.EmissionStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitTrigger(t ripple.Trigger) {
	TriggerEventType.Publish(s.world, t)
}
