package ecs

import (
	"github.com/phanxgames/softbody"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventType is the Donburi event type for softbody contacts.
// Subscribe to this in your ECS systems to receive every resolved contact.
var ContactEventType = events.NewEventType[softbody.Contact]()

// BodyData is the component that links an entity to a simulation body.
type BodyData struct {
	Body *softbody.Body
}

// BodyComponent is the Donburi component type holding BodyData.
var BodyComponent = donburi.NewComponentType[BodyData]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a ContactSink backed by a Donburi world.
// Contacts are published to ContactEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) softbody.ContactSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitContact(c softbody.Contact) {
	ContactEventType.Publish(s.world, c)
}

// AddBody creates an entity carrying BodyComponent for b.
func AddBody(world donburi.World, b *softbody.Body) donburi.Entity {
	e := world.Create(BodyComponent)
	BodyComponent.Get(world.Entry(e)).Body = b
	return e
}

// FindBody returns the entity mirroring b, or false if none does.
func FindBody(world donburi.World, b *softbody.Body) (donburi.Entity, bool) {
	var found donburi.Entity
	ok := false
	BodyComponent.Each(world, func(entry *donburi.Entry) {
		if !ok && BodyComponent.Get(entry).Body == b {
			found = entry.Entity()
			ok = true
		}
	})
	return found, ok
}
