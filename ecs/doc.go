// Package ecs provides ECS adapters for softbody's contact events.
//
// The primary adapter is [NewDonburiSink], which forwards every contact a
// [softbody.World] resolves into a [Donburi] world as a typed event.
// Subscribe to [ContactEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sim.SetContactSink(sink)
//
// [AddBody] mirrors a simulation body as a Donburi entity so systems can
// query bodies alongside the rest of a game's components.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
