// Package softbody simulates deformable 2D bodies built from point masses
// and springs.
//
// A [Body] is a polygon of [Node] values joined by [Connection] springs.
// Edge connections trace the perimeter and take part in collision; the rest
// brace the interior. Every body also carries a rigid skeleton, its creation
// pose rotated and translated to the best fit of the current nodes, that
// pulls the nodes back toward their original shape.
//
// # Quick start
//
//	world := softbody.NewWorld(softbody.DefaultConfig())
//	world.Spawn(softbody.Square(100), softbody.Vec2{})
//	world.Spawn(softbody.Square(100), softbody.Vec2{X: 90, Y: 150})
//
//	for {
//		world.Tick(1.0/60, softbody.Pointer{})
//	}
//
// The view subpackage renders a world with [Ebitengine] and feeds the mouse
// in as a [Pointer]. The ecs subpackage forwards contacts into a Donburi
// world.
//
// # Coordinates
//
// The world is y-up and centered on the origin. Gravity is subtracted from
// every velocity, so the stock Gravity of (0, 98) pulls toward negative Y.
// The world rectangle has a floor at -Height/2 and walls at ±Width/2 but no
// ceiling.
//
// # Stepping
//
// [World.Tick] runs Config.SubIterations passes. Each pass steps every body
// (springs, skeleton pull, gravity and motion, commit, boundary clamp, pose
// refresh) and then collides every pair of bodies in both directions.
// Nodes are double-buffered: every phase reads Node.Pos and writes Node.Next
// or Node.Vel, and Next is committed into Pos once per pass.
//
// # Collision
//
// A node of one body that falls inside another body's perimeter is pushed
// back across the nearest eligible edge. The correction is shared between the
// node and the edge's endpoints so the pair's net displacement is zero.
// Resolved contacts are reported through [World.Contacts] and any
// [ContactSink] set with [World.SetContactSink].
//
// # Scenarios
//
// [LoadScenario] parses a JSON script of spawns and pointer input for
// regression runs and scripted demos:
//
//	{"steps": [
//		{"action": "spawn", "shape": "square", "y": 200},
//		{"action": "drag", "fromX": 50, "fromY": 250, "toX": 200, "toY": 100, "frames": 30},
//		{"action": "wait", "frames": 120}
//	]}
//
// # Debug mode
//
// [World.SetDebugMode] logs per-tick timing and contact counts to stderr and
// warns about bodies too large for the quadratic narrow phase.
//
// [Ebitengine]: https://ebitengine.org
package softbody
