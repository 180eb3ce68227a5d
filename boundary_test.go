package softbody

import "testing"

func TestContain(t *testing.T) {
	cfg := DefaultConfig()
	half := cfg.HalfExtents()

	tests := []struct {
		name     string
		pos, vel Vec2
		wantNext Vec2
		wantVel  Vec2
	}{
		{"inside", Vec2{0, 0}, Vec2{3, 4}, Vec2{0, 0}, Vec2{3, 4}},
		{"below floor", Vec2{10, -half.Y - 5}, Vec2{3, -4}, Vec2{10, -half.Y}, Vec2{3, 0}},
		{"past right wall", Vec2{half.X + 1, 0}, Vec2{3, 4}, Vec2{half.X, 0}, Vec2{0, 4}},
		{"past left wall", Vec2{-half.X - 1, 0}, Vec2{-3, 4}, Vec2{-half.X, 0}, Vec2{0, 4}},
		{"corner", Vec2{-half.X - 1, -half.Y - 1}, Vec2{-3, -4}, Vec2{-half.X, -half.Y}, Vec2{0, 0}},
		{"above ceiling", Vec2{0, half.Y + 500}, Vec2{0, 10}, Vec2{0, half.Y + 500}, Vec2{0, 10}},
		{"on floor", Vec2{0, -half.Y}, Vec2{0, -1}, Vec2{0, -half.Y}, Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Nodes: []Node{{Pos: tt.pos, Next: tt.pos, Vel: tt.vel}}}
			b.contain(cfg)
			n := b.Nodes[0]
			if n.Next != tt.wantNext {
				t.Errorf("Next = %v, want %v", n.Next, tt.wantNext)
			}
			if n.Vel != tt.wantVel {
				t.Errorf("Vel = %v, want %v", n.Vel, tt.wantVel)
			}
			if n.Pos != tt.pos {
				t.Errorf("Pos changed to %v", n.Pos)
			}
		})
	}
}

func TestContainWritesNextOnly(t *testing.T) {
	cfg := DefaultConfig()
	half := cfg.HalfExtents()
	// Next has already moved past the floor but Pos has not: no correction yet.
	b := &Body{Nodes: []Node{{Pos: Vec2{0, 0}, Next: Vec2{0, -half.Y - 10}, Vel: Vec2{0, -5}}}}
	b.contain(cfg)
	if b.Nodes[0].Next.Y != -half.Y-10 {
		t.Errorf("Next.Y = %v, correction must test committed positions", b.Nodes[0].Next.Y)
	}
}

func TestBodyRestsOnFloor(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)
	half := cfg.HalfExtents()
	b := w.Spawn(Square(cfg.DefaultRestingLength), Vec2{0, -half.Y + 200})

	for range 600 {
		w.Tick(1.0/60, Pointer{})
	}
	for i, n := range b.Nodes {
		if n.Pos.IsNaN() {
			t.Fatalf("node %d is NaN", i)
		}
		// A node may overshoot the floor by one tick of travel before the
		// correction commits.
		if n.Pos.Y < -half.Y-10 {
			t.Errorf("node %d at y=%v sank through the floor", i, n.Pos.Y)
		}
	}
	if b.Center.Y > -half.Y+cfg.DefaultRestingLength {
		t.Errorf("center y=%v, body should have fallen", b.Center.Y)
	}
}
