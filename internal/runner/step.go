package runner

import "time"

// Outcome reports what happened during one call to Advance.
type Outcome struct {
	// Ended is true only on the frame where the player hit an obstacle.
	Ended bool

	// Score is the score at the moment of the collision. The same frame still
	// adds its point to State.Score, so State.Score ends one higher.
	Score int
}

// Jump starts a jump if the player is grounded.
// It reports whether the jump was accepted; mid-air jumps are ignored.
func (s *State) Jump() bool {
	if !s.Player.Grounded || s.GameOver {
		return false
	}
	s.Player.Grounded = false
	s.Player.VelocityY = s.cfg.Physics.JumpImpulse
	return true
}

// Advance moves the simulation forward by one frame at run time now.
// Once the run is over it does nothing.
func (s *State) Advance(now time.Duration) Outcome {
	if s.GameOver {
		return Outcome{}
	}
	s.Frames++

	// Order matters: collision must see post-move and post-spawn positions.
	s.applyPhysics()
	s.moveObstacles()
	s.pruneObstacles()
	s.maybeSpawn(now)

	var out Outcome
	if s.collides() {
		s.GameOver = true
		out = Outcome{Ended: true, Score: s.Score}
	}

	s.Score++
	return out
}

// applyPhysics integrates gravity and clamps the player to the floor.
func (s *State) applyPhysics() {
	p := &s.Player
	if !p.Grounded {
		p.VelocityY += s.cfg.Physics.Gravity
	}
	p.Y += p.VelocityY

	if floor := s.floor(); p.Y >= floor {
		p.Y = floor
		p.VelocityY = 0
		p.Grounded = true
	}
}

func (s *State) moveObstacles() {
	for i := range s.Obstacles {
		s.Obstacles[i].X -= s.cfg.Obstacles.Speed
	}
}

// pruneObstacles drops obstacles whose right edge has left the field.
func (s *State) pruneObstacles() {
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.X+o.Width > 0 {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}

// maybeSpawn appends an obstacle at the right edge once the interval elapsed.
// now and LastSpawn share the run clock, which starts at 0, so the first
// obstacle appears one full interval into the run rather than on frame 1.
func (s *State) maybeSpawn(now time.Duration) {
	if now-s.LastSpawn <= s.cfg.SpawnInterval() {
		return
	}
	s.Obstacles = append(s.Obstacles, Obstacle{
		X:      s.cfg.Field.Width,
		Y:      s.cfg.GroundLevel() - s.cfg.Obstacles.Height,
		Width:  s.cfg.Obstacles.Width,
		Height: s.cfg.Obstacles.Height,
	})
	s.LastSpawn = now
}

// collides reports whether any obstacle overlaps the player.
func (s *State) collides() bool {
	pb := s.Player.Box()
	for _, o := range s.Obstacles {
		if pb.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}
