package engine

import "time"

// System is implemented by per-frame logic units. The scene runs its
// systems in ascending priority order once per tick, all on the frame
// loop goroutine
type System interface {
	Priority() int
	Update(s *Store, dt time.Duration)
}
