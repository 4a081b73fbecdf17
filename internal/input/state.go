package input

import "sync"

// Transition is one raw key event.
type Transition struct {
	Key  Key
	Down bool
}

// InputState queues raw key events for one game session in the order they
// arrive. Sources push Press/Release calls from any goroutine; the Poller
// consumes them on its tick.
type InputState struct {
	mu    sync.Mutex
	queue []Transition
}

// NewInputState creates an empty key state.
func NewInputState() *InputState {
	return &InputState{}
}

// Press records a key going down.
func (s *InputState) Press(k Key) {
	s.push(Transition{Key: k, Down: true})
}

// Release records a key going up.
func (s *InputState) Release(k Key) {
	s.push(Transition{Key: k})
}

// Queued returns the number of events not yet consumed.
func (s *InputState) Queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *InputState) push(t Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, t)
}

// next pops the oldest event.
func (s *InputState) next() (Transition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Transition{}, false
	}
	t := s.queue[0]
	s.queue[0] = Transition{}
	s.queue = s.queue[1:]
	return t, true
}
