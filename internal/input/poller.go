package input

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/internal/logging"
)

// ErrNoKeys is returned by Await when called with an empty key set.
var ErrNoKeys = errors.New("input: await called with no keys")

// waiter is one outstanding Await call.
type waiter struct {
	keys   []Key
	onTick func()
	done   chan Key
}

func (w *waiter) watches(k Key) bool {
	for _, wk := range w.keys {
		if wk == k {
			return true
		}
	}
	return false
}

// Poller turns queued key events into edge-triggered waits. Tick is the
// poll cycle; it is expected to be called from a single goroutine (the
// game's update loop) at a fixed rate.
type Poller struct {
	state *InputState

	mu      sync.Mutex
	waiters []*waiter
	held    map[Key]bool // keys whose press has been consumed and not yet released
}

// NewPoller creates a poller consuming events from the given key state.
func NewPoller(state *InputState) *Poller {
	return &Poller{state: state, held: make(map[Key]bool)}
}

// Await blocks until one of keys goes from released to held and returns it.
// A key whose press was already consumed must be released and pressed
// again. onTick, if non-nil, runs on every poll cycle of this wait on the
// ticking goroutine, including the cycle that resolves it.
//
// Waits are registered in call order. When several waiters watch the same
// key the earliest one receives the transition and the others never see it.
func (p *Poller) Await(ctx context.Context, keys []Key, onTick func()) (Key, error) {
	if len(keys) == 0 {
		return "", ErrNoKeys
	}
	w := &waiter{
		keys:   keys,
		onTick: onTick,
		done:   make(chan Key, 1),
	}

	p.mu.Lock()
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()

	select {
	case k := <-w.done:
		logging.Debug("key transition", zap.String("key", string(k)))
		return k, nil
	case <-ctx.Done():
		p.remove(w)
		return "", ctx.Err()
	}
}

// Pending returns the number of outstanding waits.
func (p *Poller) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters)
}

// Tick runs one poll cycle. Queued events are consumed in arrival order
// until one press resolves a waiter; later events stay queued for the next
// cycle. Presses nobody watches are dropped. With no outstanding waits the
// queue is left alone so keys typed ahead reach the next Await. Tick
// callbacks run before the resolved waiter is woken.
func (p *Poller) Tick() {
	p.mu.Lock()
	var ticks []func()
	for _, w := range p.waiters {
		if w.onTick != nil {
			ticks = append(ticks, w.onTick)
		}
	}
	var (
		fired *waiter
		key   Key
	)
	for len(p.waiters) > 0 && fired == nil {
		t, ok := p.state.next()
		if !ok {
			break
		}
		if !t.Down {
			delete(p.held, t.Key)
			continue
		}
		if p.held[t.Key] {
			continue
		}
		p.held[t.Key] = true
		for i, w := range p.waiters {
			if w.watches(t.Key) {
				fired, key = w, t.Key
				p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
				break
			}
		}
	}
	p.mu.Unlock()

	for _, fn := range ticks {
		fn()
	}
	if fired != nil {
		fired.done <- key
	}
}

func (p *Poller) remove(w *waiter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, other := range p.waiters {
		if other == w {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			break
		}
	}
}
