// Package signal provides typed lifecycle events with one-shot or repeating
// delivery.
package signal

// Mode selects how often a signal may fire.
type Mode int

const (
	// Repeating signals deliver every Fire to the current handlers.
	Repeating Mode = iota
	// OneShot signals deliver the first Fire only; afterwards handlers are
	// dropped and further Fire calls are ignored.
	OneShot
)

// Handle identifies a subscription for Off.
type Handle uint64

type subscription[T any] struct {
	handle Handle
	fn     func(T)
}

// Signal is not safe for concurrent use. Handlers run on the goroutine that
// calls Fire.
type Signal[T any] struct {
	name     string
	mode     Mode
	next     Handle
	handlers []subscription[T]
	fired    bool
}

func New[T any](name string, mode Mode) *Signal[T] {
	return &Signal[T]{name: name, mode: mode}
}

func (s *Signal[T]) Name() string {
	return s.name
}

func (s *Signal[T]) Mode() Mode {
	return s.mode
}

// On subscribes fn. Subscribing to a one-shot signal that already fired is a
// no-op and returns the zero Handle.
func (s *Signal[T]) On(fn func(T)) Handle {
	if fn == nil || (s.mode == OneShot && s.fired) {
		return 0
	}
	s.next++
	s.handlers = append(s.handlers, subscription[T]{handle: s.next, fn: fn})
	return s.next
}

// Off removes one subscription.
func (s *Signal[T]) Off(h Handle) bool {
	for i, sub := range s.handlers {
		if sub.handle == h {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// OffAll removes every subscription.
func (s *Signal[T]) OffAll() {
	s.handlers = nil
}

// Fire delivers v to a snapshot of the current handlers and reports whether
// anything was delivered.
func (s *Signal[T]) Fire(v T) bool {
	if s.mode == OneShot {
		if s.fired {
			return false
		}
		s.fired = true
	}
	subs := s.handlers
	if s.mode == OneShot {
		s.handlers = nil
	} else {
		subs = append([]subscription[T](nil), subs...)
	}
	for _, sub := range subs {
		if s.mode == Repeating && !s.subscribed(sub.handle) {
			continue
		}
		sub.fn(v)
	}
	return len(subs) > 0
}

func (s *Signal[T]) subscribed(h Handle) bool {
	for _, sub := range s.handlers {
		if sub.handle == h {
			return true
		}
	}
	return false
}

// Fired reports whether a one-shot signal has fired.
func (s *Signal[T]) Fired() bool {
	return s.fired
}

func (s *Signal[T]) Len() int {
	return len(s.handlers)
}
