package app

import "sync"

// Dispatcher queues callbacks posted from worker goroutines until the game
// loop drains them.
type Dispatcher struct {
	mu    sync.Mutex
	queue []func()
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Post enqueues fn. It is safe to call from any goroutine.
func (d *Dispatcher) Post(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
}

// Drain runs every queued callback, including ones posted while draining,
// and returns how many ran.
func (d *Dispatcher) Drain() int {
	n := 0
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		d.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
			n++
		}
	}
}

func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}
