// Package alert provides the repeating audible/visual alarm raised when a
// price target is hit.
package alert

import (
	"io"
	"sync"
	"time"
)

// DefaultCadence is the delay between signal repetitions.
const DefaultCadence = 500 * time.Millisecond

// Signaler is a repeating alarm. Start launches it; Stop halts it and does
// not return until the alarm is fully quiet.
type Signaler interface {
	Start()
	Stop()
}

// Repeater drives an emit function on a fixed cadence in a background
// goroutine. Stop closes a cancellation channel the goroutine observes and
// joins it, so no emission can happen after Stop returns.
type Repeater struct {
	emit    func()
	cadence time.Duration

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewRepeater creates a Repeater around one emission of the alarm signal.
func NewRepeater(emit func(), cadence time.Duration) *Repeater {
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	return &Repeater{emit: emit, cadence: cadence}
}

// Start launches the alarm goroutine. Starting an already-running Repeater
// is a no-op.
func (r *Repeater) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		return
	}
	r.stop = make(chan struct{})
	r.wg.Add(1)
	go r.loop(r.stop)
}

func (r *Repeater) loop(stop chan struct{}) {
	defer r.wg.Done()
	for {
		r.emit()
		select {
		case <-stop:
			return
		case <-time.After(r.cadence):
		}
	}
}

// Stop cancels the alarm goroutine and waits for it to exit. Stopping an
// idle Repeater is a no-op.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop == nil {
		return
	}
	close(r.stop)
	r.wg.Wait()
	r.stop = nil
}

// Bell returns an emit function that writes the terminal bell character.
func Bell(w io.Writer) func() {
	return func() {
		io.WriteString(w, "\a")
	}
}

// Noop is a Signaler that does nothing, for environments without any alarm
// capability.
type Noop struct{}

func (Noop) Start() {}
func (Noop) Stop()  {}
