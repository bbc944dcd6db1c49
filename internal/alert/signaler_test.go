package alert

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestRepeater_EmitsUntilStopped(t *testing.T) {
	var emits atomic.Int64
	r := NewRepeater(func() { emits.Add(1) }, time.Millisecond)

	r.Start()
	waitFor(t, func() bool { return emits.Load() >= 3 })
	r.Stop()

	// Stop joins the goroutine: the count must be frozen afterwards.
	frozen := emits.Load()
	time.Sleep(20 * time.Millisecond)
	if got := emits.Load(); got != frozen {
		t.Errorf("signal emitted after Stop returned: %d -> %d", frozen, got)
	}
}

func TestRepeater_StopIdleIsNoop(t *testing.T) {
	r := NewRepeater(func() {}, time.Millisecond)
	r.Stop() // never started
	r.Start()
	r.Stop()
	r.Stop() // double stop
}

func TestRepeater_Restart(t *testing.T) {
	var emits atomic.Int64
	r := NewRepeater(func() { emits.Add(1) }, time.Millisecond)

	r.Start()
	waitFor(t, func() bool { return emits.Load() >= 1 })
	r.Stop()

	first := emits.Load()
	r.Start()
	waitFor(t, func() bool { return emits.Load() > first })
	r.Stop()
}

func TestRepeater_StartWhileRunningIsNoop(t *testing.T) {
	var emits atomic.Int64
	r := NewRepeater(func() { emits.Add(1) }, 50*time.Millisecond)

	r.Start()
	r.Start()
	waitFor(t, func() bool { return emits.Load() >= 1 })
	r.Stop()

	// A second goroutine would have produced two immediate emissions.
	if got := emits.Load(); got > 2 {
		t.Errorf("expected at most 2 emissions from a single loop, got %d", got)
	}
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	emit := Bell(&buf)
	emit()
	emit()
	if got := buf.String(); got != "\a\a" {
		t.Errorf("expected two bell characters, got %q", got)
	}
}

func TestNoop(t *testing.T) {
	var s Signaler = Noop{}
	s.Start()
	s.Stop()
}
