package input

import (
	"sync"
	"testing"

	"lumen/geom"
)

func TestKeyDownUpIdempotent(t *testing.T) {
	s := NewState()
	s.KeyDown(KeyW)
	s.KeyDown(KeyW)
	if !s.Pressed(KeyW) {
		t.Fatalf("Pressed(KeyW) = false after KeyDown")
	}
	s.KeyUp(KeyW)
	if s.Pressed(KeyW) {
		t.Fatalf("Pressed(KeyW) = true after KeyUp")
	}
	s.KeyUp(KeyW)
	if s.Pressed(KeyW) {
		t.Fatalf("Pressed(KeyW) = true after second KeyUp")
	}
}

func TestMouseMoveDiscardedWithoutCapture(t *testing.T) {
	s := NewState()
	s.MouseMove(10, 10)
	if d := s.ConsumeMouseDelta(); !d.IsZero() {
		t.Fatalf("ConsumeMouseDelta() = %v, want zero while not captured", d)
	}
}

func TestMouseDeltaAccumulatesAndConsumesOnce(t *testing.T) {
	s := NewState()
	s.SetCaptured(true)
	s.MouseMove(10, -10)
	s.MouseMove(5, 5)

	if d := s.ConsumeMouseDelta(); d != geom.P2(15, -5) {
		t.Fatalf("ConsumeMouseDelta() = %v, want (15, -5)", d)
	}
	if d := s.ConsumeMouseDelta(); !d.IsZero() {
		t.Fatalf("second ConsumeMouseDelta() = %v, want zero", d)
	}
}

func TestReleaseDropsKeysAndMotion(t *testing.T) {
	s := NewState()
	s.Apply(Engage())
	s.Apply(KeyDown(KeyD))
	s.Apply(MouseMove(3, 4))
	s.Apply(Release())

	if s.Captured() {
		t.Fatalf("Captured() = true after Release")
	}
	if s.Pressed(KeyD) {
		t.Fatalf("Pressed(KeyD) = true after Release")
	}
	if d := s.ConsumeMouseDelta(); !d.IsZero() {
		t.Fatalf("ConsumeMouseDelta() = %v after Release, want zero", d)
	}
}

func TestIntent(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name    string
		keys    []KeyCode
		forward int
		strafe  int
	}{
		{"none", nil, 0, 0},
		{"forward", []KeyCode{KeyW}, 1, 0},
		{"back arrow", []KeyCode{KeyArrowDown}, -1, 0},
		{"right", []KeyCode{KeyD}, 0, 1},
		{"left", []KeyCode{KeyA}, 0, -1},
		{"diagonal", []KeyCode{KeyW, KeyD}, 1, 1},
		{"opposite cancels", []KeyCode{KeyW, KeyS}, 0, 0},
		{"key and arrow same axis", []KeyCode{KeyW, KeyArrowUp}, 1, 0},
	}
	for _, tt := range tests {
		s := NewState()
		for _, k := range tt.keys {
			s.KeyDown(k)
		}
		f, st := b.Intent(s)
		if f != tt.forward || st != tt.strafe {
			t.Fatalf("%s: Intent() = (%d, %d), want (%d, %d)", tt.name, f, st, tt.forward, tt.strafe)
		}
	}
}

func TestParseKey(t *testing.T) {
	for k := KeyW; k < keyCount; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKey(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKey("unknown"); ok {
		t.Fatalf("ParseKey(unknown) ok = true, want false")
	}
}

func TestQueueDrainOrderAndSnapshot(t *testing.T) {
	var q Queue
	q.Post(KeyDown(KeyW))
	q.Post(MouseMove(1, 2))

	var got []Event
	n := q.Drain(func(ev Event) {
		got = append(got, ev)
		// Posted during the drain: belongs to the next tick.
		if ev.Kind == EventKeyDown {
			q.Post(KeyUp(KeyW))
		}
	})
	if n != 2 || len(got) != 2 {
		t.Fatalf("Drain() = %d, want 2", n)
	}
	if got[0] != KeyDown(KeyW) || got[1] != MouseMove(1, 2) {
		t.Fatalf("Drain() order = %v", got)
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d after drain, want 1", q.Len())
	}
	got = got[:0]
	if n := q.Drain(func(ev Event) { got = append(got, ev) }); n != 1 || got[0] != KeyUp(KeyW) {
		t.Fatalf("second Drain() = %d %v; want keyup:w", n, got)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after second drain, want 0", q.Len())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	const (
		producers = 4
		perProd   = 2000
	)
	var q Queue
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProd; i++ {
				q.Post(MouseMove(1, 0))
			}
		}()
	}

	s := NewState()
	s.SetCaptured(true)
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		total += q.Drain(s.Apply)
		select {
		case <-done:
			total += q.Drain(s.Apply)
			if total != producers*perProd {
				t.Fatalf("drained %d events, want %d", total, producers*perProd)
			}
			if d := s.ConsumeMouseDelta(); d.X != producers*perProd {
				t.Fatalf("accumulated dx = %v, want %d", d.X, producers*perProd)
			}
			return
		default:
		}
	}
}
