package signal

import "testing"

func TestRepeatingSignal(t *testing.T) {
	s := New[float64]("progress", Repeating)
	var got []float64
	h := s.On(func(v float64) { got = append(got, v) })

	s.Fire(0.25)
	s.Fire(0.5)
	if !s.Off(h) {
		t.Fatal("expected Off to find handler")
	}
	s.Fire(1)

	if len(got) != 2 || got[0] != 0.25 || got[1] != 0.5 {
		t.Fatalf("unexpected deliveries %v", got)
	}
}

func TestOneShotSignal(t *testing.T) {
	s := New[struct{}]("start", OneShot)
	calls := 0
	s.On(func(struct{}) { calls++ })

	if !s.Fire(struct{}{}) {
		t.Fatal("first fire should deliver")
	}
	if s.Fire(struct{}{}) {
		t.Fatal("second fire should be ignored")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if h := s.On(func(struct{}) { calls++ }); h != 0 {
		t.Fatal("subscribing after fire should be refused")
	}
	if s.Len() != 0 {
		t.Fatalf("expected handlers dropped, got %d", s.Len())
	}
}

func TestOffDuringFire(t *testing.T) {
	s := New[int]("tick", Repeating)
	var second Handle
	calls := 0
	s.On(func(int) {
		calls++
		s.Off(second)
	})
	second = s.On(func(int) { calls++ })

	s.Fire(1)
	if calls != 1 {
		t.Fatalf("handler removed mid-fire should not run, calls=%d", calls)
	}
}

func TestOneShotUnsubscribeBeforeFire(t *testing.T) {
	s := New[struct{}]("end", OneShot)
	called := false
	h := s.On(func(struct{}) { called = true })
	s.Off(h)
	s.Fire(struct{}{})
	if called {
		t.Fatal("unsubscribed handler ran")
	}
	if !s.Fired() {
		t.Fatal("signal should be marked fired")
	}
}
