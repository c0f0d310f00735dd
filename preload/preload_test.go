package preload

import (
	"errors"
	"fmt"
	"testing"

	"github.com/milk9111/vrroom/assets"
)

// pending records load callbacks so tests can complete them in any order.
type pending struct {
	calls []func(error, *assets.Asset)
	urls  []string
}

func (p *pending) LoadFromURL(url string, kind assets.Kind, cb func(error, *assets.Asset)) {
	p.urls = append(p.urls, url)
	p.calls = append(p.calls, cb)
}

func requests(n int) []assets.Request {
	out := make([]assets.Request, n)
	for i := range out {
		out[i] = assets.Request{URL: fmt.Sprintf("materials/%d.json", i), Kind: assets.KindMaterial}
	}
	return out
}

func TestRunCompletesInAnyOrder(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		order []int
	}{
		{"single", 1, []int{0}},
		{"in order", 4, []int{0, 1, 2, 3}},
		{"reversed", 4, []int{3, 2, 1, 0}},
		{"shuffled", 11, []int{5, 0, 10, 3, 7, 1, 9, 2, 8, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &pending{}
			var progress []float64
			doneCalls := 0
			Run(requests(tt.n), p, func(v float64) { progress = append(progress, v) }, func(Result) { doneCalls++ })

			if len(p.calls) != tt.n {
				t.Fatalf("issued %d loads, want %d before any completion", len(p.calls), tt.n)
			}
			for k, idx := range tt.order {
				if doneCalls != 0 {
					t.Fatalf("done ran after %d of %d completions", k, tt.n)
				}
				p.calls[idx](nil, nil)
			}
			if doneCalls != 1 {
				t.Fatalf("done ran %d times, want 1", doneCalls)
			}
			for k, v := range progress {
				want := float64(k+1) / float64(tt.n)
				if v != want {
					t.Fatalf("progress[%d] = %v, want %v", k, v, want)
				}
			}
		})
	}
}

func TestRunIgnoresRepeatedCallback(t *testing.T) {
	p := &pending{}
	var progress []float64
	doneCalls := 0
	Run(requests(3), p, func(v float64) { progress = append(progress, v) }, func(Result) { doneCalls++ })

	p.calls[0](nil, nil)
	p.calls[0](nil, nil)
	p.calls[1](nil, nil)
	if doneCalls != 0 {
		t.Fatal("done ran before the third load completed")
	}
	p.calls[2](nil, nil)
	p.calls[2](nil, nil)

	if doneCalls != 1 {
		t.Fatalf("done ran %d times, want 1", doneCalls)
	}
	if len(progress) != 3 {
		t.Fatalf("progress events = %v, want 3", progress)
	}
}

func TestRunEmpty(t *testing.T) {
	progressCalls := 0
	var got *Result
	Run(nil, &pending{}, func(float64) { progressCalls++ }, func(r Result) { got = &r })

	if got == nil {
		t.Fatal("done did not run")
	}
	if progressCalls != 0 {
		t.Fatalf("progress ran %d times, want 0", progressCalls)
	}
	if got.Err() != nil {
		t.Fatalf("Err = %v", got.Err())
	}
}

func TestRunAggregatesFailures(t *testing.T) {
	errMissing := errors.New("missing")
	p := &pending{}
	var res Result
	Run(requests(3), p, nil, func(r Result) { res = r })

	p.calls[1](errMissing, nil)
	p.calls[0](nil, nil)
	p.calls[2](errMissing, nil)

	if res.Total != 3 || len(res.Failed) != 2 {
		t.Fatalf("result = %+v", res)
	}
	if !errors.Is(res.Err(), errMissing) {
		t.Fatalf("Err = %v, want wrapping %v", res.Err(), errMissing)
	}
	var le *LoadError
	if !errors.As(res.Err(), &le) || le.Request.URL != "materials/1.json" {
		t.Fatalf("first failure = %+v", le)
	}
}

func TestRunsAreIndependent(t *testing.T) {
	a, b := &pending{}, &pending{}
	var doneA, doneB int
	Run(requests(2), a, nil, func(Result) { doneA++ })
	Run(requests(1), b, nil, func(Result) { doneB++ })

	b.calls[0](nil, nil)
	a.calls[0](nil, nil)
	if doneA != 0 || doneB != 1 {
		t.Fatalf("doneA=%d doneB=%d", doneA, doneB)
	}
	a.calls[1](nil, nil)
	if doneA != 1 {
		t.Fatalf("doneA=%d", doneA)
	}
}
