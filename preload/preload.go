// Package preload issues a batch of asset loads at once and runs a single
// continuation after every one of them has completed.
package preload

import (
	"errors"
	"fmt"

	"github.com/milk9111/vrroom/assets"
)

// Loader starts loading one asset. cb must eventually be called, on the
// caller's goroutine, once the load has finished or failed.
type Loader interface {
	LoadFromURL(url string, kind assets.Kind, cb func(err error, a *assets.Asset))
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(url string, kind assets.Kind, cb func(err error, a *assets.Asset))

func (f LoaderFunc) LoadFromURL(url string, kind assets.Kind, cb func(err error, a *assets.Asset)) {
	f(url, kind, cb)
}

// LoadError records one failed request.
type LoadError struct {
	Request assets.Request
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("preload: %s %s: %v", e.Request.Kind, e.Request.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Result summarizes a finished run.
type Result struct {
	Total  int
	Failed []*LoadError
}

// Err joins every failed load, or returns nil if all succeeded.
func (r Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// run is the state of one Run call. It is captured by the per-request
// callbacks and dropped once completed reaches total.
type run struct {
	total      int
	completed  int
	failed     []*LoadError
	onProgress func(float64)
	onDone     func(Result)
}

func (r *run) complete(req assets.Request, err error) {
	r.completed++
	if err != nil {
		r.failed = append(r.failed, &LoadError{Request: req, Err: err})
	}
	if r.onProgress != nil {
		r.onProgress(float64(r.completed) / float64(r.total))
	}
	if r.completed == r.total {
		r.onDone(Result{Total: r.total, Failed: r.failed})
	}
}

// Run issues every request without waiting for the previous one. Each
// request counts exactly once, whether it succeeds or fails; a repeated
// callback for the same request is ignored. onProgress (optional) receives
// completed/total after each completion and onDone runs once when all
// requests have completed. With no requests onDone runs immediately.
func Run(requests []assets.Request, loader Loader, onProgress func(float64), onDone func(Result)) {
	if onDone == nil {
		onDone = func(Result) {}
	}
	if len(requests) == 0 {
		onDone(Result{})
		return
	}

	r := &run{
		total:      len(requests),
		onProgress: onProgress,
		onDone:     onDone,
	}
	for _, req := range requests {
		req := req
		done := false
		loader.LoadFromURL(req.URL, req.Kind, func(err error, _ *assets.Asset) {
			if done {
				return
			}
			done = true
			r.complete(req, err)
		})
	}
}
