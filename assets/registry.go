package assets

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

var ErrUnknownKind = errors.New("assets: unknown kind")

// Post schedules fn on the goroutine that owns the registry.
type Post func(fn func())

// Registry tracks every requested asset. Files are read and decoded on
// worker goroutines; results and callbacks are delivered through post (or
// queued for Drain), so all registry state is touched only by the owning
// goroutine.
type Registry struct {
	src      Source
	post     Post
	decoders map[Kind]Decoder
	hooks    []func(*Asset)
	byURL    map[string]*Asset
	order    []*Asset

	mu      sync.Mutex
	pending []func()
}

// NewRegistry creates a registry reading from src. With a nil post,
// results wait in the registry until the owning goroutine calls Drain.
func NewRegistry(src Source, post Post) *Registry {
	if src == nil {
		src = FS{}
	}
	return &Registry{
		src:  src,
		post: post,
		decoders: map[Kind]Decoder{
			KindModel:    decodeModel,
			KindMaterial: decodeMaterial,
			KindScript:   decodeRaw,
			KindTexture:  decodeTexture,
			KindFont:     decodeFont,
		},
		byURL: map[string]*Asset{},
	}
}

// SetDecoder overrides how files of kind are decoded.
func (r *Registry) SetDecoder(kind Kind, d Decoder) {
	r.decoders[kind] = d
}

// OnLoaded registers fn to run after every successful load or reload.
func (r *Registry) OnLoaded(fn func(*Asset)) {
	r.hooks = append(r.hooks, fn)
}

// LoadFromURL adds the asset to the registry and loads it in the
// background. cb runs once, on the owning goroutine, with the load error
// (if any) and the asset entry.
func (r *Registry) LoadFromURL(url string, kind Kind, cb func(err error, a *Asset)) {
	a, ok := r.byURL[url]
	if !ok {
		a = newAsset(url, kind)
		r.byURL[url] = a
		r.order = append(r.order, a)
	}
	if !kind.Valid() {
		err := fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		r.deliver(func() { r.finish(a, nil, err, cb) })
		return
	}
	decode := r.decoders[kind]
	go func() {
		res, err := r.read(url, decode)
		r.deliver(func() { r.finish(a, res, err, cb) })
	}()
}

// Reload re-reads an already registered asset.
func (r *Registry) Reload(url string, cb func(err error, a *Asset)) bool {
	a, ok := r.byURL[url]
	if !ok {
		return false
	}
	r.LoadFromURL(url, a.Kind, cb)
	return true
}

// ReloadPath reloads every asset whose file path ends with path.
func (r *Registry) ReloadPath(path string) int {
	clean := cleanAssetPath(path)
	n := 0
	for _, a := range r.order {
		target := cleanAssetPath(a.URL)
		if target != clean && !hasPathSuffix(clean, target) {
			continue
		}
		n++
		r.Reload(a.URL, func(err error, a *Asset) {
			if err != nil {
				log.Printf("assets: reload %s: %v", a.URL, err)
				return
			}
			log.Printf("assets: reloaded %s", a.Name)
		})
	}
	return n
}

// Find returns the first asset with the given file name and kind, or nil.
func (r *Registry) Find(name string, kind Kind) *Asset {
	for _, a := range r.order {
		if a.Name == name && a.Kind == kind {
			return a
		}
	}
	return nil
}

// Get returns the asset requested under url.
func (r *Registry) Get(url string) (*Asset, bool) {
	a, ok := r.byURL[url]
	return a, ok
}

// List returns assets in request order.
func (r *Registry) List() []*Asset {
	out := make([]*Asset, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) read(url string, decode Decoder) (any, error) {
	data, err := r.src.ReadFile(url)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", url, err)
	}
	res, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", url, err)
	}
	return res, nil
}

func (r *Registry) finish(a *Asset, res any, err error, cb func(error, *Asset)) {
	a.Err = err
	if err == nil {
		a.Resource = res
		a.Loaded = true
		for _, hook := range r.hooks {
			hook(a)
		}
	}
	if cb != nil {
		cb(err, a)
	}
}

func (r *Registry) deliver(fn func()) {
	if r.post != nil {
		r.post(fn)
		return
	}
	r.mu.Lock()
	r.pending = append(r.pending, fn)
	r.mu.Unlock()
}

// Drain finishes the loads queued on a registry created without a post
// func and returns how many ran.
func (r *Registry) Drain() int {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

func hasPathSuffix(p, suffix string) bool {
	return len(p) > len(suffix) && p[len(p)-len(suffix)-1] == '/' && p[len(p)-len(suffix):] == suffix
}
