package scpi

import (
	"context"
	"reflect"
	"sync"
)

var (
	layouts   = make(map[reflect.Type]any)
	layoutsMu sync.RWMutex
)

// layoutFor returns a cached derived layout or builds a new one.
// Layouts are cached by record type; build errors are not cached.
func layoutFor[T any]() (*Layout[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	layoutsMu.RLock()
	if cached, ok := layouts[typ]; ok {
		layoutsMu.RUnlock()
		return cached.(*Layout[T]), nil
	}
	layoutsMu.RUnlock()

	// Slow path: build and cache with write-lock
	layoutsMu.Lock()
	defer layoutsMu.Unlock()

	// Double-check pattern
	if cached, ok := layouts[typ]; ok {
		return cached.(*Layout[T]), nil
	}

	layout, err := buildLayout[T]()
	emitLayoutBuilt(context.Background(), typ.String(), err)
	if err != nil {
		return nil, err
	}

	layouts[typ] = layout
	return layout, nil
}

// ResetLayouts clears the derived-layout cache.
// This is primarily useful for test isolation.
func ResetLayouts() {
	layoutsMu.Lock()
	defer layoutsMu.Unlock()
	layouts = make(map[reflect.Type]any)
}
