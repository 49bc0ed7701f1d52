// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout passes, merges, and cache
// operations.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core engine free of observability frameworks.
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout pass.
	OnLayoutStart(nodeCount int)

	// OnLayoutComplete records the end of a layout pass, including how many
	// overlapping pairs survived resolution (0 when fully resolved).
	OnLayoutComplete(nodeCount, residualOverlaps int, duration time.Duration)
}

// =============================================================================
// Merge Hooks
// =============================================================================

// MergeHooks receives events from the merge engine.
type MergeHooks interface {
	// OnMerge records a completed merge: the policy applied, how many
	// generated nodes were admitted, and how many previous nodes were removed.
	OnMerge(policy string, admitted, removed int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from layout cache operations.
type CacheHooks interface {
	OnCacheHit(key string)
	OnCacheMiss(key string)
	OnCacheSet(key string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(int)                        {}
func (NoopLayoutHooks) OnLayoutComplete(int, int, time.Duration) {}

// NoopMergeHooks is a no-op implementation of MergeHooks.
type NoopMergeHooks struct{}

func (NoopMergeHooks) OnMerge(string, int, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)      {}
func (NoopCacheHooks) OnCacheMiss(string)     {}
func (NoopCacheHooks) OnCacheSet(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	mergeHooks  MergeHooks  = NoopMergeHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetMergeHooks registers custom merge hooks.
func SetMergeHooks(h MergeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mergeHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Merge returns the registered merge hooks.
func Merge() MergeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mergeHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	mergeHooks = NoopMergeHooks{}
	cacheHooks = NoopCacheHooks{}
}
