// Package status is a process-wide telemetry registry read once at exit
package status

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// MaxLabelLen bounds label values so a summary line stays short
const MaxLabelLen = 20

// Label is an atomically replaced short string
type Label struct {
	v atomic.Pointer[string]
}

// Set stores s truncated to MaxLabelLen bytes
func (l *Label) Set(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.v.Store(&s)
}

// Get returns the label, empty if never set
func (l *Label) Get() string {
	if p := l.v.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry hands out named metrics
// Lookups lock; writers cache the returned pointers at construction and
// update them lock-free afterwards
type Registry struct {
	mu     sync.Mutex
	ints   map[string]*atomic.Int64
	bools  map[string]*atomic.Bool
	labels map[string]*Label
}

func NewRegistry() *Registry {
	return &Registry{
		ints:   make(map[string]*atomic.Int64),
		bools:  make(map[string]*atomic.Bool),
		labels: make(map[string]*Label),
	}
}

// Int returns the counter for key, registering it on first use
func (r *Registry) Int(key string) *atomic.Int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lookup(r.ints, key)
}

// Bool returns the flag for key, registering it on first use
func (r *Registry) Bool(key string) *atomic.Bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lookup(r.bools, key)
}

// Label returns the label for key, registering it on first use
func (r *Registry) Label(key string) *Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lookup(r.labels, key)
}

func lookup[T any](m map[string]*T, key string) *T {
	p, ok := m[key]
	if !ok {
		p = new(T)
		m[key] = p
	}
	return p
}

// Len returns the number of registered metrics of all kinds
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ints) + len(r.bools) + len(r.labels)
}

// Summary renders every metric as key=value, sorted by key, on one line
func (r *Registry) Summary() string {
	r.mu.Lock()
	parts := make([]string, 0, len(r.ints)+len(r.bools)+len(r.labels))
	for k, v := range r.ints {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	}
	for k, v := range r.bools {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	}
	for k, v := range r.labels {
		parts = append(parts, k+"="+v.Get())
	}
	r.mu.Unlock()

	// Keys never contain '=', so sorting the pairs sorts by key
	slices.Sort(parts)
	return strings.Join(parts, " ")
}
