// Package locks provides a process-wide allocator of reference-counted
// mutexes keyed by arbitrary resource names, letting unrelated
// components coordinate exclusive access to a resource (such as a cache
// file path) without pre-declaring lock objects for it.
package locks

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle is an exclusive-access primitive allocated for a named
// resource. The allocator only manages handle identity and lifecycle;
// actual mutual exclusion over the resource happens through the
// caller's own Lock/Unlock discipline on the handle.
//
// A handle's identity is stable only while its entry exists in the
// allocator: once the last Release removes the entry, a later Allocate
// for the same name produces a new, unrelated handle.
type Handle struct {
	id uuid.UUID
	mu sync.Mutex
}

// ID returns the unique identity of this handle, for diagnostics and
// for distinguishing handles across an entry's lifetimes.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Lock acquires exclusive access to the named resource this handle was
// allocated for.
func (h *Handle) Lock() {
	h.mu.Lock()
}

// Unlock releases exclusive access to the named resource.
func (h *Handle) Unlock() {
	h.mu.Unlock()
}

// entry tracks one live named lock and the number of holders that have
// allocated it.
type entry struct {
	handle *Handle
	refs   int
}

// Allocator hands out refcounted lock handles keyed by resource name.
// Construct one with NewAllocator and share it by injection with every
// component that needs to coordinate on the same names; the zero value
// is not usable.
//
// All bookkeeping happens under a single critical section, so no
// interleaving of Allocate and Release can observe an inconsistent
// refcount or obtain a handle whose entry is mid-removal.
type Allocator struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{entries: make(map[string]*entry)}
}

// Allocate returns the lock handle for the named resource, creating it
// on first use and incrementing its reference count otherwise. Every
// Allocate must be paired with exactly one Release for the same name.
func (a *Allocator) Allocate(name string) *Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	if e, ok := a.entries[name]; ok {
		e.refs++
		return e.handle
	}

	h := &Handle{id: uuid.New()}
	a.entries[name] = &entry{handle: h, refs: 1}
	return h
}

// Release drops one reference to the named lock, removing the entry
// entirely when the count reaches zero. Releasing a name that has no
// live entry is a contract violation by the caller and returns an
// error, so unbalanced lock lifecycles surface instead of being
// silently masked.
func (a *Allocator) Release(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, ok := a.entries[name]
	if !ok {
		return fmt.Errorf("release of unallocated named lock %q", name)
	}

	e.refs--
	if e.refs == 0 {
		delete(a.entries, name)
	}
	return nil
}

// Active returns the number of names that currently have a live entry.
func (a *Allocator) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
