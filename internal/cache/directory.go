package cache

import (
	"context"
	"sync"
	"time"

	"bordbuch-backend/internal/access"
	"bordbuch-backend/internal/model"
)

// Directory is a time-boxed, read-through memoization of the machine
// directory. Staleness is computed at read time against an injected clock,
// so tests can drive expiry without sleeping. The cache is purely advisory:
// a miss falls through to the underlying store, and correctness never
// depends on a hit.
type Directory struct {
	source access.MachineDirectory
	maxAge time.Duration
	now    func() time.Time

	mu        sync.Mutex
	machines  []model.Machine
	fetchedAt time.Time
}

// NewDirectory wraps source with a cache of the given max age. A nil clock
// defaults to time.Now.
func NewDirectory(source access.MachineDirectory, maxAge time.Duration, now func() time.Time) *Directory {
	if now == nil {
		now = time.Now
	}
	return &Directory{source: source, maxAge: maxAge, now: now}
}

// Get returns the cached machine list, or nil when the cache is empty or
// older than the configured max age.
func (d *Directory) Get() []model.Machine {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.machines == nil || d.now().Sub(d.fetchedAt) > d.maxAge {
		return nil
	}
	return d.machines
}

// Put stores a machine list, stamping it with the current clock reading.
func (d *Directory) Put(machines []model.Machine) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.machines = machines
	d.fetchedAt = d.now()
}

// ListMachines serves from the cache when fresh and reads through to the
// source otherwise. It satisfies access.MachineDirectory, so the resolver
// and the machines handler can be pointed at the cache transparently.
func (d *Directory) ListMachines(ctx context.Context) ([]model.Machine, error) {
	if machines := d.Get(); machines != nil {
		return machines, nil
	}

	machines, err := d.source.ListMachines(ctx)
	if err != nil {
		return nil, err
	}
	d.Put(machines)
	return machines, nil
}
