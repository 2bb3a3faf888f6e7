// Package pool provides a growable free-list allocator for short-lived
// entities such as bullets.
package pool

// Pool recycles instances of T. It is not safe for concurrent use; the
// simulation owns it from a single goroutine.
type Pool[T any] struct {
	factory func() *T
	reset   func(*T)

	free  []*T
	inUse map[*T]struct{}

	allocated int
}

// New creates a pool. factory builds a fresh instance when the free list is
// empty; reset (optional) clears an instance as it returns to the free list.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		factory: factory,
		reset:   reset,
		inUse:   make(map[*T]struct{}),
	}
}

// Prewarm allocates n instances onto the free list.
func (p *Pool[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.factory())
		p.allocated++
	}
}

// Acquire returns a recycled or newly built instance after running init on it.
// It never fails: an empty free list grows the pool.
func (p *Pool[T]) Acquire(init func(*T)) *T {
	var obj *T
	if n := len(p.free); n > 0 {
		obj = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		obj = p.factory()
		p.allocated++
	}

	if init != nil {
		init(obj)
	}
	p.inUse[obj] = struct{}{}
	return obj
}

// Release returns obj to the free list. Releasing an instance that is not
// currently in use is a no-op and reports false.
func (p *Pool[T]) Release(obj *T) bool {
	if obj == nil {
		return false
	}
	if _, ok := p.inUse[obj]; !ok {
		return false
	}
	delete(p.inUse, obj)

	if p.reset != nil {
		p.reset(obj)
	}
	p.free = append(p.free, obj)
	return true
}

// InUse returns the number of acquired instances.
func (p *Pool[T]) InUse() int {
	return len(p.inUse)
}

// Free returns the number of instances waiting on the free list.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Allocated returns how many instances the pool has ever built.
func (p *Pool[T]) Allocated() int {
	return p.allocated
}
