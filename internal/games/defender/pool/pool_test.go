package pool

import "testing"

type item struct {
	value  int
	active bool
}

func newItemPool() *Pool[item] {
	return New(
		func() *item { return &item{} },
		func(it *item) { *it = item{} },
	)
}

func TestAcquireInitializes(t *testing.T) {
	p := newItemPool()

	it := p.Acquire(func(it *item) {
		it.value = 7
		it.active = true
	})

	if it.value != 7 || !it.active {
		t.Errorf("Acquire() = %+v, expected initialized item", *it)
	}
	if p.InUse() != 1 || p.Allocated() != 1 {
		t.Errorf("InUse() = %d, Allocated() = %d, expected 1, 1", p.InUse(), p.Allocated())
	}
}

func TestReleaseRecycles(t *testing.T) {
	p := newItemPool()

	a := p.Acquire(func(it *item) { it.value = 1 })
	if !p.Release(a) {
		t.Fatal("Release() of in-use item should report true")
	}
	if a.value != 0 {
		t.Errorf("released item value = %d, expected reset to 0", a.value)
	}

	b := p.Acquire(nil)
	if a != b {
		t.Error("Acquire() after Release() should reuse the freed instance")
	}
	if p.Allocated() != 1 {
		t.Errorf("Allocated() = %d, expected 1", p.Allocated())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	p := newItemPool()
	a := p.Acquire(nil)
	p.Acquire(nil)

	p.Release(a)
	inUse, free, allocated := p.InUse(), p.Free(), p.Allocated()

	if p.Release(a) {
		t.Error("second Release() should report false")
	}
	if p.InUse() != inUse || p.Free() != free || p.Allocated() != allocated {
		t.Errorf("bookkeeping changed after double release: in-use %d->%d, free %d->%d, allocated %d->%d",
			inUse, p.InUse(), free, p.Free(), allocated, p.Allocated())
	}
}

func TestReleaseForeign(t *testing.T) {
	p := newItemPool()
	if p.Release(&item{}) {
		t.Error("Release() of an instance the pool never handed out should report false")
	}
	if p.Release(nil) {
		t.Error("Release(nil) should report false")
	}
	if p.Free() != 0 {
		t.Errorf("Free() = %d, expected 0", p.Free())
	}
}

func TestPoolGrows(t *testing.T) {
	p := newItemPool()
	p.Prewarm(2)

	seen := make(map[*item]bool)
	for i := 0; i < 5; i++ {
		it := p.Acquire(nil)
		if seen[it] {
			t.Fatal("Acquire() handed out an instance that is already in use")
		}
		seen[it] = true
	}

	if p.Allocated() != 5 {
		t.Errorf("Allocated() = %d, expected 5", p.Allocated())
	}
	if p.InUse() != 5 || p.Free() != 0 {
		t.Errorf("InUse() = %d, Free() = %d, expected 5, 0", p.InUse(), p.Free())
	}
}
