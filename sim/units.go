// Implements the UnitPool, which models one class of functional unit:
// a fixed number of identical machines sharing a fixed operation latency.

package sim

// unitMachine tracks one execution resource within a UnitPool.
type unitMachine struct {
	startCycle int64
	busy       bool
}

// UnitPool models a fixed-size group of identical machines serving one
// operation class. A machine allocated at cycle s is busy for cycles
// s..s+clocks-1 and is eligible for reallocation at cycle s+clocks.
// The pool is exclusively owned and mutated by the Simulator.
type UnitPool struct {
	machines []unitMachine
	clocks   int64 // cycles a machine stays busy per allocation
	busy     int   // number of currently busy machines, never exceeds len(machines)
	next     int   // round-robin index of the machine to allocate next
}

// NewUnitPool creates a pool of count idle machines with the given latency.
func NewUnitPool(count int, clocks int64) *UnitPool {
	return &UnitPool{
		machines: make([]unitMachine, count),
		clocks:   clocks,
	}
}

// Size returns the number of machines in the pool.
func (p *UnitPool) Size() int {
	return len(p.machines)
}

// Busy returns the number of currently busy machines.
func (p *UnitPool) Busy() int {
	return p.busy
}

// Clocks returns the pool's per-operation latency in cycles.
func (p *UnitPool) Clocks() int64 {
	return p.clocks
}

// Full reports whether every machine in the pool is busy.
func (p *UnitPool) Full() bool {
	return p.busy == len(p.machines)
}

// Allocate marks a free machine busy starting at cycle t and returns its
// index. Selection is round-robin: the allocation pointer advances past the
// chosen machine to the next free one, scanning forward cyclically, so load
// spreads evenly across identical machines. Callers must check Full() first;
// allocating from a full pool panics.
func (p *UnitPool) Allocate(t int64) int {
	if p.Full() {
		panic("Allocate: pool is full")
	}

	n := len(p.machines)
	allocated := p.next
	// The pointer can go stale after Release when the pool filled up earlier;
	// rescan forward for the first free machine.
	if p.machines[allocated].busy {
		for i := 1; i < n; i++ {
			idx := (p.next + i) % n
			if !p.machines[idx].busy {
				allocated = idx
				break
			}
		}
	}

	p.machines[allocated] = unitMachine{startCycle: t, busy: true}
	p.busy++

	if p.busy < n {
		for i := 1; i < n; i++ {
			idx := (allocated + i) % n
			if !p.machines[idx].busy {
				p.next = idx
				break
			}
		}
	} else {
		p.next = allocated
	}

	return allocated
}

// Release frees every machine whose work completes at cycle t, i.e. those
// allocated at cycle t-clocks+1.
func (p *UnitPool) Release(t int64) {
	for i := range p.machines {
		if p.machines[i].busy && t == p.machines[i].startCycle+p.clocks-1 {
			p.machines[i].busy = false
			p.busy--
		}
	}
}
