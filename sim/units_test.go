package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPool_Allocate_RoundRobinSpreadsMachines(t *testing.T) {
	// GIVEN a pool of 3 machines with latency 2
	p := NewUnitPool(3, 2)

	// WHEN two allocations happen at cycle 0
	first := p.Allocate(0)
	second := p.Allocate(0)

	// THEN distinct machines are used in index order
	if first != 0 || second != 1 {
		t.Errorf("Allocate: got machines (%d, %d), want (0, 1)", first, second)
	}

	// WHEN those machines are released at cycle 1 and a new allocation happens
	p.Release(1)
	third := p.Allocate(2)

	// THEN the round-robin pointer has moved past the freed machines
	if third != 2 {
		t.Errorf("Allocate after release: got machine %d, want 2", third)
	}
}

func TestUnitPool_Full_TracksCapacity(t *testing.T) {
	// GIVEN a pool of 2 machines
	p := NewUnitPool(2, 1)

	// WHEN both machines are allocated
	p.Allocate(0)
	if p.Full() {
		t.Fatalf("Full after one allocation: got true, want false")
	}
	p.Allocate(0)

	// THEN the pool reports full and busy equals size
	if !p.Full() {
		t.Errorf("Full: got false, want true")
	}
	if p.Busy() != p.Size() {
		t.Errorf("Busy: got %d, want %d", p.Busy(), p.Size())
	}
}

func TestUnitPool_Allocate_OnFullPoolPanics(t *testing.T) {
	// GIVEN a full pool of 1 machine
	p := NewUnitPool(1, 1)
	p.Allocate(0)

	// THEN a further allocation panics (callers must check Full first)
	assert.Panics(t, func() { p.Allocate(0) })
}

func TestUnitPool_Release_FreesExactlyAtStartPlusClocksMinusOne(t *testing.T) {
	// GIVEN a machine allocated at cycle 3 with latency 2
	p := NewUnitPool(1, 2)
	p.Allocate(3)

	// WHEN earlier cycles pass
	p.Release(2)
	p.Release(3)

	// THEN the machine stays busy through cycles 3..4
	if p.Busy() != 1 {
		t.Fatalf("Busy before completion: got %d, want 1", p.Busy())
	}

	// WHEN cycle start+clocks-1 arrives
	p.Release(4)

	// THEN the machine is free and eligible for reallocation at cycle 5
	if p.Busy() != 0 {
		t.Errorf("Busy after completion: got %d, want 0", p.Busy())
	}
	assert.NotPanics(t, func() { p.Allocate(5) })
}

func TestUnitPool_Allocate_RecoversFromStaleRoundRobinPointer(t *testing.T) {
	// GIVEN a pool of 2 machines with latency 2 that filled up completely
	p := NewUnitPool(2, 2)
	p.Allocate(0)
	p.Allocate(0)

	// WHEN both machines are released
	p.Release(1)

	// THEN the next allocations still find free machines and stay within capacity
	a := p.Allocate(2)
	b := p.Allocate(2)
	if a == b {
		t.Errorf("Allocate: machines (%d, %d) collide", a, b)
	}
	if p.Busy() > p.Size() {
		t.Errorf("Busy exceeds capacity: %d > %d", p.Busy(), p.Size())
	}
}
