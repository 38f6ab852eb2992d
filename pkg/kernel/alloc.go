package kernel

import "fmt"

// Allocproc scans the table for an UNUSED slot, reserves it as EMBRYO,
// and prepares it to run. Mirrors original_source/proc.c's allocproc:
// the table lock is held only for the slot scan/reservation; the
// (fallible) kernel-stack allocation happens afterward, and on failure
// the slot is rolled back to UNUSED.
func (k *Kernel) Allocproc() (*Proc, error) {
	k.table.mu.Lock()
	p := k.table.allocprocLocked()
	if p == nil {
		k.table.mu.Unlock()
		return nil, ErrNoFreeSlot
	}
	p.startTime = k.Ticks()
	p.priority = k.config.DefaultPriority
	if k.config.resolvedPolicy() == PolicyMLFQ {
		k.enqueueLowestNonFullLocked(p)
	}
	k.table.mu.Unlock()

	stack, err := k.table.kalloc.Alloc()
	if err != nil {
		k.table.mu.Lock()
		k.table.freeLocked(p)
		k.table.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrStackAlloc, err)
	}
	p.kstack = stack
	p.ctx = newContext()
	return p, nil
}

// enqueueLowestNonFullLocked places a freshly allocated process into the
// lowest-numbered MLFQ level that isn't full, per SPEC_FULL.md §4.1
// ("enqueue into the lowest non-full level; level 0 is normal"). The
// table lock must be held.
func (k *Kernel) enqueueLowestNonFullLocked(p *Proc) {
	for level := 0; level < NumQueues; level++ {
		if !k.table.mlfq.levels[level].isFull() {
			p.queue = level
			k.table.mlfq.enqueue(level, p)
			return
		}
	}
}

// Userinit builds the first user process: allocates a PCB, gives it a
// bootstrap address space, seeds its workload, and marks it RUNNABLE.
// Mirrors original_source/proc.c's userinit.
func (k *Kernel) Userinit(name string, workload Workload) (*Proc, error) {
	p, err := k.Allocproc()
	if err != nil {
		return nil, err
	}

	as, err := k.table.addrOps.Setup()
	if err != nil {
		k.table.mu.Lock()
		k.table.freeLocked(p)
		k.table.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrAddrSpace, err)
	}
	p.addrSpace = as
	p.sz = as.Size()
	p.name = name
	p.workload = workload

	k.mu.Lock()
	k.initproc = p
	k.mu.Unlock()

	go k.runProc(p)

	k.table.mu.Lock()
	p.state = StateRunnable
	k.table.mu.Unlock()

	return p, nil
}

// runProc is the one goroutine every scheduled Proc owns for its
// lifetime, analogous to gVisor's one-goroutine-per-Task model (see
// DESIGN.md "Context switch modeling"). It waits to be first resumed,
// runs the workload to completion, then performs Exit bookkeeping.
func (k *Kernel) runProc(p *Proc) {
	p.ctx.awaitFirstResume()
	if p.workload != nil {
		p.workload(&ProcContext{k: k, proc: p})
	}
	k.exit(p)
}
