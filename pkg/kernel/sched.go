package kernel

// Yield voluntarily gives up the CPU for one scheduling round, the
// Go-native shape of original_source/proc.c's yield(): acquire the
// table lock, mark RUNNABLE, swtch away.
//
// Under MLFQ, yield() in the original source demotes the process one
// level unconditionally, with no check that its time slice actually
// expired — SPEC_FULL.md §4.6/§9 flags this as a possibly-unintended
// behavior preserved deliberately rather than silently corrected (see
// DESIGN.md "Open Questions"). A cooperative Workload that calls
// Yield before its quantum is up still gets demoted.
func (k *Kernel) Yield(p *Proc) {
	k.table.mu.Lock()
	p.state = StateRunnable

	if k.config.resolvedPolicy() == PolicyMLFQ {
		next := p.queue + 1
		if next >= NumQueues {
			next = NumQueues - 1
		}
		p.queue = next
		k.table.mlfq.enqueue(p.queue, p)
	}

	assertParkable(p)
	k.table.mu.Unlock()

	p.ctx.park()
}

// assertParkable is the last-line check original_source/proc.c's sched()
// performs on p->state before swtch: a process must never hand the CPU
// back while still marked RUNNING, since that would let two goroutines
// believe they own it.
func assertParkable(p *Proc) {
	if p.state == StateRunning {
		panic("kernel: parking a process still marked RUNNING")
	}
}
