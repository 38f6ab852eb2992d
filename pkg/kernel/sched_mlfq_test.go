package kernel

import "testing"

func TestPickMLFQ_DrainsLowestLevelFirst(t *testing.T) {
	tb := newTestTable(4)
	a, b, c := tb.procs[0], tb.procs[1], tb.procs[2]
	a.state, b.state, c.state = StateRunnable, StateRunnable, StateRunnable

	tb.mlfq.enqueue(2, c)
	tb.mlfq.enqueue(0, a)
	tb.mlfq.enqueue(1, b)

	if got := PickMLFQ(tb); got != a {
		t.Fatalf("PickMLFQ = slot %d, want a (level 0)", got.slot)
	}
	if got := PickMLFQ(tb); got != b {
		t.Fatalf("PickMLFQ = slot %d, want b (level 1)", got.slot)
	}
	if got := PickMLFQ(tb); got != c {
		t.Fatalf("PickMLFQ = slot %d, want c (level 2)", got.slot)
	}
}

func TestPickMLFQ_RotatesPastNonRunnableHead(t *testing.T) {
	tb := newTestTable(4)
	embryo, runnable := tb.procs[0], tb.procs[1]
	embryo.state = StateEmbryo
	runnable.state = StateRunnable

	// embryo reaches the ring head before Fork/Userinit ever flips it
	// to RUNNABLE, exactly as alloc.go's enqueueLowestNonFullLocked
	// allows.
	tb.mlfq.enqueue(0, embryo)
	tb.mlfq.enqueue(0, runnable)

	got := PickMLFQ(tb)
	if got != runnable {
		t.Fatalf("PickMLFQ = %v, want the RUNNABLE process, not the EMBRYO head", got)
	}

	// The rotated EMBRYO process must still be enqueued (at the tail),
	// not lost.
	if tb.mlfq.empty(0) {
		t.Fatal("rotated-past EMBRYO process was dropped from its level")
	}
	if embryo.queuedAt != 0 {
		t.Fatalf("embryo.queuedAt = %d, want 0 (still enqueued at its level)", embryo.queuedAt)
	}
}

func TestPickMLFQ_AllHeadsNonRunnableReturnsNilWithoutSpinning(t *testing.T) {
	tb := newTestTable(4)
	embryo := tb.procs[0]
	embryo.state = StateEmbryo
	tb.mlfq.enqueue(0, embryo)

	got := PickMLFQ(tb)
	if got != nil {
		t.Fatalf("PickMLFQ = %v, want nil (no RUNNABLE process anywhere)", got)
	}
	if tb.mlfq.empty(0) {
		t.Fatal("the non-RUNNABLE process should still be enqueued, just rotated")
	}
}

func TestPickMLFQ_StrayFallbackResetsQueue(t *testing.T) {
	tb := newTestTable(2)
	p := tb.procs[0]
	p.state = StateRunnable
	p.queue = 3
	p.queuedAt = -1 // not actually enqueued anywhere

	got := PickMLFQ(tb)
	if got != p {
		t.Fatalf("PickMLFQ = %v, want the stray RUNNABLE process", got)
	}
	if p.queue != 0 {
		t.Fatalf("queue = %d after stray fallback, want 0 (DESIGN.md Open Questions item 6)", p.queue)
	}
}

func TestKernel_YieldDemotesUnconditionallyUnderMLFQ(t *testing.T) {
	k := NewKernel(Config{NPROC: 4, NCPU: 1, Policy: PolicyMLFQ, MaxAge: 1000, QTicks: [NumQueues]int{4, 4, 4, 4, 4}, DefaultPriority: 60, KernelStackSize: 4096}, nil, nil, nil)

	p, err := k.Allocproc()
	if err != nil {
		t.Fatal(err)
	}
	k.table.mu.Lock()
	p.state = StateRunnable
	k.table.mu.Unlock()

	// Yield parks, so it must run on its own goroutine, matching
	// runProc's own resume/park protocol. The demotion happens before
	// Yield parks, and park's channel send is what unblocks runOnce
	// below, so checking p.queue right after runOnce returns is safe:
	// the channel handoff establishes happens-before.
	go func() {
		p.ctx.awaitFirstResume()
		k.Yield(p)
	}()
	p.ctx.runOnce()

	if p.queue != 1 {
		t.Fatalf("queue = %d after one Yield under MLFQ, want 1 (unconditional demotion)", p.queue)
	}
}
