package kernel

// PickMLFQ dequeues the head of the lowest-numbered non-empty level
// whose head is RUNNABLE. Mirrors original_source/proc.c's MLFQ
// scheduler: levels are drained strictly in priority order, never
// peeking into a lower-priority level while a higher one has anything
// runnable.
//
// A ring head is not guaranteed RUNNABLE: alloc.go's
// enqueueLowestNonFullLocked enqueues a freshly-allocated slot while it
// is still EMBRYO, and Fork/Userinit only flip it to RUNNABLE later,
// after releasing the table lock. If the head isn't RUNNABLE, rotate it
// to the tail of its own level and try the new head, bounded by the
// level's size at the start of the scan so a level with no RUNNABLE
// member at all doesn't spin forever.
//
// If no level yields a RUNNABLE head, every RUNNABLE process that isn't
// recorded in any level (queuedAt == -1 despite being RUNNABLE — it
// fell out of the queues some other way, e.g. Allocproc raced a full
// ring, per the soft-error path in DESIGN.md "MLFQ ring queues") is
// forced into level 0, as the original source's fallback does, and the
// pick is retried. We additionally reset p.queue to 0 for each of them
// (the original does not), so the
// process's recorded queue level never disagrees with the level it's
// actually enqueued at — see DESIGN.md "Open Questions" for why this
// one deviation was judged worth making instead of preserving as-is.
// The table lock must be held.
func PickMLFQ(t *Table) *Proc {
	for level := 0; level < NumQueues; level++ {
		attempts := t.mlfq.size(level)
		for i := 0; i < attempts; i++ {
			p := t.mlfq.dequeue(level)
			if p == nil {
				break
			}
			if p.state == StateRunnable {
				return p
			}
			t.mlfq.enqueue(level, p)
		}
	}

	enqueued := false
	t.forEachLocked(func(p *Proc) {
		if p.state == StateRunnable && p.queuedAt == -1 {
			p.queue = 0
			t.mlfq.enqueue(0, p)
			enqueued = enqueued || p.queuedAt == 0
		}
	})
	if !enqueued {
		return nil
	}
	return PickMLFQ(t)
}
