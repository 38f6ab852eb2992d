package kernel

// PickFCFS selects the RUNNABLE process with the earliest startTime,
// breaking ties by slot order. Mirrors original_source/proc.c's FCFS
// variant: a full scan every call, never preempting a running process
// early (the scheduler simply never picks a different process while
// the current one stays RUNNING). The table lock must be held.
func PickFCFS(t *Table) *Proc {
	var picked *Proc
	t.forEachLocked(func(p *Proc) {
		if p.state != StateRunnable {
			return
		}
		if picked == nil || p.startTime < picked.startTime {
			picked = p
		}
	})
	return picked
}
