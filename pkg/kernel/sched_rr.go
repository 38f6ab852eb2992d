package kernel

// PickRR selects the first RUNNABLE process found scanning the table
// in slot order, mirroring original_source/proc.c's round-robin
// scheduler: the outer `for(;;)` restarts the scan from ptable.proc[0]
// every time around, so the "round robin" comes entirely from a
// process's state no longer being RUNNABLE while it runs — not from
// any cursor remembering where the last scan left off. The table lock
// must be held.
func PickRR(t *Table) *Proc {
	var picked *Proc
	t.forEachLocked(func(p *Proc) {
		if picked == nil && p.state == StateRunnable {
			picked = p
		}
	})
	return picked
}
