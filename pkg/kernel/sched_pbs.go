package kernel

// PickPBS selects the RUNNABLE process with the lowest priority value
// (lower is more urgent), ties broken by slot order. Mirrors
// original_source/proc.c's PBS scheduler: minProc is recomputed from
// scratch on every scheduler() call by scanning the whole table, with
// no memory of which tied process ran last. SPEC_FULL.md §9 flags this
// as the documented possibly-unintended behavior: among several
// RUNNABLE processes that share the minimum priority, the same one
// (the first encountered in slot order) is re-selected every time,
// starving its tied siblings rather than rotating among them. Left as
// is per DESIGN.md "Open Questions". The table lock must be held.
func PickPBS(t *Table) *Proc {
	var picked *Proc
	t.forEachLocked(func(p *Proc) {
		if p.state != StateRunnable {
			return
		}
		if picked == nil || p.priority < picked.priority {
			picked = p
		}
	})
	return picked
}
