package kernel

// exit is the Exit operation of SPEC_FULL.md §4.3. It is never called
// directly by a Workload; runProc calls it once the workload returns
// (see DESIGN.md "Context switch modeling"). Mirrors
// original_source/proc.c's exit(): forbidden for initproc, closes open
// files, wakes a sleeping parent, re-parents orphaned children to
// initproc, stamps endTime, and transitions to ZOMBIE before parking
// for good.
func (k *Kernel) exit(p *Proc) {
	k.mu.Lock()
	isInit := p == k.initproc
	k.mu.Unlock()
	if isInit {
		panic(ErrInitExit)
	}

	p.files.closeAll()
	if p.cwd != nil {
		p.cwd.Close()
		p.cwd = nil
	}

	k.table.mu.Lock()
	k.wakeupLocked(p.parent)

	k.table.forEachLocked(func(child *Proc) {
		if child.parent == p {
			k.mu.Lock()
			child.parent = k.initproc
			k.mu.Unlock()
			if child.state == StateZombie {
				k.wakeupLocked(k.initproc)
			}
		}
	})

	p.endTime = k.Ticks()
	p.state = StateZombie
	k.table.mu.Unlock()

	p.ctx.parkFinal()
}
