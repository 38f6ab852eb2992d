package kernel

// WaitInfo carries the timing accounting waitx reports alongside the
// reaped child's pid, per SPEC_FULL.md §4.3.
type WaitInfo struct {
	PID      int
	RunTime  int64
	WaitTime int64
	EndTime  int64
}

// Wait blocks until a child of parent exits, reaps it, and returns its
// pid. Mirrors original_source/proc.c's wait(): scan for an existing
// zombie child first, and only sleep (on parent's own address, exactly
// as wakeup1(p->parent) expects) if none is ready yet.
func (k *Kernel) Wait(parent *Proc) (int, error) {
	info, err := k.waitCommon(parent)
	if err != nil {
		return -1, err
	}
	return info.PID, nil
}

// WaitX behaves like Wait but also reports the reaped child's runTime
// and waitQueueTime, the Go-native waitx.
func (k *Kernel) WaitX(parent *Proc) (WaitInfo, error) {
	return k.waitCommon(parent)
}

func (k *Kernel) waitCommon(parent *Proc) (WaitInfo, error) {
	k.table.mu.Lock()
	for {
		haveChildren := false
		var zombie *Proc
		k.table.forEachLocked(func(p *Proc) {
			if p.parent != parent {
				return
			}
			haveChildren = true
			if zombie == nil && p.state == StateZombie {
				zombie = p
			}
		})

		if zombie != nil {
			info := WaitInfo{
				PID:      zombie.pid,
				RunTime:  zombie.runTime,
				WaitTime: zombie.waitQueueTime,
				EndTime:  zombie.endTime,
			}
			k.table.addrOps.Free(zombie.addrSpace)
			k.table.kalloc.Free(zombie.kstack)
			k.table.freeLocked(zombie)
			k.table.mu.Unlock()
			return info, nil
		}

		if !haveChildren {
			k.table.mu.Unlock()
			return WaitInfo{}, ErrNoChildren
		}
		if parent.killed {
			k.table.mu.Unlock()
			return WaitInfo{}, ErrKilled
		}

		// Mark the parent SLEEPING while still holding the lock taken for
		// the scan above, so an exiting child's wakeup cannot fall between
		// the scan and the transition.
		parent.chan_ = parent
		parent.state = StateSleeping
		assertParkable(parent)
		k.table.mu.Unlock()
		parent.ctx.park()
		k.table.mu.Lock()
	}
}
