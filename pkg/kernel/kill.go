package kernel

// Kill marks the process with the given pid as killed and, if it is
// currently sleeping, wakes it so the kill can take effect. Mirrors
// original_source/proc.c's kill(): killing never forcibly stops a
// running process, it only sets a flag a cooperative Workload is
// expected to observe via ProcContext.Killed and act on.
func (k *Kernel) Kill(pid int) error {
	k.table.mu.Lock()
	defer k.table.mu.Unlock()

	p := k.table.findByPIDLocked(pid)
	if p == nil {
		return ErrUnknownPID
	}
	p.killed = true
	if p.state == StateSleeping {
		p.state = StateRunnable
		if k.config.resolvedPolicy() == PolicyMLFQ {
			k.table.mlfq.enqueue(p.queue, p)
		}
	}
	return nil
}
