package kernel

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mohae/deepcopy"
)

// SetPriority installs a new PBS priority for pid and returns the
// previous value. Mirrors original_source/proc.c's set_priority,
// including its "no-op, return old value" behavior when new == old.
func (k *Kernel) SetPriority(pid, priority int) (int, error) {
	k.table.mu.Lock()
	defer k.table.mu.Unlock()

	p := k.table.findByPIDLocked(pid)
	if p == nil {
		return -1, ErrUnknownPID
	}
	old := p.priority
	p.priority = priority
	return old, nil
}

// ProcInfo is the exported, copyable snapshot GetPInfo hands back —
// the Go-native struct proc_stat is populated into across the
// SYS_getpinfo trampoline in original_source/proc.c.
type ProcInfo struct {
	PID           int
	Name          string
	State         ProcState
	Priority      int
	Queue         int
	RunTime       int64
	WaitQueueTime int64
	NumRun        int
	TimeInQ       [NumQueues]int64
}

// GetPInfo snapshots pid's accounting fields. The snapshot is built
// under the table lock, then run through deepcopy so the caller's copy
// shares no backing array with kernel state (defensive, since TimeInQ
// is a fixed array value but ProcInfo may grow slice fields later).
func (k *Kernel) GetPInfo(pid int) (ProcInfo, error) {
	k.table.mu.Lock()
	p := k.table.findByPIDLocked(pid)
	if p == nil {
		k.table.mu.Unlock()
		return ProcInfo{}, ErrUnknownPID
	}
	info := ProcInfo{
		PID:           p.pid,
		Name:          p.name,
		State:         p.state,
		Priority:      p.priority,
		Queue:         p.queue,
		RunTime:       p.runTime,
		WaitQueueTime: p.waitQueueTime,
		NumRun:        p.numRun,
		TimeInQ:       p.timeInQ,
	}
	k.table.mu.Unlock()

	return deepcopy.Copy(info).(ProcInfo), nil
}

// ProcDump renders a best-effort, lock-free snapshot of every live
// process, mirroring original_source/proc.c's procdump: it is meant to
// be callable from a debugger-like context even if another goroutine
// holds the table lock, so it deliberately does not lock. Fields may be
// read mid-update; that's an accepted tradeoff for a diagnostic dump
// (SPEC_FULL.md §4.8).
func (k *Kernel) ProcDump() string {
	var b strings.Builder
	for _, p := range k.table.procs {
		if p.state == StateUnused {
			continue
		}
		// current_queue is displayed 1-based, matching the pinfo CLI's
		// display of queue levels.
		fmt.Fprintf(&b, "%d %-10s %-8s priority=%d queue=%d\n",
			p.pid, p.name, p.state, p.priority, p.queue+1)
		b.WriteString(spew.Sdump(struct {
			RunTime, WaitQueueTime int64
			NumRun                 int
			TimeInQ                [NumQueues]int64
		}{p.runTime, p.waitQueueTime, p.numRun, p.timeInQ}))
	}
	return b.String()
}
