package kernel

import (
	"sync"

	"github.com/google/btree"
	"github.com/sirupsen/logrus"
)

// pidItem is the btree.Item backing Table's secondary pid index. It is
// purely a derived lookup structure (DESIGN.md "Process Table"): the
// scheduling algorithms never consult it, only Kill/SetPriority/GetPInfo
// and the CLI do, because those operations look up by pid rather than
// scanning in table order.
type pidItem struct {
	pid  int
	proc *Proc
}

func (a pidItem) Less(than btree.Item) bool {
	return a.pid < than.(pidItem).pid
}

// Table is the fixed-size process table described in SPEC_FULL.md §3/§4.1:
// a single array of *Proc guarded by one lock, source of truth for every
// process state transition.
type Table struct {
	mu sync.Mutex

	procs   []*Proc
	byPID   *btree.BTree
	nextPID int

	mlfq *mlfq

	initproc *Proc

	addrOps AddressSpaceOps
	kalloc  KernelAllocator
}

// NewTable allocates a fixed-capacity table of nproc UNUSED slots.
func NewTable(nproc int, addrOps AddressSpaceOps, kalloc KernelAllocator, log *logrus.Logger) *Table {
	t := &Table{
		procs:   make([]*Proc, nproc),
		byPID:   btree.New(4),
		nextPID: 1,
		mlfq:    newMLFQ(log),
		addrOps: addrOps,
		kalloc:  kalloc,
	}
	for i := range t.procs {
		t.procs[i] = &Proc{slot: i, state: StateUnused, queuedAt: -1}
	}
	return t
}

// findByPIDLocked returns the Proc with the given pid, or nil. The table
// lock must be held.
func (t *Table) findByPIDLocked(pid int) *Proc {
	item := t.byPID.Get(pidItem{pid: pid})
	if item == nil {
		return nil
	}
	return item.(pidItem).proc
}

func (t *Table) indexPIDLocked(p *Proc) {
	t.byPID.ReplaceOrInsert(pidItem{pid: p.pid, proc: p})
}

func (t *Table) unindexPIDLocked(pid int) {
	t.byPID.Delete(pidItem{pid: pid})
}

// allocprocLocked scans for an UNUSED slot in table order (preserving
// the original linear-scan semantics) and reserves it as EMBRYO. The
// table lock must be held; it is NOT released by this function — the
// caller (Allocproc) releases it before doing the fallible kernel-stack
// allocation, exactly as original_source/proc.c's allocproc does.
func (t *Table) allocprocLocked() *Proc {
	for _, p := range t.procs {
		if p.state == StateUnused {
			p.state = StateEmbryo
			p.pid = t.nextPID
			t.nextPID++
			p.parent = nil
			p.sz = 0
			p.startTime = 0
			p.endTime = 0
			p.runTime = 0
			p.waitQueueTime = 0
			p.priority = DefaultPriority
			p.queue = 0
			p.curTime = 0
			p.numRun = 0
			p.timeInQ = [NumQueues]int64{}
			p.killed = false
			p.chan_ = nil
			p.files = FileTable{}
			p.cwd = nil
			p.name = ""
			p.queuedAt = -1
			t.indexPIDLocked(p)
			return p
		}
	}
	return nil
}

// freeLocked returns a reaped process's slot to UNUSED. The table lock
// must be held.
func (t *Table) freeLocked(p *Proc) {
	t.unindexPIDLocked(p.pid)
	p.state = StateUnused
	p.pid = 0
	p.parent = nil
	p.name = ""
	p.killed = false
	p.addrSpace = nil
	p.kstack = nil
	p.ctx = nil
	p.workload = nil
	p.queuedAt = -1
}

// forEachLocked iterates the table in index order, matching the linear
// scans in original_source/proc.c that this module keeps as scans
// (scheduler selection, wait/waitx, exit's re-parenting walk, wakeup);
// kill, set_priority and getpinfo look up by pid through byPID instead.
func (t *Table) forEachLocked(f func(*Proc)) {
	for _, p := range t.procs {
		f(p)
	}
}
