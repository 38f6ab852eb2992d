// Package kernel implements the process table and scheduler core of a
// small teaching kernel: a fixed-size process table, four selectable
// scheduling policies, sleep/wakeup, and the lifecycle operations that
// drive processes between them.
package kernel

import (
	"fmt"
)

// ProcState is one of the six states a Proc can occupy.
type ProcState int

const (
	// StateUnused marks a free process-table slot.
	StateUnused ProcState = iota
	// StateEmbryo marks a slot allocated but not yet runnable.
	StateEmbryo
	// StateSleeping marks a process blocked on a SleepChannel.
	StateSleeping
	// StateRunnable marks a process ready to be scheduled.
	StateRunnable
	// StateRunning marks the process currently executing on a CPU.
	StateRunning
	// StateZombie marks a process that has exited but not yet been reaped.
	StateZombie
)

func (s ProcState) String() string {
	switch s {
	case StateUnused:
		return "unused"
	case StateEmbryo:
		return "embryo"
	case StateSleeping:
		return "sleeping"
	case StateRunnable:
		return "runnable"
	case StateRunning:
		return "running"
	case StateZombie:
		return "zombie"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// NumQueues is the number of MLFQ priority levels.
const NumQueues = 5

// DefaultPriority is the priority assigned to every newly allocated
// process under PBS.
const DefaultPriority = 60

// NOFILE bounds the open-file table carried by every Proc.
const NOFILE = 16

// SleepChannel is the opaque key a sleeping process waits on. The zero
// value means "not sleeping". Callers typically pass the address of
// some piece of kernel state (a *Proc, a *Table) as the channel.
type SleepChannel any

// Proc is a single process-table slot: the PCB described in SPEC_FULL.md §3.
type Proc struct {
	// slot is this PCB's fixed index in the table's backing array.
	slot int

	state ProcState
	pid   int

	parent *Proc

	addrSpace AddressSpace
	sz        int

	kstack []byte
	ctx    *Context

	chan_  SleepChannel
	killed bool

	files FileTable
	cwd   FileHandle

	name string

	startTime int64
	endTime   int64
	runTime   int64

	waitQueueTime int64

	priority int
	queue    int
	curTime  int
	numRun   int
	timeInQ  [NumQueues]int64

	// queuedAt records which MLFQ level this Proc currently sits in, or
	// -1 if it is not enqueued anywhere. Maintained under the table
	// lock; see DESIGN.md MLFQ ring queues for why this replaces the
	// original five-queue membership scan.
	queuedAt int

	workload Workload
}

// PID returns the process's pid, or 0 if the slot is UNUSED.
func (p *Proc) PID() int { return p.pid }

// State returns the process's current state. Safe to call without the
// table lock only for best-effort diagnostics (ProcDump); every other
// caller must hold Table.mu.
func (p *Proc) State() ProcState { return p.state }

// Name returns the process's debug name.
func (p *Proc) Name() string { return p.name }

// Killed reports whether Kill has been called on this process.
func (p *Proc) Killed() bool { return p.killed }

// Priority returns the process's current PBS priority.
func (p *Proc) Priority() int { return p.priority }

// Queue returns the process's current MLFQ level.
func (p *Proc) Queue() int { return p.queue }
