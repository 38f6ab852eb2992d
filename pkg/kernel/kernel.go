package kernel

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Kernel owns the process table, the per-CPU scheduler loops, and the
// monotonic tick counter. It is the single entry point lifecycle and
// introspection operations are methods on.
type Kernel struct {
	config Config
	log    *logrus.Logger

	table *Table

	ticks int64 // atomic; the stand-in for the timer-ISR-driven `ticks`

	cpus []*CPU

	mu       sync.Mutex // guards initproc assignment only
	initproc *Proc
}

// NewKernel constructs a Kernel with nproc process slots, wired to the
// given address-space and kernel-stack allocators (the out-of-scope
// setupkvm/copyuvm/freevm and kalloc/kfree collaborators of
// SPEC_FULL.md §3). Pass nil for either to get the in-memory defaults.
func NewKernel(cfg Config, addrOps AddressSpaceOps, kalloc KernelAllocator, log *logrus.Logger) *Kernel {
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("kernel: invalid config: %v", err))
	}
	if addrOps == nil {
		addrOps = InMemoryAddrSpaceOps{}
	}
	if kalloc == nil {
		kalloc = SliceAllocator{StackSize: cfg.KernelStackSize}
	}
	if log == nil {
		log = logrus.New()
	}
	k := &Kernel{
		config: cfg,
		log:    log,
		table:  NewTable(cfg.NPROC, addrOps, kalloc, log),
	}
	for i := 0; i < cfg.NCPU; i++ {
		k.cpus = append(k.cpus, &CPU{id: i, k: k})
	}
	return k
}

// Policy returns the kernel's resolved scheduling discipline.
func (k *Kernel) Policy() Policy { return k.config.resolvedPolicy() }

// Ticks returns the current value of the monotonic tick counter.
func (k *Kernel) Ticks() int64 { return atomic.LoadInt64(&k.ticks) }

// CPUs returns the kernel's per-CPU scheduler loops.
func (k *Kernel) CPUs() []*CPU { return k.cpus }

// NPROC returns the fixed capacity of the process table.
func (k *Kernel) NPROC() int { return len(k.table.procs) }
