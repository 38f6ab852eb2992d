package kernel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// idlePoll is how long a CPU loop backs off when it finds nothing
// runnable, so an empty table doesn't spin a host CPU core at 100%.
const idlePoll = 100 * time.Microsecond

// CPU is one scheduler loop, analogous to the per-core scheduler()
// function in original_source/proc.c. SPEC_FULL.md §2 runs NCPU of
// these concurrently as goroutines, each repeatedly picking a RUNNABLE
// process under the policy, dispatching it, and reclaiming the CPU
// once it parks.
//
// cliDepth/intEnabled are the Go-native stand-in for mycpu()->ncli and
// mycpu()->intena described in SPEC_FULL.md §5: the original scheduler
// only ever enters sched() while holding exactly one lock (ptable.lock)
// and with interrupts off, and panics if either condition doesn't hold.
// Since this CPU's own scheduling section (pick-and-mark, guarded by
// Table.mu) is the only place that plays the role of that held lock,
// pushcli/popcli are modeled here rather than threaded through every
// process goroutine.
type CPU struct {
	id int
	k  *Kernel

	cliDepth   int
	intEnabled bool
}

// ID returns this CPU's index, 0..NCPU-1.
func (c *CPU) ID() int { return c.id }

// PushCli is the Go-native pushcli(): entering a nested critical
// section disables interrupts on the outermost call. The prior
// interrupt state is not saved, and PopCli never re-enables interrupts;
// nothing in this module sets intEnabled to true.
func (c *CPU) PushCli() {
	if c.cliDepth == 0 {
		c.intEnabled = false
	}
	c.cliDepth++
}

// PopCli is the Go-native popcli(): panics on an unmatched call, the
// same invariant violation original_source/proc.c's popcli panics on
// ("popcli - interrupts enabled" / called without a matching pushcli).
func (c *CPU) PopCli() {
	if c.cliDepth == 0 {
		panic("kernel: popcli called with cliDepth == 0")
	}
	c.cliDepth--
}

// Run is the scheduler() loop: repeatedly dispatch a process until ctx
// is cancelled. Mirrors original_source/proc.c's scheduler, adapted
// per DESIGN.md "Context switch modeling" to dispatch-scoped locking
// (one table-lock acquisition per pick, not one held across the whole
// run).
func (c *CPU) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !c.k.dispatchOnce(c) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(idlePoll):
			}
		}
	}
}

// dispatchOnce picks one RUNNABLE process under the configured policy,
// marks it RUNNING, and hands it the CPU for exactly one scheduling
// round. Returns false if nothing was runnable.
func (k *Kernel) dispatchOnce(c *CPU) bool {
	c.PushCli()
	k.table.mu.Lock()
	p := k.pickNextLocked()
	if p == nil {
		k.table.mu.Unlock()
		c.PopCli()
		return false
	}
	schedPreconditions(c, p)
	p.state = StateRunning
	p.numRun++
	k.table.mu.Unlock()
	c.PopCli()

	p.ctx.runOnce()
	return true
}

// schedPreconditions panics on the same programmer-invariant violations
// original_source/proc.c's sched() panics on: called with the wrong
// nesting of the held lock, or about to dispatch a process that is
// already RUNNING. The table lock must be held by the caller.
func schedPreconditions(c *CPU, p *Proc) {
	if c.cliDepth != 1 {
		panic("kernel: sched called with cliDepth != 1")
	}
	if c.intEnabled {
		panic("kernel: sched called with interrupts enabled")
	}
	if p.state == StateRunning {
		panic("kernel: sched dispatching an already-RUNNING process")
	}
}

// pickNextLocked dispatches to the configured policy's selection
// function. The table lock must be held.
func (k *Kernel) pickNextLocked() *Proc {
	switch k.config.resolvedPolicy() {
	case PolicyFCFS:
		return PickFCFS(k.table)
	case PolicyPBS:
		return PickPBS(k.table)
	case PolicyMLFQ:
		return PickMLFQ(k.table)
	case PolicyRR, "":
		return PickRR(k.table)
	default:
		panic("kernel: unknown policy " + string(k.config.resolvedPolicy()))
	}
}

// Run starts every CPU's scheduler loop and the tick driver concurrently,
// supervised by an errgroup.Group: if any goroutine returns a non-nil
// error, the others are cancelled too. Mirrors SPEC_FULL.md §5: the
// CPUs and the tick driver run as siblings under one errgroup.
func (k *Kernel) Run(ctx context.Context, tickInterval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range k.cpus {
		c := c
		g.Go(func() error { return c.Run(ctx) })
	}
	g.Go(func() error { return k.runTickDriver(ctx, tickInterval) })
	return g.Wait()
}
