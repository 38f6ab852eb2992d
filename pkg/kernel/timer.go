package kernel

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// runTickDriver advances the tick counter at a fixed wall-clock cadence
// and performs the accounting original_source/proc.c spreads across
// update_proc_time and the timer-interrupt trap handler. Timer
// interrupts cannot forcibly preempt a Go goroutine the way a trap
// frame lets the C kernel abandon user code mid-instruction, so this
// driver only accounts; actual preemption stays cooperative, via
// Workload calling ProcContext.Yield (see DESIGN.md "Open Questions",
// item on quantum-expiry demotion).
func (k *Kernel) runTickDriver(ctx context.Context, interval time.Duration) error {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err == nil {
		k.log.WithField("boot_unix", tv.Sec).Info("kernel: tick driver starting")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			k.Tick()
		}
	}
}

// Tick is the Go-native update_proc_time: it advances the monotonic
// tick counter and, for every live process, accounts runTime (RUNNING)
// or waitQueueTime (RUNNABLE/SLEEPING). Under MLFQ a RUNNING process
// also accrues curTime and timeInQ[queue] — ticks spent running at that
// level, not ticks spent waiting — plus aging promotion.
func (k *Kernel) Tick() {
	atomic.AddInt64(&k.ticks, 1)

	k.table.mu.Lock()
	defer k.table.mu.Unlock()

	policy := k.config.resolvedPolicy()
	k.table.forEachLocked(func(p *Proc) {
		switch p.state {
		case StateRunning:
			p.runTime++
			if policy == PolicyMLFQ {
				p.curTime++
				if p.queue >= 0 && p.queue < NumQueues {
					p.timeInQ[p.queue]++
				}
			}
		case StateRunnable, StateSleeping:
			p.waitQueueTime++
		}
	})

	if policy == PolicyMLFQ {
		k.ageMLFQLocked()
	}
}

// ageMLFQLocked promotes any RUNNABLE, currently-enqueued process whose
// waitQueueTime has exceeded Config.MaxAge by one level, resetting its
// wait clock. Mirrors original_source/proc.c's aging pass: this is a
// promotion-only mechanism, it never demotes (demotion is Yield's job
// exclusively, per SPEC_FULL.md §4.6). The table lock must be held.
func (k *Kernel) ageMLFQLocked() {
	k.table.forEachLocked(func(p *Proc) {
		if p.state != StateRunnable || p.queuedAt == -1 {
			return
		}
		if p.waitQueueTime <= k.config.MaxAge {
			return
		}
		level := p.queuedAt
		if level == 0 {
			p.waitQueueTime = 0
			return
		}
		if !k.table.mlfq.removeLocked(level, p) {
			return
		}
		p.queue = level - 1
		k.table.mlfq.enqueue(p.queue, p)
		p.waitQueueTime = 0
	})
}
