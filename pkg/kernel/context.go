package kernel

// Context is the trap-frame/register-state stand-in described in
// SPEC_FULL.md §4.5: a baton hand-off between a CPU's scheduler loop and
// a process's dedicated goroutine, modeling swtch(&cpu.scheduler_ctx,
// pcb.context) without any real register or stack manipulation.
//
// Exactly one side sends on a given channel at a time, by construction:
// the CPU sends on resume then receives on parked; the process receives
// on resume then eventually sends on parked. Neither channel is ever
// sent on twice in a row by the same side, so the hand-off cannot race.
type Context struct {
	resume chan struct{}
	parked chan struct{}
}

func newContext() *Context {
	return &Context{
		resume: make(chan struct{}),
		parked: make(chan struct{}),
	}
}

// runOnce hands control to the process goroutine and blocks until it
// parks (yields, sleeps, or exits). This is the CPU side of swtch.
func (c *Context) runOnce() {
	c.resume <- struct{}{}
	<-c.parked
}

// ProcContext is what a Workload receives: the only surface it can use
// to cooperate with the scheduler. A Workload must never touch its Proc
// or the Table directly.
type ProcContext struct {
	k    *Kernel
	proc *Proc
}

// Yield gives up the CPU for one scheduling round (see Kernel.Yield).
func (pc *ProcContext) Yield() {
	pc.k.Yield(pc.proc)
}

// SleepOn suspends the calling process until Wakeup(chan_) is called
// (see Kernel.Sleep).
func (pc *ProcContext) SleepOn(chan_ SleepChannel) {
	pc.k.Sleep(pc.proc, chan_)
}

// Wait blocks until one of the calling process's children exits,
// reaps it, and returns its pid (see Kernel.Wait).
func (pc *ProcContext) Wait() (int, error) {
	return pc.k.Wait(pc.proc)
}

// WaitX behaves like Wait but also reports the reaped child's timing
// accounting (see Kernel.WaitX).
func (pc *ProcContext) WaitX() (WaitInfo, error) {
	return pc.k.WaitX(pc.proc)
}

// Killed reports whether Kill has been called on this process. A
// cooperative Workload should check this periodically and return
// (triggering Exit) when true.
func (pc *ProcContext) Killed() bool {
	pc.k.table.mu.Lock()
	defer pc.k.table.mu.Unlock()
	return pc.proc.killed
}

// PID returns the calling process's pid.
func (pc *ProcContext) PID() int { return pc.proc.pid }

// Proc returns the calling process's PCB, for passing to Kernel.Fork
// as the parent.
func (pc *ProcContext) Proc() *Proc { return pc.proc }

// park is called by the process goroutine's run loop to hand control
// back to whichever CPU resumed it, then block until resumed again.
// This is the process side of swtch.
func (c *Context) park() {
	c.parked <- struct{}{}
	<-c.resume
}

// parkFinal is called exactly once, when the process goroutine is about
// to return for good (the workload returned and exit has marked the
// process ZOMBIE). It signals parked but does not wait to be resumed
// again.
func (c *Context) parkFinal() {
	c.parked <- struct{}{}
}

// awaitFirstResume blocks the freshly-started process goroutine until
// the scheduler first runs it.
func (c *Context) awaitFirstResume() {
	<-c.resume
}
