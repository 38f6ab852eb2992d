package kernel

import "fmt"

// Fork creates a new process copying parent's address space size, open
// files, and cwd. Mirrors original_source/proc.c's fork.
//
// Go has no way to literally duplicate a running goroutine's point of
// execution the way copyuvm+trapframe-copy lets a forked process resume
// "mid-flight" and return 0 from the same call that returned the child's
// pid to the parent. Fork therefore takes an explicit childWorkload: the
// child's dedicated goroutine starts fresh at childWorkload instead of
// resuting parent's call stack. This is the one place SPEC_FULL.md's
// goroutine-per-process model diverges from the C semantics; everything
// else about the child PCB (sz, files, cwd, priority, queue placement)
// is copied exactly as fork() copies it.
func (k *Kernel) Fork(parent *Proc, childWorkload Workload) (int, error) {
	child, err := k.Allocproc()
	if err != nil {
		return -1, err
	}

	k.table.mu.Lock()
	parentSz := parent.sz
	parentAS := parent.addrSpace
	parentFiles := parent.files
	parentCwd := parent.cwd
	parentName := parent.name
	parentPriority := parent.priority
	k.table.mu.Unlock()

	as, err := k.table.addrOps.Copy(parentAS, parentSz)
	if err != nil {
		k.table.mu.Lock()
		k.table.freeLocked(child)
		k.table.mu.Unlock()
		return -1, fmt.Errorf("%w: %v", ErrAddrSpace, err)
	}

	k.table.mu.Lock()
	child.addrSpace = as
	child.sz = parentSz
	child.parent = parent
	child.files = parentFiles.dup()
	if parentCwd != nil {
		child.cwd = parentCwd.Dup()
	}
	child.name = parentName
	child.priority = parentPriority
	child.workload = childWorkload
	pid := child.pid
	k.table.mu.Unlock()

	go k.runProc(child)

	k.table.mu.Lock()
	child.state = StateRunnable
	k.table.mu.Unlock()

	return pid, nil
}
