package kernel

import (
	"fmt"

	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// ExecParams describes the new process image a call to Exec installs.
// It reuses the OCI runtime-spec's specs-go.Process shape (Args, Env,
// Cwd) rather than inventing a bespoke struct, per SPEC_FULL.md §4.2:
// this module has no ELF loader to feed, but the argv/envp/cwd triple
// original_source/proc.c's exec() takes is exactly what
// specs-go.Process already models for a container runtime's exec call.
type ExecParams struct {
	Spec specs.Process
}

// Exec replaces pid's address space with a fresh one and stores
// workload in its PCB, the way original_source/proc.c's exec() replaces
// a process's image in place while keeping its pid. The stored workload
// runs only if Exec happens before the process is first scheduled
// (runProc reads it once, on first resume); a process whose workload is
// already running keeps running it. A real exec syscall only ever
// originates from the process it targets (there is no "exec someone
// else" trap); callerPID must equal the target pid or ErrNotSelf is
// returned, per SPEC_FULL.md §4.2.
func (k *Kernel) Exec(callerPID, pid int, params ExecParams, workload Workload) error {
	if callerPID != pid {
		return ErrNotSelf
	}

	k.table.mu.Lock()
	p := k.table.findByPIDLocked(pid)
	k.table.mu.Unlock()
	if p == nil {
		return ErrUnknownPID
	}

	as, err := k.table.addrOps.Setup()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAddrSpace, err)
	}

	k.table.mu.Lock()
	old := p.addrSpace
	p.addrSpace = as
	p.sz = as.Size()
	if len(params.Spec.Args) > 0 {
		p.name = params.Spec.Args[0]
	}
	p.workload = workload
	k.table.mu.Unlock()

	k.table.addrOps.Free(old)
	return nil
}

// Exec is the ProcContext convenience a Workload calls to exec itself;
// it always targets the calling process, so ErrNotSelf can never occur
// through this path. The calling workload keeps running afterwards (see
// Kernel.Exec).
func (pc *ProcContext) Exec(params ExecParams, workload Workload) error {
	return pc.k.Exec(pc.proc.pid, pc.proc.pid, params, workload)
}
