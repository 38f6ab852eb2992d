package kernel

import "errors"

// Recoverable failures (spec.md §7 tier 2): returned to the caller
// alongside the legacy -1/nil sentinel, never panicked.
var (
	// ErrNoFreeSlot is returned by Allocproc when the process table is full.
	ErrNoFreeSlot = errors.New("kernel: no free process slots")
	// ErrStackAlloc is returned when the kernel-stack allocator fails.
	ErrStackAlloc = errors.New("kernel: kernel stack allocation failed")
	// ErrAddrSpace is returned when an address-space operation fails.
	ErrAddrSpace = errors.New("kernel: address space operation failed")
	// ErrNoChildren is returned by Wait/WaitX when the caller has no children.
	ErrNoChildren = errors.New("kernel: no children to wait for")
	// ErrKilled is returned by Wait/WaitX when the caller has been killed.
	ErrKilled = errors.New("kernel: caller has been killed")
	// ErrUnknownPID is returned by Kill/SetPriority/GetPInfo for an unknown pid.
	ErrUnknownPID = errors.New("kernel: unknown pid")
	// ErrNotSelf is returned by Exec when called on behalf of another process.
	ErrNotSelf = errors.New("kernel: exec must target the calling process")
	// ErrInitExit is the programmer-invariant violation (tier 1, panics) for
	// initproc calling Exit; kept as a named error for the panic message.
	ErrInitExit = errors.New("kernel: init exiting")
)
