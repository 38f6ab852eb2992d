package kernel

import "fmt"

// AddressSpace is the opaque handle a Proc owns over its user address
// space. The real kernel's setupkvm/copyuvm/freevm/allocuvm/deallocuvm
// are out of scope per SPEC_FULL.md §1; this interface is the seam a
// host program plugs a real implementation into.
type AddressSpace interface {
	// Size returns the current size, in bytes, of this address space.
	Size() int
}

// AddressSpaceOps is the injected collaborator standing in for
// setupkvm/copyuvm/freevm/allocuvm/deallocuvm.
type AddressSpaceOps interface {
	// Setup creates a fresh, empty address space (for Userinit).
	Setup() (AddressSpace, error)
	// Copy duplicates an address space of the given size (for Fork).
	Copy(as AddressSpace, sz int) (AddressSpace, error)
	// Grow resizes as by delta bytes (delta may be negative) and
	// returns the resulting address space and its new size.
	Grow(as AddressSpace, oldSize, delta int) (AddressSpace, int, error)
	// Free releases an address space (on reap).
	Free(as AddressSpace)
}

// KernelAllocator stands in for kalloc/kfree: it hands out the fixed-size
// buffer used as a process's kernel stack.
type KernelAllocator interface {
	Alloc() ([]byte, error)
	Free([]byte)
}

// FileHandle is a refcounted open-file stand-in. There is no real VFS in
// this module (out of scope per SPEC_FULL.md §1); this interface exists
// so Fork/Exit can exercise dup-on-fork and close-on-exit semantics.
type FileHandle interface {
	Dup() FileHandle
	Close()
}

// FileTable is a process's open-file table, indexed like the C ofile[NOFILE]
// array: a nil slot means closed.
type FileTable [NOFILE]FileHandle

// dup duplicates every open handle in ft into a new table (used by Fork).
func (ft FileTable) dup() FileTable {
	var out FileTable
	for i, f := range ft {
		if f != nil {
			out[i] = f.Dup()
		}
	}
	return out
}

// closeAll closes every open handle (used by Exit).
func (ft *FileTable) closeAll() {
	for i, f := range ft {
		if f != nil {
			f.Close()
			ft[i] = nil
		}
	}
}

// Workload is the function a Proc's dedicated goroutine runs once
// scheduled for the first time. It cooperates with the scheduler only
// through the ProcContext passed in: calling Yield, SleepOn, or simply
// returning (which the wrapper turns into Exit).
type Workload func(ctx *ProcContext)

// noopAddrSpace is the trivial AddressSpace used by the default
// in-memory AddressSpaceOps.
type noopAddrSpace struct{ size int }

func (a *noopAddrSpace) Size() int { return a.size }

// InMemoryAddrSpaceOps is a minimal AddressSpaceOps good enough to drive
// and test the lifecycle operations without a real MMU backing them.
type InMemoryAddrSpaceOps struct{}

// Setup implements AddressSpaceOps.
func (InMemoryAddrSpaceOps) Setup() (AddressSpace, error) {
	return &noopAddrSpace{}, nil
}

// Copy implements AddressSpaceOps.
func (InMemoryAddrSpaceOps) Copy(as AddressSpace, sz int) (AddressSpace, error) {
	return &noopAddrSpace{size: sz}, nil
}

// Grow implements AddressSpaceOps.
func (InMemoryAddrSpaceOps) Grow(as AddressSpace, oldSize, delta int) (AddressSpace, int, error) {
	newSize := oldSize + delta
	if newSize < 0 {
		return nil, 0, fmt.Errorf("kernel: address space cannot shrink below zero (have %d, delta %d)", oldSize, delta)
	}
	return &noopAddrSpace{size: newSize}, newSize, nil
}

// Free implements AddressSpaceOps.
func (InMemoryAddrSpaceOps) Free(AddressSpace) {}

// SliceAllocator hands out plain Go byte slices of a fixed size as
// kernel stacks. It never fails; it exists so Allocproc has a concrete
// collaborator to call, matching kalloc's fallible signature.
type SliceAllocator struct {
	StackSize int
}

// Alloc implements KernelAllocator.
func (a SliceAllocator) Alloc() ([]byte, error) {
	size := a.StackSize
	if size <= 0 {
		size = 4096
	}
	return make([]byte, size), nil
}

// Free implements KernelAllocator.
func (a SliceAllocator) Free([]byte) {}
