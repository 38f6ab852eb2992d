package kernel

import "fmt"

// GrowProc resizes the calling process's address space by n bytes (n
// may be negative to shrink). Mirrors original_source/proc.c's
// growproc.
func (k *Kernel) GrowProc(p *Proc, n int) error {
	k.table.mu.Lock()
	as := p.addrSpace
	oldSize := p.sz
	k.table.mu.Unlock()

	newAS, newSize, err := k.table.addrOps.Grow(as, oldSize, n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAddrSpace, err)
	}

	k.table.mu.Lock()
	p.addrSpace = newAS
	p.sz = newSize
	k.table.mu.Unlock()
	return nil
}
