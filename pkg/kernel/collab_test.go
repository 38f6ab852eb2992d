package kernel

import "testing"

type fakeFile struct{ closed, dups int }

func (f *fakeFile) Dup() FileHandle { f.dups++; return f }
func (f *fakeFile) Close()          { f.closed++ }

func TestFileTable_DupCopiesOpenHandlesOnly(t *testing.T) {
	var ft FileTable
	f := &fakeFile{}
	ft[3] = f

	dup := ft.dup()
	if dup[3] != f {
		t.Fatal("dup() did not carry over the open handle")
	}
	if f.dups != 1 {
		t.Fatalf("Dup() called %d times, want 1", f.dups)
	}
	for i, h := range dup {
		if i != 3 && h != nil {
			t.Fatalf("slot %d unexpectedly non-nil after dup", i)
		}
	}
}

func TestFileTable_CloseAllClosesAndClears(t *testing.T) {
	var ft FileTable
	f := &fakeFile{}
	ft[0] = f

	ft.closeAll()
	if f.closed != 1 {
		t.Fatalf("Close() called %d times, want 1", f.closed)
	}
	if ft[0] != nil {
		t.Fatal("closeAll did not clear the slot")
	}
}

func TestInMemoryAddrSpaceOps_GrowRejectsNegativeResult(t *testing.T) {
	ops := InMemoryAddrSpaceOps{}
	if _, _, err := ops.Grow(nil, 10, -20); err == nil {
		t.Fatal("Grow did not reject a negative resulting size")
	}
}

func TestInMemoryAddrSpaceOps_CopyPreservesSize(t *testing.T) {
	ops := InMemoryAddrSpaceOps{}
	as, err := ops.Copy(nil, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if as.Size() != 4096 {
		t.Fatalf("Size() = %d, want 4096", as.Size())
	}
}
