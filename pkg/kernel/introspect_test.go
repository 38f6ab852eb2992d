package kernel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetPriority_ReturnsPreviousValue(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	k.table.mu.Lock()
	p := k.table.allocprocLocked()
	p.priority = 70
	k.table.mu.Unlock()

	old, err := k.SetPriority(p.pid, 10)
	if err != nil {
		t.Fatalf("SetPriority: %v", err)
	}
	if old != 70 {
		t.Fatalf("SetPriority returned old = %d, want 70", old)
	}
	if p.priority != 10 {
		t.Fatalf("p.priority = %d, want 10", p.priority)
	}
}

func TestGetPInfo_SnapshotMatchesLiveFields(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	k.table.mu.Lock()
	p := k.table.allocprocLocked()
	p.name = "worker"
	p.state = StateRunnable
	p.priority = 55
	p.queue = 2
	p.runTime = 12
	p.waitQueueTime = 3
	p.numRun = 4
	k.table.mu.Unlock()

	got, err := k.GetPInfo(p.pid)
	if err != nil {
		t.Fatalf("GetPInfo: %v", err)
	}
	want := ProcInfo{
		PID: p.pid, Name: "worker", State: StateRunnable,
		Priority: 55, Queue: 2, RunTime: 12, WaitQueueTime: 3, NumRun: 4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetPInfo snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPInfo_UnknownPID(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	if _, err := k.GetPInfo(9999); err != ErrUnknownPID {
		t.Fatalf("GetPInfo err = %v, want ErrUnknownPID", err)
	}
}
