package kernel

import "testing"

func TestDispatchOnce_RunsAWorkloadToCompletion(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	ran := make(chan struct{})

	p, err := k.Allocproc()
	if err != nil {
		t.Fatal(err)
	}
	p.workload = func(ctx *ProcContext) { close(ran) }
	go k.runProc(p)
	k.table.mu.Lock()
	p.state = StateRunnable
	k.table.mu.Unlock()

	c := &CPU{id: 0, k: k}
	if !k.dispatchOnce(c) {
		t.Fatal("dispatchOnce = false, want true (one RUNNABLE process)")
	}

	select {
	case <-ran:
	default:
		t.Fatal("workload did not run")
	}

	k.table.mu.Lock()
	state := p.state
	k.table.mu.Unlock()
	if state != StateZombie {
		t.Fatalf("p.state = %v after its workload returned, want ZOMBIE", state)
	}
}

func TestDispatchOnce_NothingRunnable(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	c := &CPU{id: 0, k: k}
	if k.dispatchOnce(c) {
		t.Fatal("dispatchOnce = true, want false (empty table)")
	}
}
