package kernel

import "testing"

func TestWakeup_OnlyWakesMatchingChannel(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	a := k.table.procs[0]
	b := k.table.procs[1]
	a.state, a.chan_ = StateSleeping, "chan-a"
	b.state, b.chan_ = StateSleeping, "chan-b"

	k.Wakeup("chan-a")

	if a.state != StateRunnable {
		t.Fatalf("a.state = %v, want RUNNABLE", a.state)
	}
	if b.state != StateSleeping {
		t.Fatalf("b.state = %v, want unchanged SLEEPING", b.state)
	}
}

func TestWakeup_NilChannelWakesNothing(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	p := k.table.procs[0]
	p.state, p.chan_ = StateSleeping, nil

	k.Wakeup(nil)

	if p.state != StateSleeping {
		t.Fatalf("p.state = %v, want unchanged SLEEPING (nil channel matches nothing)", p.state)
	}
}

func TestKill_WakesASleepingProcess(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	k.table.mu.Lock()
	p := k.table.allocprocLocked()
	p.state = StateSleeping
	p.chan_ = "somewhere"
	k.table.mu.Unlock()

	if err := k.Kill(p.pid); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if !p.killed {
		t.Fatal("p.killed = false after Kill")
	}
	if p.state != StateRunnable {
		t.Fatalf("p.state = %v after Kill on a sleeper, want RUNNABLE", p.state)
	}
}

func TestKill_UnknownPID(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)
	if err := k.Kill(9999); err != ErrUnknownPID {
		t.Fatalf("Kill unknown pid err = %v, want ErrUnknownPID", err)
	}
}
