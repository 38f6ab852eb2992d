package kernel

import "testing"

func TestPopCli_PanicsOnUnmatchedCall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PopCli with cliDepth == 0 did not panic")
		}
	}()
	c := &CPU{id: 0}
	c.PopCli()
}

func TestPushCliPopCli_Nests(t *testing.T) {
	c := &CPU{id: 0}
	c.PushCli()
	c.PushCli()
	if c.cliDepth != 2 {
		t.Fatalf("cliDepth = %d, want 2", c.cliDepth)
	}
	c.PopCli()
	c.PopCli()
	if c.cliDepth != 0 {
		t.Fatalf("cliDepth = %d, want 0", c.cliDepth)
	}
}

func TestSchedPreconditions_PanicsOnAlreadyRunningProcess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("schedPreconditions did not panic for a RUNNING process")
		}
	}()
	c := &CPU{id: 0}
	c.PushCli()
	p := &Proc{state: StateRunning}
	schedPreconditions(c, p)
}

func TestAssertParkable_PanicsForRunningState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("assertParkable did not panic for a RUNNING process")
		}
	}()
	assertParkable(&Proc{state: StateRunning})
}
