package kernel

import (
	"context"
	"testing"
	"time"
)

func TestFork_CopiesParentAccounting(t *testing.T) {
	k := NewKernel(Default(), nil, nil, nil)

	var childPID int
	childDone := make(chan struct{})
	shell := func(ctx *ProcContext) {
		k.table.mu.Lock()
		ctx.Proc().priority = 33
		ctx.Proc().name = "shell"
		k.table.mu.Unlock()

		pid, err := k.Fork(ctx.Proc(), func(*ProcContext) {})
		if err != nil {
			t.Errorf("Fork: %v", err)
		}
		childPID = pid
		close(childDone)
		for {
			ctx.Yield()
		}
	}
	if _, err := k.Userinit("shell", shell); err != nil {
		t.Fatalf("Userinit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	go func() { _ = k.Run(ctx, time.Millisecond) }()

	select {
	case <-childDone:
	case <-ctx.Done():
		t.Fatal("timed out waiting for fork")
	}

	k.table.mu.Lock()
	child := k.table.findByPIDLocked(childPID)
	k.table.mu.Unlock()
	if child == nil {
		t.Fatal("forked child not found in table")
	}
	if child.priority != 33 {
		t.Fatalf("child.priority = %d, want 33 (copied from parent)", child.priority)
	}
	if child.name != "shell" {
		t.Fatalf("child.name = %q, want %q (copied from parent)", child.name, "shell")
	}
	if child.parent != k.table.findByPIDLocked(1) {
		t.Fatal("child.parent does not point back to the forking process")
	}
}
