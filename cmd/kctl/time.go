package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/litekernel/xv6core/pkg/kernel"
)

// timeCmd is the Go-native "time" utility: it forks a short-lived
// child, waits on it with WaitX, and reports the runTime/waitTime
// breakdown original_source/proc.c's waitx exposes.
type timeCmd struct {
	policy string
}

func (*timeCmd) Name() string     { return "time" }
func (*timeCmd) Synopsis() string { return "time a forked child via waitx" }
func (*timeCmd) Usage() string    { return "time [-policy rr|fcfs|pbs|mlfq]\n" }

func (c *timeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", string(kernel.PolicyRR), "scheduling policy")
}

func (c *timeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg := kernel.Default()
	cfg.Policy = kernel.Policy(c.policy)
	k := kernel.NewKernel(cfg, nil, nil, nil)

	result := make(chan kernel.WaitInfo, 1)
	var childPID int
	shell := func(ctx *kernel.ProcContext) {
		pid, err := k.Fork(ctx.Proc(), spin(8))
		if err != nil {
			result <- kernel.WaitInfo{}
		} else {
			childPID = pid
			info, _ := ctx.WaitX()
			result <- info
		}
		// initproc must never return from its Workload (Exit forbids
		// it); idle forever once the result has been reported.
		for {
			ctx.Yield()
		}
	}

	if _, err := k.Userinit("shell", shell); err != nil {
		fmt.Println("time:", err)
		return subcommands.ExitFailure
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	go func() { _ = k.Run(ctx, time.Millisecond) }()

	select {
	case info := <-result:
		fmt.Printf("child pid=%d runTime=%d waitTime=%d\n", childPID, info.RunTime, info.WaitTime)
	case <-ctx.Done():
		fmt.Println("time: timed out waiting for child")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
