package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/litekernel/xv6core/pkg/kernel"
)

// procdumpCmd is the Go-native procdump: a best-effort, lock-free
// table dump, the way original_source/proc.c's procdump is callable
// from a debugger console regardless of what else the kernel is doing.
type procdumpCmd struct {
	policy   string
	children int
	duration time.Duration
}

func (*procdumpCmd) Name() string     { return "procdump" }
func (*procdumpCmd) Synopsis() string { return "dump the process table of a demo kernel" }
func (*procdumpCmd) Usage() string {
	return "procdump [-policy rr|fcfs|pbs|mlfq] [-children N] [-for DURATION]\n"
}

func (c *procdumpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", string(kernel.PolicyMLFQ), "scheduling policy")
	f.IntVar(&c.children, "children", 4, "number of forked children to seed")
	f.DurationVar(&c.duration, "for", 20*time.Millisecond, "how long to run before dumping")
}

func (c *procdumpCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, _, err := bootDemoKernel(kernel.Policy(c.policy), c.children)
	if err != nil {
		fmt.Println("procdump:", err)
		return subcommands.ExitFailure
	}
	runFor(k, c.duration)
	fmt.Print(k.ProcDump())
	return subcommands.ExitSuccess
}
