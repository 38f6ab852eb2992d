package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/litekernel/xv6core/pkg/kernel"
)

// bootCmd boots a demo kernel under a chosen policy, runs it briefly,
// and prints a procdump. It is the closest analogue this module has to
// original_source's kernel boot sequence (main.c's userinit + mpmain).
type bootCmd struct {
	policy   string
	children int
	duration time.Duration
}

func (*bootCmd) Name() string     { return "boot" }
func (*bootCmd) Synopsis() string { return "boot a demo kernel and dump its process table" }
func (*bootCmd) Usage() string {
	return "boot [-policy rr|fcfs|pbs|mlfq] [-children N] [-for DURATION]\n"
}

func (c *bootCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", string(kernel.PolicyRR), "scheduling policy")
	f.IntVar(&c.children, "children", 3, "number of forked children to seed")
	f.DurationVar(&c.duration, "for", 50*time.Millisecond, "how long to run before dumping")
}

func (c *bootCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, _, err := bootDemoKernel(kernel.Policy(c.policy), c.children)
	if err != nil {
		fmt.Println("boot:", err)
		return subcommands.ExitFailure
	}
	runFor(k, c.duration)
	fmt.Print(k.ProcDump())
	return subcommands.ExitSuccess
}
