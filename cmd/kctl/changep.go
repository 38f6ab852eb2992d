package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/litekernel/xv6core/pkg/kernel"
)

// changePCmd is the Go-native changeP utility: it sets a process's PBS
// priority and reports the previous value.
type changePCmd struct {
	pid      int
	priority int
}

func (*changePCmd) Name() string     { return "changep" }
func (*changePCmd) Synopsis() string { return "change a process's PBS priority" }
func (*changePCmd) Usage() string    { return "changep -pid PID -priority N\n" }

func (c *changePCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pid, "pid", 2, "pid to change (demo kernel seeds init at pid 1, children after)")
	f.IntVar(&c.priority, "priority", 50, "new priority")
}

func (c *changePCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, _, err := bootDemoKernel(kernel.PolicyPBS, 3)
	if err != nil {
		fmt.Println("changep:", err)
		return subcommands.ExitFailure
	}
	old, err := k.SetPriority(c.pid, c.priority)
	if err != nil {
		fmt.Println("changep:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("pid %d: priority %d -> %d\n", c.pid, old, c.priority)
	return subcommands.ExitSuccess
}
