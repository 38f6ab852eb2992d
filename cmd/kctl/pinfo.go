package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/litekernel/xv6core/pkg/kernel"
)

// pinfoCmd is the Go-native pinfo_tester: it reports one process's
// accounting snapshot as JSON, the way state.go marshals container
// state straight to stdout.
type pinfoCmd struct {
	pid    int
	policy string
}

func (*pinfoCmd) Name() string     { return "pinfo" }
func (*pinfoCmd) Synopsis() string { return "print a process's accounting snapshot" }
func (*pinfoCmd) Usage() string    { return "pinfo -pid PID [-policy rr|fcfs|pbs|mlfq]\n" }

func (c *pinfoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pid, "pid", 1, "pid to inspect")
	f.StringVar(&c.policy, "policy", string(kernel.PolicyRR), "scheduling policy")
}

func (c *pinfoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, _, err := bootDemoKernel(kernel.Policy(c.policy), 3)
	if err != nil {
		fmt.Println("pinfo:", err)
		return subcommands.ExitFailure
	}
	runFor(k, 20*time.Millisecond)

	info, err := k.GetPInfo(c.pid)
	if err != nil {
		fmt.Println("pinfo:", err)
		return subcommands.ExitFailure
	}
	// current_queue is displayed 1-based, as ProcDump shows it.
	info.Queue++
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		fmt.Println("pinfo:", err)
		return subcommands.ExitFailure
	}
	os.Stdout.Write(b)
	os.Stdout.WriteString("\n")
	return subcommands.ExitSuccess
}
