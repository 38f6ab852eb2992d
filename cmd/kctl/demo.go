// Command kctl is a small control surface over an in-process Kernel,
// the Go-native replacement for the original C source's separate
// changeP/pinfo_tester/time user-space utilities (SPEC_FULL.md §6).
// Those utilities issue syscalls to a long-running kernel process;
// this module has no persistent kernel server to attach to, so each
// subcommand instead boots a short-lived demo Kernel, runs a small
// fixed set of workloads against it, and reports what it observes.
package main

import (
	"context"
	"time"

	"github.com/litekernel/xv6core/pkg/kernel"
	"github.com/sirupsen/logrus"
)

// spin is a cooperative Workload that yields n times before exiting,
// standing in for a CPU-bound user program.
func spin(n int) kernel.Workload {
	return func(ctx *kernel.ProcContext) {
		for i := 0; i < n && !ctx.Killed(); i++ {
			ctx.Yield()
		}
	}
}

// forever is the demo kernel's initproc workload: real init never
// exits, it loops reaping orphans (original_source/proc.c's init.c).
// Exit forbids initproc from calling it (see exit.go), so this
// workload must never return.
func forever() kernel.Workload {
	return func(ctx *kernel.ProcContext) {
		for {
			ctx.Yield()
		}
	}
}

// bootDemoKernel builds a Kernel under the given policy and seeds it
// with initproc plus a handful of forked children, for subcommands
// that need something to report on.
func bootDemoKernel(policy kernel.Policy, nchildren int) (*kernel.Kernel, *kernel.Proc, error) {
	cfg := kernel.Default()
	cfg.Policy = policy
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	k := kernel.NewKernel(cfg, nil, nil, log)

	initp, err := k.Userinit("init", forever())
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < nchildren; i++ {
		if _, err := k.Fork(initp, spin(10)); err != nil {
			return nil, nil, err
		}
	}
	return k, initp, nil
}

// runFor drives the kernel's CPUs and tick driver for d, then cancels.
func runFor(k *kernel.Kernel, d time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	_ = k.Run(ctx, time.Millisecond)
}
