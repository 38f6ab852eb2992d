package kernel

import "testing"

func TestPickPBS_LowestPriorityValueWins(t *testing.T) {
	tb := newTestTable(3)
	tb.procs[0].state = StateRunnable
	tb.procs[0].priority = 80
	tb.procs[1].state = StateRunnable
	tb.procs[1].priority = 20
	tb.procs[2].state = StateRunnable
	tb.procs[2].priority = 60

	got := PickPBS(tb)
	if got != tb.procs[1] {
		t.Fatalf("PickPBS = slot %d (priority %d), want slot 1 (priority 20)", got.slot, got.priority)
	}
}

// TestPickPBS_TiesAreNotRotated documents the preserved open question
// from DESIGN.md: PickPBS recomputes the minimum from scratch every
// call, so two RUNNABLE processes tied for lowest priority are not
// rotated between — the same slot wins every time the tie persists.
func TestPickPBS_TiesAreNotRotated(t *testing.T) {
	tb := newTestTable(3)
	tb.procs[0].state = StateRunnable
	tb.procs[0].priority = 40
	tb.procs[1].state = StateRunnable
	tb.procs[1].priority = 40

	first := PickPBS(tb)
	second := PickPBS(tb)
	if first != tb.procs[0] || second != tb.procs[0] {
		t.Fatalf("PickPBS = (%d, %d), want slot 0 both times (no rotation among ties)", first.slot, second.slot)
	}
}
