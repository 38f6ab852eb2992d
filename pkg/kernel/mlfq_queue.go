package kernel

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ringCapacity is the fixed capacity of each MLFQ ring buffer, per
// SPEC_FULL.md §4.7.
const ringCapacity = 100

// mlfqRing is one bounded FIFO ring buffer of *Proc references.
type mlfqRing struct {
	buf   [ringCapacity]*Proc
	front int // -1 means empty
	rear  int
	size  int
}

func newMLFQRing() *mlfqRing {
	return &mlfqRing{front: -1, rear: -1}
}

func (r *mlfqRing) isEmpty() bool { return r.front == -1 }

func (r *mlfqRing) isFull() bool {
	return r.front == (r.rear+1)%ringCapacity && r.size == ringCapacity
}

// enqueue appends p to the ring. If the ring is full, p is silently
// dropped; the caller (mlfq.enqueue) logs that soft error and is
// responsible for the cross-level dedup described in SPEC_FULL.md §4.7/§9.
func (r *mlfqRing) enqueue(p *Proc) {
	if r.isFull() {
		return
	}
	r.size++
	if r.front == -1 {
		r.front = 0
	}
	r.rear = (r.rear + 1) % ringCapacity
	r.buf[r.rear] = p
}

// dequeue removes and returns the head element. Precondition: !isEmpty().
func (r *mlfqRing) dequeue() *Proc {
	p := r.buf[r.front]
	r.buf[r.front] = nil
	if r.front == r.rear {
		r.front, r.rear = -1, -1
	} else {
		r.front = (r.front + 1) % ringCapacity
	}
	r.size--
	return p
}

// mlfq owns the five ring levels and the soft-error log throttle.
type mlfq struct {
	levels     [NumQueues]*mlfqRing
	log        *logrus.Logger
	overflowed rate.Sometimes
}

func newMLFQ(log *logrus.Logger) *mlfq {
	m := &mlfq{log: log}
	for i := range m.levels {
		m.levels[i] = newMLFQRing()
	}
	return m
}

// enqueue places p at the given level, deduplicating against whatever
// level p is currently recorded at (p.queuedAt), per SPEC_FULL.md's
// per-PCB membership field (DESIGN.md "MLFQ ring queues"). Precondition:
// the table lock is held.
func (m *mlfq) enqueue(level int, p *Proc) {
	if p.queuedAt != -1 {
		return
	}
	ring := m.levels[level]
	if ring.isFull() {
		m.overflowed.Do(func() {
			m.log.WithFields(logrus.Fields{"level": level, "pid": p.pid}).
				Warn("mlfq: ring queue full, dropping enqueue")
		})
		return
	}
	ring.enqueue(p)
	p.queuedAt = level
	p.curTime = 0
}

// dequeue removes and returns the head of the given level, or nil if empty.
func (m *mlfq) dequeue(level int) *Proc {
	ring := m.levels[level]
	if ring.isEmpty() {
		return nil
	}
	p := ring.dequeue()
	p.queuedAt = -1
	return p
}

func (m *mlfq) size(level int) int { return m.levels[level].size }
func (m *mlfq) empty(level int) bool { return m.levels[level].isEmpty() }

// removeLocked pulls p out of level's ring wherever it sits (not just
// the head), used by aging to promote a process mid-queue. Returns
// false if p wasn't found there. The table lock must be held.
func (m *mlfq) removeLocked(level int, p *Proc) bool {
	if m.levels[level].remove(p) {
		p.queuedAt = -1
		return true
	}
	return false
}

// remove scans the ring in FIFO order for p, removes it if present,
// and rebuilds the ring preserving the relative order of the rest.
func (r *mlfqRing) remove(p *Proc) bool {
	if r.isEmpty() {
		return false
	}
	var elems []*Proc
	i := r.front
	for {
		elems = append(elems, r.buf[i])
		if i == r.rear {
			break
		}
		i = (i + 1) % ringCapacity
	}

	idx := -1
	for i, e := range elems {
		if e == p {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	elems = append(elems[:idx], elems[idx+1:]...)

	r.front, r.rear, r.size = -1, -1, 0
	for i := range r.buf {
		r.buf[i] = nil
	}
	for _, e := range elems {
		r.enqueue(e)
	}
	return true
}
