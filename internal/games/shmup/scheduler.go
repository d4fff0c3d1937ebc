package shmup

import (
	"cmp"
	"slices"
	"time"
)

type task struct {
	at    time.Duration
	epoch uint64
	run   func()
}

// Scheduler runs deferred work against the simulation clock. It is owned by
// the tick driver and advanced once per simulated tick, so paused games do
// not run tasks. Tasks scheduled before the last Invalidate never run.
type Scheduler struct {
	now   time.Duration
	epoch uint64
	tasks []task
}

// Now returns the simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d of simulation time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.tasks = append(s.tasks, task{at: s.now + d, epoch: s.epoch, run: fn})
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Invalidate drops every pending task. Tasks already due in the current
// Advance call are skipped as well.
func (s *Scheduler) Invalidate() {
	s.epoch++
	clear(s.tasks)
	s.tasks = s.tasks[:0]
}

// Reset drops every pending task and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.Invalidate()
	s.now = 0
}

// Advance moves the clock forward by dt and runs every task that became due,
// earliest first. Tasks may schedule further tasks.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt

	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.at <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	slices.SortStableFunc(due, func(a, b task) int {
		return cmp.Compare(a.at, b.at)
	})
	for _, t := range due {
		if t.epoch != s.epoch {
			continue
		}
		t.run()
	}
}
