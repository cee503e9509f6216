package service

import "sync"

// projectLocks serializes board mutations per project so two concurrent
// reorders cannot interleave their read-renumber-write sequences. Boards from
// different projects stay fully parallel. Entries are reference-counted and
// removed once the last holder releases, so the map only tracks projects with
// in-flight mutations.
type projectLocks struct {
	mu    sync.Mutex
	locks map[int64]*projectLock
}

type projectLock struct {
	mu   sync.Mutex
	refs int
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[int64]*projectLock)}
}

// Lock acquires the lock for projectID and returns the matching unlock.
func (p *projectLocks) Lock(projectID int64) func() {
	p.mu.Lock()
	l, ok := p.locks[projectID]
	if !ok {
		l = &projectLock{}
		p.locks[projectID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, projectID)
		}
		p.mu.Unlock()
	}
}
