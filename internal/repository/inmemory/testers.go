package inmemory

import (
	"sync"
	"time"

	userdomain "testtrack/internal/domain/user"
)

type InMemoryTesterDirectory struct {
	mu         sync.RWMutex
	value      []userdomain.TesterInfo
	expiresAt  time.Time
	generation uint64
	now        func() time.Time
}

func NewInMemoryTesterDirectory() *InMemoryTesterDirectory {
	return &InMemoryTesterDirectory{now: time.Now}
}

func (c *InMemoryTesterDirectory) GetTesters() ([]userdomain.TesterInfo, uint64, bool) {
	now := c.now()

	c.mu.RLock()
	value, expiresAt, generation := c.value, c.expiresAt, c.generation
	c.mu.RUnlock()
	if value == nil {
		return nil, generation, false
	}

	if !expiresAt.After(now) {
		c.mu.Lock()
		if c.value != nil && !c.expiresAt.After(now) {
			c.value = nil
		}
		generation = c.generation
		c.mu.Unlock()
		return nil, generation, false
	}

	return cloneTesters(value), generation, true
}

// SetTesters stores testers unless Clear ran after generation was observed.
func (c *InMemoryTesterDirectory) SetTesters(testers []userdomain.TesterInfo, generation uint64, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}

	c.value = cloneTesters(testers)
	if c.value == nil {
		c.value = []userdomain.TesterInfo{}
	}
	c.expiresAt = c.now().Add(ttl)
	return true
}

func (c *InMemoryTesterDirectory) Clear() {
	c.mu.Lock()
	c.value = nil
	c.generation++
	c.mu.Unlock()
}

func cloneTesters(testers []userdomain.TesterInfo) []userdomain.TesterInfo {
	if testers == nil {
		return nil
	}
	cloned := make([]userdomain.TesterInfo, len(testers))
	copy(cloned, testers)
	return cloned
}
