package mocks

import (
	"fmt"

	"github.com/chronosync/chronosync/internal/dependencies/random"
)

// MockRandom is a Random that returns queued identifiers, falling back to
// a counter when the queue is empty.
type MockRandom struct {
	queue   []string
	counter int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates an empty MockRandom.
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueID queues identifiers to return from subsequent ID calls. Queued
// values are returned as-is, ignoring the prefix.
func (r *MockRandom) QueueID(ids ...string) {
	r.queue = append(r.queue, ids...)
}

// ID returns the next queued identifier, or prefix plus a counter.
func (r *MockRandom) ID(prefix string) string {
	if len(r.queue) > 0 {
		id := r.queue[0]
		r.queue = r.queue[1:]
		return id
	}
	r.counter++
	return fmt.Sprintf("%s%d", prefix, r.counter)
}
