package clock

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock выдает строго возрастающие временные метки для записей хранилища.
// Метка берется из источника (обычно time.Now), но никогда не уходит назад:
// если источник вернул значение не больше предыдущего, берется предыдущее + 1ns.
type Clock struct {
	last   time.Time
	source func() time.Time
	nodeID string
	mu     sync.Mutex
}

// New creates a clock backed by time.Now with a random node ID
func New() *Clock {
	return NewWithSource(time.Now, uuid.New().String())
}

// NewWithSource creates a clock with an explicit time source and node ID.
// Used by tests and for restoring state.
func NewWithSource(source func() time.Time, nodeID string) *Clock {
	return &Clock{
		source: source,
		nodeID: nodeID,
	}
}

// Tick returns the next timestamp, strictly greater than every value
// previously returned or observed.
func (c *Clock) Tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.source().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now

	return now
}

// Observe advances the clock to t if t is ahead of it.
// Called with timestamps read from storage so a restarted process with a
// lagging wall clock keeps ordering.
func (c *Clock) Observe(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.After(c.last) {
		c.last = t.UTC()
	}
}

// Now returns the source time without advancing the clock.
// Used for age comparisons, not for stamping records.
func (c *Clock) Now() time.Time {
	return c.source().UTC()
}

// Last returns the most recent timestamp issued or observed
func (c *Clock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// NodeID returns the identifier of this replica
func (c *Clock) NodeID() string {
	return c.nodeID
}
