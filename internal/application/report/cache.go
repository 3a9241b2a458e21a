package report

import (
	"sync"
	"time"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

// reportCache keeps the last built report for a bounded time. The pipeline
// itself is stateless; this is the only state carried across refreshes.
type reportCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	report   *domain.Report
	storedAt time.Time
	now      func() time.Time
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached report while it is still fresh.
func (c *reportCache) Get() (*domain.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.report == nil || c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.report, true
}

func (c *reportCache) Put(report *domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = report
	c.storedAt = c.now()
}

// Invalidate drops the cached report so the next read rebuilds it.
func (c *reportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = nil
}
