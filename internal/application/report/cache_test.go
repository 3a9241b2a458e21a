package report

import (
	"testing"
	"time"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

func TestCacheServesWhileFresh(t *testing.T) {
	clock := time.Unix(1000, 0)
	c := newReportCache(60 * time.Second)
	c.now = func() time.Time { return clock }

	if _, ok := c.Get(); ok {
		t.Fatal("empty cache must miss")
	}

	c.Put(&domain.Report{LastUpdated: "x"})

	clock = clock.Add(59 * time.Second)
	if _, ok := c.Get(); !ok {
		t.Fatal("expected hit inside TTL")
	}

	clock = clock.Add(time.Second)
	if _, ok := c.Get(); ok {
		t.Fatal("expected miss at TTL boundary")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := newReportCache(time.Hour)
	c.Put(&domain.Report{LastUpdated: "x"})
	c.Invalidate()
	if _, ok := c.Get(); ok {
		t.Fatal("expected miss after invalidation")
	}
}
