package report

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
)

type stubMarketsClient struct {
	pages map[int][]domain.CoinRecord
	err   error
	calls int
}

func (s *stubMarketsClient) Markets(_ context.Context, page int) ([]domain.CoinRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[page], nil
}

func testReportConfig(topN int) config.ReportConfig {
	return config.ReportConfig{
		VsCurrency: "usd",
		TopN:       topN,
		PerPage:    250,
		CacheTTL:   60 * time.Second,
		Timezone:   "UTC",
	}
}

func TestReportPipeline(t *testing.T) {
	client := &stubMarketsClient{pages: map[int][]domain.CoinRecord{
		1: {
			// deliberately out of market-cap order
			coin("foo", "foo", "Foo", fptr(10), fptr(-3.2), fptr(1), fptr(1e9)),
			coin("bitcoin", "btc", "Bitcoin", fptr(117000), fptr(1.5), fptr(4), fptr(2.3e12)),
			coin("tether", "usdt", "Tether", fptr(1.0), fptr(0.01), fptr(0.02), fptr(1.2e11)),
		},
	}}
	svc := NewReportService(client, testReportConfig(50), zerolog.Nop())

	report, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}

	first := report.Rows[0]
	if first.Rank != 1 || first.ID != "bitcoin" || first.Symbol != "BTC" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Price != "$117,000.00" || first.Change24h != "+1.50%" || first.MarketCap != "$2,300,000,000,000" {
		t.Fatalf("unexpected formatting: %+v", first)
	}
	if first.Scenario.Bull != "200000" {
		t.Fatalf("expected bitcoin override, got %+v", first.Scenario)
	}

	second := report.Rows[1]
	if second.Rank != 2 || second.ID != "foo" {
		t.Fatalf("unexpected second row: %+v", second)
	}
	if second.Scenario.Bull != "25.00" || second.Scenario.Bear != "6.00" {
		t.Fatalf("expected computed band, got %+v", second.Scenario)
	}
	if report.LastUpdated == "" {
		t.Fatal("missing last-updated timestamp")
	}
}

func TestReportServedFromCache(t *testing.T) {
	client := &stubMarketsClient{pages: map[int][]domain.CoinRecord{
		1: {coin("bitcoin", "btc", "Bitcoin", fptr(117000), fptr(1.5), fptr(4), fptr(2.3e12))},
	}}
	svc := NewReportService(client, testReportConfig(50), zerolog.Nop())

	ctx := context.Background()
	if _, err := svc.Report(ctx); err != nil {
		t.Fatalf("first report: %v", err)
	}
	if _, err := svc.Report(ctx); err != nil {
		t.Fatalf("second report: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 upstream call inside TTL, got %d", client.calls)
	}

	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected refresh to bypass cache, got %d calls", client.calls)
	}
}

func TestReportIdempotent(t *testing.T) {
	pages := map[int][]domain.CoinRecord{
		1: {
			coin("bitcoin", "btc", "Bitcoin", fptr(117000), fptr(1.5), fptr(4), fptr(2.3e12)),
			coin("foo", "foo", "Foo", fptr(10), fptr(-3.2), nil, fptr(1e9)),
			coin("bar", "bar", "Bar", nil, nil, nil, nil),
		},
	}
	svc := NewReportService(&stubMarketsClient{pages: pages}, testReportConfig(50), zerolog.Nop())

	ctx := context.Background()
	first, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Fatalf("rows differ across identical inputs:\n%+v\n%+v", first.Rows, second.Rows)
	}
}

func TestReportFetchFailureIsFatal(t *testing.T) {
	client := &stubMarketsClient{err: errors.New("status 503")}
	svc := NewReportService(client, testReportConfig(50), zerolog.Nop())

	if _, err := svc.Report(context.Background()); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestIncludeOnlyKeepsRequestedOrder(t *testing.T) {
	cfg := testReportConfig(50)
	cfg.IncludeOnly = []string{"solana", "tether", "missing", "bitcoin"}

	client := &stubMarketsClient{pages: map[int][]domain.CoinRecord{
		1: {
			coin("bitcoin", "btc", "Bitcoin", fptr(117000), fptr(1.5), fptr(4), fptr(2.3e12)),
			coin("tether", "usdt", "Tether", fptr(1.0), fptr(0.01), fptr(0.02), fptr(1.2e11)),
			coin("solana", "sol", "Solana", fptr(180), fptr(2), fptr(6), fptr(8e10)),
		},
	}}
	svc := NewReportService(client, cfg, zerolog.Nop())

	report, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, row := range report.Rows {
		ids = append(ids, row.ID)
	}
	// requested order, unknown ids skipped, exclusions bypassed
	want := []string{"solana", "tether", "bitcoin"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
}
