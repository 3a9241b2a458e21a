package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
	"github.com/manzoorshoro/crypto-market-report/internal/domain/interfaces"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
)

// includeOnlyMaxPages bounds the paging loop when a fixed coin list is
// configured instead of the automatic top-N pick.
const includeOnlyMaxPages = 4

const timestampLayout = "2006-01-02 15:04 MST"

type IReportService interface {
	// Report returns the cached report while fresh, rebuilding otherwise.
	Report(ctx context.Context) (*domain.Report, error)
	// Refresh drops the cache and rebuilds unconditionally.
	Refresh(ctx context.Context) (*domain.Report, error)
}

type reportService struct {
	client    interfaces.MarketsClient
	selector  *Selector
	annotator *Annotator
	cache     *reportCache
	cfg       config.ReportConfig
	location  *time.Location
	logger    zerolog.Logger
}

func NewReportService(client interfaces.MarketsClient, cfg config.ReportConfig, logger zerolog.Logger) IReportService {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("Unknown timezone, falling back to UTC")
		location = time.UTC
	}

	return &reportService{
		client:    client,
		selector:  NewSelector(DefaultSelectorConfig(cfg.TopN)),
		annotator: NewAnnotator(DefaultScenarioOverrides()),
		cache:     newReportCache(cfg.CacheTTL),
		cfg:       cfg,
		location:  location,
		logger:    logger,
	}
}

func (s *reportService) Report(ctx context.Context) (*domain.Report, error) {
	if report, ok := s.cache.Get(); ok {
		return report, nil
	}
	return s.rebuild(ctx)
}

func (s *reportService) Refresh(ctx context.Context) (*domain.Report, error) {
	s.cache.Invalidate()
	return s.rebuild(ctx)
}

func (s *reportService) rebuild(ctx context.Context) (*domain.Report, error) {
	startTime := time.Now()
	requestID := uuid.New().String()

	universe, err := s.pickUniverse(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("request_id", requestID).Msg("Report refresh failed")
		return nil, err
	}

	rows := make([]domain.ReportRow, 0, len(universe))
	for i, c := range universe {
		rows = append(rows, domain.ReportRow{
			Rank:      i + 1,
			ID:        c.ID,
			Symbol:    strings.ToUpper(c.Symbol),
			Name:      c.Name,
			Price:     FormatPrice(c.CurrentPrice),
			Change24h: FormatChange(c.Change24h),
			MarketCap: FormatMarketCap(c.MarketCap),
			Scenario:  s.annotator.Bands(c.ID, c.CurrentPrice),
		})
	}

	now := time.Now()
	report := &domain.Report{
		Rows:        rows,
		GeneratedAt: now,
		LastUpdated: now.In(s.location).Format(timestampLayout),
	}
	s.cache.Put(report)

	s.logger.Info().
		Str("request_id", requestID).
		Int("rows", len(rows)).
		Dur("duration", time.Since(startTime)).
		Msg("Report rebuilt")

	return report, nil
}

// pickUniverse fetches the first markets page, re-sorts it by market cap
// descending and filters it down through the selector. With IncludeOnly
// configured it instead collects exactly the listed coins across pages.
func (s *reportService) pickUniverse(ctx context.Context) ([]domain.CoinRecord, error) {
	if len(s.cfg.IncludeOnly) > 0 {
		return s.fetchIncludeOnly(ctx)
	}

	markets, err := s.client.Markets(ctx, 1)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(markets, func(i, j int) bool {
		return marketCapOrZero(markets[i]) > marketCapOrZero(markets[j])
	})

	return s.selector.Pick(markets), nil
}

// fetchIncludeOnly pages through listings until every requested ID has been
// seen (or the page budget runs out) and returns them in requested order.
// The exclusion rules do not apply here: an explicit list is trusted as-is.
func (s *reportService) fetchIncludeOnly(ctx context.Context) ([]domain.CoinRecord, error) {
	seen := make(map[string]domain.CoinRecord)
	for page := 1; page <= includeOnlyMaxPages && len(seen) < len(s.cfg.IncludeOnly); page++ {
		markets, err := s.client.Markets(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d of include-only universe: %w", page, err)
		}
		for _, c := range markets {
			seen[c.ID] = c
		}
		if len(markets) == 0 {
			break
		}
	}

	picked := make([]domain.CoinRecord, 0, len(s.cfg.IncludeOnly))
	for _, id := range s.cfg.IncludeOnly {
		if c, ok := seen[id]; ok {
			picked = append(picked, c)
		}
	}
	return picked, nil
}

func marketCapOrZero(c domain.CoinRecord) float64 {
	if c.MarketCap == nil {
		return 0
	}
	return *c.MarketCap
}
