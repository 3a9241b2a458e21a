package report

import (
	"math"
	"strings"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

// SelectorConfig holds the universe-selection rules. The sets are treated
// as immutable after construction.
type SelectorConfig struct {
	TopN               int
	ExcludeIDs         map[string]bool
	ExcludeSymbols     map[string]bool
	KnownStableIDs     map[string]bool
	KnownStableSymbols map[string]bool
}

// DefaultSelectorConfig excludes wrapped assets and the major stablecoins.
func DefaultSelectorConfig(topN int) SelectorConfig {
	return SelectorConfig{
		TopN: topN,
		ExcludeIDs: map[string]bool{
			"wrapped-bitcoin": true, "weth": true, "staked-ether": true,
			"wrapped-beacon-eth": true, "coinbase-wrapped-staked-eth": true,
		},
		ExcludeSymbols: map[string]bool{
			"wbtc": true, "weth": true, "steth": true, "wbeth": true, "cbeth": true,
		},
		KnownStableIDs: map[string]bool{
			"tether": true, "usd-coin": true, "dai": true, "frax": true,
			"first-digital-usd": true, "true-usd": true, "paxos-standard": true,
			"binance-usd": true, "gemini-dollar": true, "liquity-usd": true,
			"usdd": true, "nusd": true, "susd": true, "usde": true, "paypal-usd": true,
		},
		KnownStableSymbols: map[string]bool{
			"usdt": true, "usdc": true, "dai": true, "frax": true, "fdusd": true,
			"tusd": true, "usdp": true, "busd": true, "gusd": true, "lusd": true,
			"usdd": true, "susd": true, "usde": true, "pyusd": true,
		},
	}
}

// Selector filters a market-cap-ordered candidate list down to the report
// universe.
type Selector struct {
	cfg SelectorConfig
}

func NewSelector(cfg SelectorConfig) *Selector {
	return &Selector{cfg: cfg}
}

// Pick walks the candidates in input order and collects at most TopN
// records that are neither excluded nor stablecoins. It stops as soon as
// TopN records are accepted and never backfills from later pages, so a long
// run of early exclusions can leave the universe short of TopN.
func (s *Selector) Pick(candidates []domain.CoinRecord) []domain.CoinRecord {
	picked := make([]domain.CoinRecord, 0, s.cfg.TopN)
	for _, c := range candidates {
		sym := strings.ToLower(c.Symbol)
		name := strings.ToLower(c.Name)

		if s.cfg.ExcludeIDs[c.ID] || s.cfg.ExcludeSymbols[sym] {
			continue
		}
		if s.cfg.KnownStableIDs[c.ID] || s.cfg.KnownStableSymbols[sym] {
			continue
		}
		if looksStableLike(c.CurrentPrice, c.Change24h, c.Change7d) &&
			(strings.Contains(sym, "usd") || strings.Contains(name, "usd")) {
			continue
		}

		picked = append(picked, c)
		if len(picked) >= s.cfg.TopN {
			break
		}
	}
	return picked
}

// looksStableLike flags coins pinned near $1.00 with low short-term
// volatility. Missing change data passes the volatility check; a missing
// price means the heuristic cannot apply at all.
func looksStableLike(price, ch24, ch7d *float64) bool {
	if price == nil {
		return false
	}
	nearOne := *price >= 0.95 && *price <= 1.05
	lowVol := true
	if ch24 != nil && ch7d != nil {
		lowVol = math.Abs(*ch24) < 2.5 && math.Abs(*ch7d) < 4.0
	}
	return nearOne && lowVol
}
