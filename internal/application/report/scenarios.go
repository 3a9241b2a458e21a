package report

import (
	"github.com/shopspring/decimal"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

// Static long-range scenario text. These are opinions, not live data, and
// take precedence over the computed bands for the listed coins.
func DefaultScenarioOverrides() map[string]domain.ScenarioBand {
	return map[string]domain.ScenarioBand{
		"bitcoin":     {Bull: "200000", Base: "120000–150000", Bear: "80000–100000"},
		"ethereum":    {Bull: "10000", Base: "5000–7000", Bear: "2500–4000"},
		"solana":      {Bull: "800", Base: "200–400", Bear: "<150"},
		"binancecoin": {Bull: "2000", Base: "1000–1300", Bear: "500–800"},
		"ripple":      {Bull: "10", Base: "3–5", Bear: "1.5–3"},
		"cardano":     {Bull: "4", Base: "1–2", Bear: "0.3–0.8"},
		"dogecoin":    {Bull: "1.00", Base: "0.30–0.50", Bear: "0.10–0.25"},
		"avalanche-2": {Bull: "150", Base: "40–80", Bear: "20–35"},
		"polkadot":    {Bull: "20", Base: "7–12", Bear: "3–5"},
		"chainlink":   {Bull: "80", Base: "30–60", Bear: "15–25"},
		"tron":        {Bull: "0.80", Base: "0.40–0.60", Bear: "0.20–0.30"},
		"cosmos":      {Bull: "25", Base: "8–15", Bear: "3–6"},
	}
}

var (
	bullMultiplier = decimal.NewFromFloat(2.5)
	baseMultiplier = decimal.NewFromFloat(1.5)
	bearMultiplier = decimal.NewFromFloat(0.6)
)

// Annotator attaches bull/base/bear scenario bands to coins.
type Annotator struct {
	overrides map[string]domain.ScenarioBand
}

func NewAnnotator(overrides map[string]domain.ScenarioBand) *Annotator {
	return &Annotator{overrides: overrides}
}

// Bands returns the scenario band for a coin. An override entry wins
// regardless of the live price; otherwise the band is computed as fixed
// multiples of the current price. Coins without a usable price get dashes.
func (a *Annotator) Bands(id string, price *float64) domain.ScenarioBand {
	if band, ok := a.overrides[id]; ok {
		return band
	}
	if price == nil || *price <= 0 {
		return domain.ScenarioBand{Bull: Dash, Base: Dash, Bear: Dash}
	}

	p := decimal.NewFromFloat(*price)
	return domain.ScenarioBand{
		Bull: formatScenarioPrice(p.Mul(bullMultiplier)),
		Base: formatScenarioPrice(p.Mul(baseMultiplier)),
		Bear: formatScenarioPrice(p.Mul(bearMultiplier)),
	}
}

func formatScenarioPrice(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return formatFloatWithComma(f, 2)
}
