package domain

import "time"

// CoinRecord is a single entry of the CoinGecko /coins/markets response.
// Numeric fields are pointers because the API reports missing data as null.
type CoinRecord struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	CurrentPrice *float64 `json:"current_price"`
	Change24h    *float64 `json:"price_change_percentage_24h"`
	Change7d     *float64 `json:"price_change_percentage_7d_in_currency"`
	MarketCap    *float64 `json:"market_cap"`
}

// ScenarioBand holds the speculative bull/base/bear price text for one coin.
// Values are display strings: either a static override or a computed
// multiple of the live price.
type ScenarioBand struct {
	Bull string `json:"bull"`
	Base string `json:"base"`
	Bear string `json:"bear"`
}

// ReportRow is one rendered line of the market report. All value fields are
// already formatted for display; rows are regenerated on every refresh and
// carry no identity beyond their rank.
type ReportRow struct {
	Rank      int          `json:"rank"`
	ID        string       `json:"id"`
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	Price     string       `json:"price"`
	Change24h string       `json:"change_24h"`
	MarketCap string       `json:"market_cap"`
	Scenario  ScenarioBand `json:"scenario"`
}

// Report is the full dashboard payload for one refresh cycle.
type Report struct {
	Rows        []ReportRow `json:"rows"`
	GeneratedAt time.Time   `json:"generated_at"`
	LastUpdated string      `json:"last_updated"`
}
