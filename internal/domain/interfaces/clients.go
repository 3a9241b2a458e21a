package interfaces

import (
	"context"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

// MarketsClient fetches coin listings ordered by descending market cap.
type MarketsClient interface {
	Markets(ctx context.Context, page int) ([]domain.CoinRecord, error)
}
