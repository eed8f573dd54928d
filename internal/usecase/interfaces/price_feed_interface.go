package interfaces

import (
	"context"

	"buyback_service/internal/domain/entities"
)

// IPriceFeed fetches wholesale source prices from the upstream feed.
type IPriceFeed interface {
	FetchPrices(ctx context.Context) ([]entities.SourcePriceRow, error)
}
