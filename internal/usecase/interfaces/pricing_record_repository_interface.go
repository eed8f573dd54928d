package interfaces

import (
	"context"

	"buyback_service/internal/domain/entities"
)

// IPricingRecordRepository abstracts DynamoDB persistence for PricingRecord.
//
// GetByID returns a zero-value record (empty ID) when the variant is unknown.
type IPricingRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.PricingRecord, error)
	Save(ctx context.Context, r entities.PricingRecord) error
	List(ctx context.Context) ([]entities.PricingRecord, error)
}
