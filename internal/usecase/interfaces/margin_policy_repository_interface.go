package interfaces

import (
	"context"

	"buyback_service/internal/domain/entities"
)

// IMarginPolicyRepository stores the single active margin policy.
type IMarginPolicyRepository interface {
	// Get reports found=false when no policy has been saved yet.
	Get(ctx context.Context) (policy entities.MarginPolicy, found bool, err error)
	Save(ctx context.Context, p entities.MarginPolicy) error
}
