package favorite

import (
	"context"

	"prospecttrack/internal/domain"
)

// ProspectSource resolves prospect briefs from the external stats API.
// Only the favorites listing needs it; the toggle path never touches it.
type ProspectSource interface {
	GetBrief(ctx context.Context, prospectID string) (*domain.ProspectBrief, error)
}
