package mongodb

import (
	"context"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// InsertDailySummary stores one nightly summary snapshot.
func (r *Repository) InsertDailySummary(ctx context.Context, summary models.DailySummary) error {
	if _, err := r.db.Collection(collDailyReports).InsertOne(ctx, summary); err != nil {
		return apperrors.Internal("failed to insert daily summary", err)
	}
	return nil
}
