package repositories

import (
	"context"
	"fmt"

	"gateway-discoveries/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// interactionRepository implements InteractionRepository on Postgres
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interaction{}).Count(&count).Error
	return count, err
}

func (r *interactionRepository) CountByType(ctx context.Context, interactionType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Where("interaction_type = ?", interactionType).
		Count(&count).Error
	return count, err
}

// DailyCounts returns interaction volume per day over the trailing window,
// oldest day first, labelled by weekday abbreviation.
func (r *interactionRepository) DailyCounts(ctx context.Context, days int) ([]models.DailyCount, error) {
	var counts []models.DailyCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(DATE_TRUNC('day', created_at), 'Dy') AS date,
		       COUNT(*) AS value
		FROM interactions
		WHERE created_at > NOW() - ?::interval
		GROUP BY DATE_TRUNC('day', created_at)
		ORDER BY DATE_TRUNC('day', created_at)
	`, fmt.Sprintf("%d days", days)).Scan(&counts).Error
	return counts, err
}
