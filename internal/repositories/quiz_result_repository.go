package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lounge/internal/models/db_models"
)

type QuizResultRepositoryInterface interface {
	Create(ctx context.Context, result *db_models.QuizResult) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]db_models.QuizResult, error)
}

type QuizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepositoryInterface {
	return &QuizResultRepository{db: db}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *db_models.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *QuizResultRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]db_models.QuizResult, error) {
	var results []db_models.QuizResult
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
