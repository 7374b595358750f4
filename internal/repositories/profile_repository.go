package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lounge/internal/models/db_models"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *db_models.Profile) error
	List(ctx context.Context) ([]db_models.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) List(ctx context.Context) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
