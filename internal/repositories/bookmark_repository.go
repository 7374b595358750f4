package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lounge/internal/models/db_models"
)

type BookmarkRepositoryInterface interface {
	Create(ctx context.Context, bookmark *db_models.Bookmark) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.Bookmark, error)
	Delete(ctx context.Context, profileID uuid.UUID, id uuid.UUID) (bool, error)
}

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepositoryInterface {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *db_models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *BookmarkRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.Bookmark, error) {
	var bookmarks []db_models.Bookmark
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *BookmarkRepository) Delete(ctx context.Context, profileID uuid.UUID, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&db_models.Bookmark{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
