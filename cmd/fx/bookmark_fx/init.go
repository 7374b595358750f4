package bookmark_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lounge/internal/repositories"
	"lounge/internal/services"
)

var Module = fx.Provide(
	NewBookmarkService, NewBookmarkRepo)

func NewBookmarkService(
	catalog services.CatalogServiceInterface,
	repo repositories.BookmarkRepositoryInterface,
) services.BookmarkServiceInterface {
	return services.NewBookmarkService(catalog, repo)
}

func NewBookmarkRepo(db *gorm.DB) repositories.BookmarkRepositoryInterface {
	return repositories.NewBookmarkRepository(db)
}
