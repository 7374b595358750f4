package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lounge/internal/models/db_models"
	"lounge/internal/models/response_models"
	"lounge/internal/repositories"
	"lounge/pkg/assets"
	"lounge/pkg/utils"
)

type BookmarkServiceInterface interface {
	CreateBookmark(profileID uuid.UUID, destinationID string, ctx context.Context) (*response_models.BookmarkResponse, error)
	ListBookmarks(profileID uuid.UUID, ctx context.Context) ([]response_models.BookmarkResponse, error)
	DeleteBookmark(profileID uuid.UUID, bookmarkID string, ctx context.Context) error
}

type BookmarkService struct {
	catalog      CatalogServiceInterface
	bookmarkRepo repositories.BookmarkRepositoryInterface
}

func NewBookmarkService(
	catalog CatalogServiceInterface,
	bookmarkRepo repositories.BookmarkRepositoryInterface,
) BookmarkServiceInterface {
	return &BookmarkService{
		catalog:      catalog,
		bookmarkRepo: bookmarkRepo,
	}
}

func (b *BookmarkService) CreateBookmark(profileID uuid.UUID, destinationID string, ctx context.Context) (*response_models.BookmarkResponse, error) {
	destination, ok := b.catalog.Destination(destinationID)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	bookmark := &db_models.Bookmark{
		ProfileID:     profileID,
		DestinationID: destination.ID,
		Title:         destination.Title,
		Region:        destination.Region,
		ImageNames:    pq.StringArray(destination.ImageNames),
	}

	if err := b.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := b.toResponse(*bookmark)
	return &response, nil
}

func (b *BookmarkService) ListBookmarks(profileID uuid.UUID, ctx context.Context) ([]response_models.BookmarkResponse, error) {
	bookmarks, err := b.bookmarkRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		responses = append(responses, b.toResponse(bookmark))
	}

	return responses, nil
}

func (b *BookmarkService) DeleteBookmark(profileID uuid.UUID, bookmarkID string, ctx context.Context) error {
	id, err := uuid.Parse(bookmarkID)
	if err != nil {
		return utils.ErrBookmarkNotFound
	}

	deleted, err := b.bookmarkRepo.Delete(ctx, profileID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrBookmarkNotFound
	}

	return nil
}

// toResponse prefers live resolution against the current catalog; bookmarks
// whose destination left the catalog fall back to the stored snapshot names
// with extensions stripped.
func (b *BookmarkService) toResponse(bookmark db_models.Bookmark) response_models.BookmarkResponse {
	images := b.catalog.ResolvedImages(bookmark.DestinationID)
	if images == nil {
		images = make([]string, 0, len(bookmark.ImageNames))
		for _, name := range bookmark.ImageNames {
			images = append(images, assets.StripExtension(name))
		}
	}

	return response_models.BookmarkResponse{
		ID:            bookmark.ID.String(),
		DestinationID: bookmark.DestinationID,
		Title:         bookmark.Title,
		Region:        bookmark.Region,
		Images:        images,
	}
}
