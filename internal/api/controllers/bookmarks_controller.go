package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lounge/internal/models/request_models"
	"lounge/internal/services"
	"lounge/pkg/utils"
)

type BookmarksController struct {
	bookmarkService services.BookmarkServiceInterface
}

func NewBookmarksController(bookmarkService services.BookmarkServiceInterface) *BookmarksController {
	return &BookmarksController{
		bookmarkService: bookmarkService,
	}
}

func (b *BookmarksController) CreateBookmark(c *gin.Context) {
	profileID := profileIDFromContext(c)
	if profileID == uuid.Nil {
		utils.RespondError(c, http.StatusUnauthorized, "Profile token required")
		return
	}

	var request request_models.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_id is required")
		return
	}

	bookmark, err := b.bookmarkService.CreateBookmark(profileID, request.DestinationID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookmark, "Bookmark created successfully")
}

func (b *BookmarksController) ListBookmarks(c *gin.Context) {
	profileID := profileIDFromContext(c)
	if profileID == uuid.Nil {
		utils.RespondError(c, http.StatusUnauthorized, "Profile token required")
		return
	}

	bookmarks, err := b.bookmarkService.ListBookmarks(profileID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookmarks, "Bookmarks fetched successfully")
}

func (b *BookmarksController) DeleteBookmark(c *gin.Context) {
	profileID := profileIDFromContext(c)
	if profileID == uuid.Nil {
		utils.RespondError(c, http.StatusUnauthorized, "Profile token required")
		return
	}

	if err := b.bookmarkService.DeleteBookmark(profileID, c.Param("id"), c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Bookmark deleted successfully")
}
