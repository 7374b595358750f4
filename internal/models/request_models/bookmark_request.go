package request_models

type CreateBookmarkRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
}
