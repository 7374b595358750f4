package request_models

type CreateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}
