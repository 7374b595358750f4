package request_models

type AnswerRequest struct {
	SelectedIndex *int `json:"selected_index" binding:"required"`
}
