package response_models

import "lounge/pkg/utils"

type DestinationResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Region        string            `json:"region"`
	Summary       string            `json:"summary"`
	Facts         []string          `json:"facts"`
	Images        []string          `json:"images"`
	NarrationFile string            `json:"narration_file"`
	Captions      []CaptionResponse `json:"captions,omitempty"`
	QuizCount     int               `json:"quiz_count"`
	Theme         utils.Theme       `json:"theme"`
}

type CaptionResponse struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
