package response_models

import "time"

// QuizStateResponse mirrors the session state machine for the client: the
// current question (without its correct index), whether it is locked, and
// completion. Question is omitted once the session is complete.
type QuizStateResponse struct {
	SessionID     string                `json:"session_id"`
	DestinationID string                `json:"destination_id"`
	CurrentStep   int                   `json:"current_step"`
	TotalSteps    int                   `json:"total_steps"`
	Question      *QuizQuestionResponse `json:"question,omitempty"`
	Answered      bool                  `json:"answered"`
	SelectedIndex *int                  `json:"selected_index,omitempty"`
	Score         int                   `json:"score"`
	IsComplete    bool                  `json:"is_complete"`
}

type QuizQuestionResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizResultResponse struct {
	SessionID     string    `json:"session_id"`
	DestinationID string    `json:"destination_id"`
	Score         int       `json:"score"`
	Total         int       `json:"total"`
	CompletedAt   time.Time `json:"completed_at"`
}
