package quiz_models

import (
	"time"

	"github.com/google/uuid"

	"lounge/internal/models/catalog_models"
	"lounge/pkg/utils"
)

// QuizSession is one play-through of a destination's quiz. It is driven by a
// single caller; concurrent use requires one session per user. A session with
// no questions is completed from the start.
type QuizSession struct {
	ID            string
	DestinationID string
	ProfileID     uuid.UUID
	Questions     []catalog_models.QuizQuestion
	Current       int
	Answered      bool
	Selected      *int
	Score         int
	StartedAt     time.Time
	CompletedAt   time.Time
}

// QuizResultSummary is the immutable outcome of a completed session.
type QuizResultSummary struct {
	DestinationID string
	Score         int
	Total         int
	CompletedAt   time.Time
}

func NewQuizSession(destinationID string, profileID uuid.UUID, questions []catalog_models.QuizQuestion) *QuizSession {
	s := &QuizSession{
		ID:            uuid.New().String(),
		DestinationID: destinationID,
		ProfileID:     profileID,
		Questions:     questions,
		StartedAt:     time.Now(),
	}
	if len(questions) == 0 {
		s.CompletedAt = time.Now()
	}
	return s
}

func (s *QuizSession) Completed() bool {
	return s.Current >= len(s.Questions)
}

// CurrentQuestion returns the question awaiting or holding an answer, or nil
// once the session is completed.
func (s *QuizSession) CurrentQuestion() *catalog_models.QuizQuestion {
	if s.Completed() {
		return nil
	}
	return &s.Questions[s.Current]
}

// SubmitAnswer locks in a selection for the current question. It rejects the
// call without touching state when the session is completed, when the current
// question already has an answer, or when selected is out of option range.
// A question whose CorrectIndex is out of bounds is unwinnable: the answer is
// accepted but the score never increments.
func (s *QuizSession) SubmitAnswer(selected int) error {
	if s.Completed() {
		return utils.ErrQuizCompleted
	}
	if s.Answered {
		return utils.ErrAlreadyAnswered
	}

	q := s.Questions[s.Current]
	if selected < 0 || selected >= len(q.Options) {
		return utils.ErrInvalidOption
	}

	s.Answered = true
	sel := selected
	s.Selected = &sel
	if q.Answerable() && selected == q.CorrectIndex {
		s.Score++
	}
	return nil
}

// Advance moves past an answered question, completing the session after the
// last one. It rejects the call when the current question is unanswered or
// the session is already completed.
func (s *QuizSession) Advance() error {
	if s.Completed() {
		return utils.ErrQuizCompleted
	}
	if !s.Answered {
		return utils.ErrAwaitingAnswer
	}

	s.Current++
	s.Answered = false
	s.Selected = nil
	if s.Completed() {
		s.CompletedAt = time.Now()
	}
	return nil
}

// Result is only available once the session is completed.
func (s *QuizSession) Result() (QuizResultSummary, error) {
	if !s.Completed() {
		return QuizResultSummary{}, utils.ErrQuizInProgress
	}
	return QuizResultSummary{
		DestinationID: s.DestinationID,
		Score:         s.Score,
		Total:         len(s.Questions),
		CompletedAt:   s.CompletedAt,
	}, nil
}
