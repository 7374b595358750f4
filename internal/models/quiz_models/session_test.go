package quiz_models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lounge/internal/models/catalog_models"
	"lounge/internal/models/quiz_models"
	"lounge/pkg/utils"
)

func twoQuestions() []catalog_models.QuizQuestion {
	return []catalog_models.QuizQuestion{
		{Question: "Which river runs through Paris?", Options: []string{"Seine", "Thames"}, CorrectIndex: 0},
		{Question: "Where is the Mona Lisa?", Options: []string{"Orsay", "Louvre"}, CorrectIndex: 1},
	}
}

func TestSessionFullWalkthrough(t *testing.T) {
	s := quiz_models.NewQuizSession("paris", uuid.Nil, twoQuestions())

	require.False(t, s.Completed())
	require.Equal(t, 0, s.Current)
	require.NotNil(t, s.CurrentQuestion())

	// Out-of-range selection is input validation, not an illegal state,
	// and leaves the session untouched.
	require.ErrorIs(t, s.SubmitAnswer(2), utils.ErrInvalidOption)
	require.ErrorIs(t, s.SubmitAnswer(-1), utils.ErrInvalidOption)
	require.False(t, s.Answered)
	require.Equal(t, 0, s.Score)

	require.ErrorIs(t, s.Advance(), utils.ErrAwaitingAnswer)

	require.NoError(t, s.SubmitAnswer(0))
	require.True(t, s.Answered)
	require.Equal(t, 0, *s.Selected)
	require.Equal(t, 1, s.Score)

	require.ErrorIs(t, s.SubmitAnswer(1), utils.ErrAlreadyAnswered)
	require.Equal(t, 1, s.Score)

	_, err := s.Result()
	require.ErrorIs(t, err, utils.ErrQuizInProgress)

	require.NoError(t, s.Advance())
	require.Equal(t, 1, s.Current)
	require.False(t, s.Answered)
	require.Nil(t, s.Selected)

	require.NoError(t, s.SubmitAnswer(0)) // wrong answer
	require.Equal(t, 1, s.Score)
	require.NoError(t, s.Advance())

	require.True(t, s.Completed())
	require.Nil(t, s.CurrentQuestion())

	summary, err := s.Result()
	require.NoError(t, err)
	require.Equal(t, "paris", summary.DestinationID)
	require.Equal(t, 1, summary.Score)
	require.Equal(t, 2, summary.Total)
	require.False(t, summary.CompletedAt.IsZero())

	require.ErrorIs(t, s.SubmitAnswer(0), utils.ErrQuizCompleted)
	require.ErrorIs(t, s.Advance(), utils.ErrQuizCompleted)
}

func TestSessionNoQuestionsCompletesImmediately(t *testing.T) {
	s := quiz_models.NewQuizSession("kyoto", uuid.Nil, nil)

	require.True(t, s.Completed())

	summary, err := s.Result()
	require.NoError(t, err)
	require.Equal(t, 0, summary.Score)
	require.Equal(t, 0, summary.Total)

	require.ErrorIs(t, s.SubmitAnswer(0), utils.ErrQuizCompleted)
	require.ErrorIs(t, s.Advance(), utils.ErrQuizCompleted)
}

func TestSessionMalformedCorrectIndexIsUnwinnable(t *testing.T) {
	questions := []catalog_models.QuizQuestion{
		{Question: "Broken", Options: []string{"A", "B"}, CorrectIndex: 5},
	}
	s := quiz_models.NewQuizSession("paris", uuid.Nil, questions)

	// Still presentable and answerable without crashing, but never scored.
	require.NoError(t, s.SubmitAnswer(1))
	require.Equal(t, 0, s.Score)
	require.NoError(t, s.Advance())

	summary, err := s.Result()
	require.NoError(t, err)
	require.Equal(t, 0, summary.Score)
	require.Equal(t, 1, summary.Total)
}

func TestSessionScoreNeverExceedsCurrentIndex(t *testing.T) {
	s := quiz_models.NewQuizSession("paris", uuid.Nil, twoQuestions())

	for !s.Completed() {
		require.LessOrEqual(t, s.Score, s.Current+1)
		require.NoError(t, s.SubmitAnswer(s.Questions[s.Current].CorrectIndex))
		require.NoError(t, s.Advance())
		require.LessOrEqual(t, s.Score, s.Current)
	}

	summary, err := s.Result()
	require.NoError(t, err)
	require.Equal(t, 2, summary.Score)
}
