package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lounge/internal/models/db_models"
	"lounge/internal/services"
	mem "lounge/pkg/memcache"
	"lounge/pkg/utils"
)

type fakeResultRepo struct {
	created []db_models.QuizResult
	err     error
}

func (f *fakeResultRepo) Create(ctx context.Context, result *db_models.QuizResult) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *result)
	return nil
}

func (f *fakeResultRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]db_models.QuizResult, error) {
	return f.created, nil
}

func newQuizFixture(t *testing.T) (services.QuizServiceInterface, *fakeResultRepo) {
	t.Helper()

	catalog := newTestCatalog(t, []byte(validCatalogJSON))
	repo := &fakeResultRepo{}
	svc := services.NewQuizService(catalog, mem.NewSessions(), repo, zap.NewNop())
	return svc, repo
}

func TestQuizServiceUnknownDestination(t *testing.T) {
	svc, _ := newQuizFixture(t)

	_, err := svc.StartSession("atlantis", uuid.Nil, context.Background())
	require.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestQuizServiceUnknownSession(t *testing.T) {
	svc, _ := newQuizFixture(t)

	ctx := context.Background()

	_, err := svc.SubmitAnswer("missing", 0, ctx)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.Advance("missing", ctx)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.Result("missing", ctx)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestQuizServiceFullPlayThrough(t *testing.T) {
	svc, repo := newQuizFixture(t)
	ctx := context.Background()
	profileID := uuid.New()

	state, err := svc.StartSession("paris", profileID, ctx)
	require.NoError(t, err)
	require.Equal(t, 0, state.CurrentStep)
	require.Equal(t, 2, state.TotalSteps)
	require.False(t, state.IsComplete)
	require.NotNil(t, state.Question)
	require.Equal(t, []string{"Seine", "Thames"}, state.Question.Options)

	// Correct answer to question 0 (Seine).
	state, err = svc.SubmitAnswer(state.SessionID, 0, ctx)
	require.NoError(t, err)
	require.True(t, state.Answered)
	require.Equal(t, 1, state.Score)

	_, err = svc.SubmitAnswer(state.SessionID, 1, ctx)
	require.ErrorIs(t, err, utils.ErrAlreadyAnswered)

	state, err = svc.Advance(state.SessionID, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, state.CurrentStep)
	require.False(t, state.Answered)

	// Wrong answer to question 1 (correct is Louvre, index 1).
	state, err = svc.SubmitAnswer(state.SessionID, 0, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, state.Score)

	state, err = svc.Advance(state.SessionID, ctx)
	require.NoError(t, err)
	require.True(t, state.IsComplete)
	require.Nil(t, state.Question)

	result, err := svc.Result(state.SessionID, ctx)
	require.NoError(t, err)
	require.Equal(t, "paris", result.DestinationID)
	require.Equal(t, 1, result.Score)
	require.Equal(t, 2, result.Total)

	// Completion handed exactly one record to the sink.
	require.Len(t, repo.created, 1)
	require.Equal(t, profileID, repo.created[0].ProfileID)
	require.Equal(t, 1, repo.created[0].Score)
	require.Equal(t, 2, repo.created[0].Total)
}

func TestQuizServiceEmptyQuizCompletesOnStart(t *testing.T) {
	svc, repo := newQuizFixture(t)
	ctx := context.Background()

	state, err := svc.StartSession("kyoto", uuid.Nil, ctx)
	require.NoError(t, err)
	require.True(t, state.IsComplete)
	require.Equal(t, 0, state.TotalSteps)

	result, err := svc.Result(state.SessionID, ctx)
	require.NoError(t, err)
	require.Equal(t, 0, result.Score)
	require.Equal(t, 0, result.Total)

	require.Len(t, repo.created, 1)
}

func TestQuizServiceResultBeforeCompletion(t *testing.T) {
	svc, _ := newQuizFixture(t)
	ctx := context.Background()

	state, err := svc.StartSession("paris", uuid.Nil, ctx)
	require.NoError(t, err)

	_, err = svc.Result(state.SessionID, ctx)
	require.ErrorIs(t, err, utils.ErrQuizInProgress)
}

func TestQuizServiceAbandonSession(t *testing.T) {
	svc, _ := newQuizFixture(t)
	ctx := context.Background()

	state, err := svc.StartSession("paris", uuid.Nil, ctx)
	require.NoError(t, err)

	require.NoError(t, svc.AbandonSession(state.SessionID, ctx))
	require.ErrorIs(t, svc.AbandonSession(state.SessionID, ctx), utils.ErrSessionNotFound)

	_, err = svc.SubmitAnswer(state.SessionID, 0, ctx)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestQuizServiceSinkFailureDoesNotFailSession(t *testing.T) {
	catalog := newTestCatalog(t, []byte(validCatalogJSON))
	repo := &fakeResultRepo{err: errors.New("sink down")}
	svc := services.NewQuizService(catalog, mem.NewSessions(), repo, zap.NewNop())

	ctx := context.Background()

	state, err := svc.StartSession("kyoto", uuid.Nil, ctx)
	require.NoError(t, err)
	require.True(t, state.IsComplete)

	result, err := svc.Result(state.SessionID, ctx)
	require.NoError(t, err)
	require.Equal(t, 0, result.Total)
}

func TestQuizServiceListResultsValidation(t *testing.T) {
	svc, _ := newQuizFixture(t)
	ctx := context.Background()

	_, err := svc.ListResults(uuid.New(), 0, 10, ctx)
	require.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListResults(uuid.New(), 1, 0, ctx)
	require.ErrorIs(t, err, utils.ErrInvalidPageSize)
}
