package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lounge/internal/models/db_models"
	"lounge/internal/models/quiz_models"
	"lounge/internal/models/response_models"
	"lounge/internal/repositories"
	mem "lounge/pkg/memcache"
	"lounge/pkg/utils"
)

type QuizServiceInterface interface {
	StartSession(destinationID string, profileID uuid.UUID, ctx context.Context) (*response_models.QuizStateResponse, error)
	SubmitAnswer(sessionID string, selectedIndex int, ctx context.Context) (*response_models.QuizStateResponse, error)
	Advance(sessionID string, ctx context.Context) (*response_models.QuizStateResponse, error)
	Result(sessionID string, ctx context.Context) (*response_models.QuizResultResponse, error)
	AbandonSession(sessionID string, ctx context.Context) error
	ListResults(profileID uuid.UUID, page int, pageSize int, ctx context.Context) ([]response_models.QuizResultResponse, error)
}

type QuizService struct {
	catalog    CatalogServiceInterface
	sessions   mem.SessionStore
	resultRepo repositories.QuizResultRepositoryInterface
	logger     *zap.Logger
}

func NewQuizService(
	catalog CatalogServiceInterface,
	sessions mem.SessionStore,
	resultRepo repositories.QuizResultRepositoryInterface,
	logger *zap.Logger,
) QuizServiceInterface {
	return &QuizService{
		catalog:    catalog,
		sessions:   sessions,
		resultRepo: resultRepo,
		logger:     logger,
	}
}

func (q *QuizService) StartSession(destinationID string, profileID uuid.UUID, ctx context.Context) (*response_models.QuizStateResponse, error) {
	destination, ok := q.catalog.Destination(destinationID)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	session := quiz_models.NewQuizSession(destination.ID, profileID, destination.Quiz)
	q.sessions.Put(session)

	// A destination without questions completes immediately.
	if session.Completed() {
		q.persistResult(ctx, session)
	}

	return stateResponse(session), nil
}

func (q *QuizService) SubmitAnswer(sessionID string, selectedIndex int, ctx context.Context) (*response_models.QuizStateResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	if err := session.SubmitAnswer(selectedIndex); err != nil {
		return nil, err
	}

	return stateResponse(session), nil
}

func (q *QuizService) Advance(sessionID string, ctx context.Context) (*response_models.QuizStateResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	if err := session.Advance(); err != nil {
		return nil, err
	}

	if session.Completed() {
		q.persistResult(ctx, session)
	}

	return stateResponse(session), nil
}

func (q *QuizService) Result(sessionID string, ctx context.Context) (*response_models.QuizResultResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	summary, err := session.Result()
	if err != nil {
		return nil, err
	}

	return &response_models.QuizResultResponse{
		SessionID:     session.ID,
		DestinationID: summary.DestinationID,
		Score:         summary.Score,
		Total:         summary.Total,
		CompletedAt:   summary.CompletedAt,
	}, nil
}

func (q *QuizService) AbandonSession(sessionID string, ctx context.Context) error {
	if q.sessions.Get(sessionID) == nil {
		return utils.ErrSessionNotFound
	}
	q.sessions.Delete(sessionID)
	return nil
}

func (q *QuizService) ListResults(profileID uuid.UUID, page int, pageSize int, ctx context.Context) ([]response_models.QuizResultResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	results, err := q.resultRepo.ListByProfile(ctx, profileID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.QuizResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, response_models.QuizResultResponse{
			DestinationID: r.DestinationID,
			Score:         r.Score,
			Total:         r.Total,
			CompletedAt:   r.CompletedAt,
		})
	}

	return responses, nil
}

// persistResult hands the completed session to the result sink. Persistence
// failures are the sink's concern; the session itself never fails on them.
func (q *QuizService) persistResult(ctx context.Context, session *quiz_models.QuizSession) {
	summary, err := session.Result()
	if err != nil {
		return
	}

	record := &db_models.QuizResult{
		ProfileID:     session.ProfileID,
		DestinationID: summary.DestinationID,
		Score:         summary.Score,
		Total:         summary.Total,
		CompletedAt:   summary.CompletedAt,
	}

	if err := q.resultRepo.Create(ctx, record); err != nil {
		q.logger.Warn("failed to persist quiz result",
			zap.String("destination_id", summary.DestinationID),
			zap.Error(err))
	}
}

func stateResponse(session *quiz_models.QuizSession) *response_models.QuizStateResponse {
	response := &response_models.QuizStateResponse{
		SessionID:     session.ID,
		DestinationID: session.DestinationID,
		CurrentStep:   session.Current,
		TotalSteps:    len(session.Questions),
		Answered:      session.Answered,
		SelectedIndex: session.Selected,
		Score:         session.Score,
		IsComplete:    session.Completed(),
	}

	if q := session.CurrentQuestion(); q != nil {
		response.Question = &response_models.QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
	}

	return response
}
