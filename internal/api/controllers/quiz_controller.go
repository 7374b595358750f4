package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lounge/internal/models/request_models"
	"lounge/internal/services"
	"lounge/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Start a new quiz session for a destination. A profile token is optional; when present, the final result is attributed to the profile.
// @Tags Quiz
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id}/quiz [post]
func (q *QuizController) StartSession(c *gin.Context) {
	state, err := q.quizService.StartSession(c.Param("id"), profileIDFromContext(c), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Quiz session started")
}

func (q *QuizController) SubmitAnswer(c *gin.Context) {
	var request request_models.AnswerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "selected_index is required")
		return
	}

	state, err := q.quizService.SubmitAnswer(c.Param("sessionId"), *request.SelectedIndex, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Answer recorded")
}

func (q *QuizController) Advance(c *gin.Context) {
	state, err := q.quizService.Advance(c.Param("sessionId"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Advanced to next question")
}

func (q *QuizController) GetResult(c *gin.Context) {
	result, err := q.quizService.Result(c.Param("sessionId"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Quiz result fetched successfully")
}

func (q *QuizController) AbandonSession(c *gin.Context) {
	if err := q.quizService.AbandonSession(c.Param("sessionId"), c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz session abandoned")
}

// ListResults requires a profile token; it returns the profile's persisted
// quiz results.
func (q *QuizController) ListResults(c *gin.Context) {
	profileID := profileIDFromContext(c)
	if profileID == uuid.Nil {
		utils.RespondError(c, http.StatusUnauthorized, "Profile token required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	results, err := q.quizService.ListResults(profileID, page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Quiz results fetched successfully")
}

func profileIDFromContext(c *gin.Context) uuid.UUID {
	raw, ok := c.Get("profile_id")
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil
	}
	return id
}
