package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/dto"
	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/internal/service"
)

// UserQuizHandler обрабатывает пользовательские запросы: мои викторины, прохождение, отправка
type UserQuizHandler struct {
	quizService   *service.QuizService
	resultService *service.ResultService
}

// NewUserQuizHandler создает новый обработчик пользовательских викторин
func NewUserQuizHandler(quizService *service.QuizService, resultService *service.ResultService) *UserQuizHandler {
	return &UserQuizHandler{
		quizService:   quizService,
		resultService: resultService,
	}
}

// AnswerInput представляет ответ на один вопрос
type AnswerInput struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

// SubmitQuizRequest представляет отправку ответов на викторину
type SubmitQuizRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,dive"`
}

// ListMyAssigned возвращает назначения текущего пользователя со статусами
func (h *UserQuizHandler) ListMyAssigned(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	rows, err := h.quizService.ListAssignedForUser(userID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "my assigned quizzes", rows)
}

// TakeQuiz возвращает викторину для прохождения без правильных ответов
func (h *UserQuizHandler) TakeQuiz(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	quizID := middleware.UintParam(c, "quizID")

	quiz, err := h.resultService.TakeQuiz(quizID, userID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quiz", dto.NewTakeQuizResponse(quiz))
}

// SubmitQuiz принимает ответы и возвращает зафиксированный результат
func (h *UserQuizHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	quizID := middleware.UintParam(c, "quizID")

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	// При повторении вопроса в запросе учитывается последний ответ
	answers := make(map[uint]uint, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.OptionID
	}

	result, err := h.resultService.SubmitQuiz(quizID, userID, answers)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "quiz submitted", dto.NewResultResponse(result))
}
