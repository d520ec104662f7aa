package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	"github.com/yourusername/quizhub-api/internal/service"
)

// QuizHandler обрабатывает административные запросы к викторинам и назначениям
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizRequest представляет запрос на создание/обновление викторины
type QuizRequest struct {
	Title       string    `json:"title" binding:"required,max=100"`
	CategoryID  uint      `json:"category_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	QuestionIDs []uint    `json:"question_ids" binding:"required,min=1"`
}

// CreateQuiz обрабатывает запрос на создание викторины
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.CategoryID, req.StartTime, req.EndTime, req.QuestionIDs)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "quiz created", quiz)
}

// GetQuiz возвращает викторину с вопросами и вариантами
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id := middleware.UintParam(c, "quizID")

	quiz, err := h.quizService.GetQuiz(id)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quiz", quiz)
}

// ListQuizzes возвращает все викторины
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quizzes", quizzes)
}

// UpdateQuiz обрабатывает запрос на обновление викторины
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id := middleware.UintParam(c, "quizID")

	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	quiz, err := h.quizService.UpdateQuiz(id, req.Title, req.CategoryID, req.StartTime, req.EndTime, req.QuestionIDs)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quiz updated", quiz)
}

// DeleteQuiz обрабатывает запрос на удаление викторины
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id := middleware.UintParam(c, "quizID")

	if err := h.quizService.DeleteQuiz(id); err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quiz deleted", nil)
}

// AssignQuiz назначает викторину пользователю
func (h *QuizHandler) AssignQuiz(c *gin.Context) {
	quizID := middleware.UintParam(c, "quizID")
	userID := middleware.UintParam(c, "targetUserID")

	assignment, err := h.quizService.AssignQuiz(quizID, userID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "quiz assigned", assignment)
}

// UnassignQuiz снимает назначение викторины с пользователя
func (h *QuizHandler) UnassignQuiz(c *gin.Context) {
	quizID := middleware.UintParam(c, "quizID")
	userID := middleware.UintParam(c, "targetUserID")

	if err := h.quizService.UnassignQuiz(quizID, userID); err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "quiz unassigned", nil)
}

// ListAllAssigned возвращает журнал всех назначений со статусами
func (h *QuizHandler) ListAllAssigned(c *gin.Context) {
	rows, err := h.quizService.ListAllAssigned()
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "assigned quizzes", rows)
}

// ExportAllAssigned выгружает журнал назначений в xlsx.
// Используем StreamWriter для эффективной работы с большими файлами.
func (h *QuizHandler) ExportAllAssigned(c *gin.Context) {
	rows, err := h.quizService.ListAllAssigned()
	if err != nil {
		helper.Fail(c, err)
		return
	}

	filename := fmt.Sprintf("assigned-quizzes-%s", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Назначения"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		helper.FailWithStatus(c, http.StatusInternalServerError, fmt.Errorf("failed to create excel file"))
		return
	}

	// Заголовки
	headers := []interface{}{"Викторина", "Категория", "Пользователь", "Начало", "Окончание", "Завершена", "Статус"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	for i, r := range rows {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		completed := "Нет"
		if r.Completed {
			completed = "Да"
		}

		values := []interface{}{
			r.QuizTitle,
			r.CategoryName,
			r.Username,
			r.StartTime.Format("02.01.2006 15:04"),
			r.EndTime.Format("02.01.2006 15:04"),
			completed,
			r.Status,
		}
		if err := sw.SetRow(cell, values); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка завершения StreamWriter: %v", err)
		helper.FailWithStatus(c, http.StatusInternalServerError, fmt.Errorf("failed to write excel file"))
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка отправки xlsx файла: %v", err)
	}
}
