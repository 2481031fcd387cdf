package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/service"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

func quizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNoQuestionsForSubject):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrNoActiveQuiz), errors.Is(err, model.ErrQuizNotComplete):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrInvalidQuestionIndex), errors.Is(err, model.ErrInvalidOptionIndex):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Quiz operation failed", Details: []string{err.Error()}})
	}
}

// Start godoc
// @Summary Start a quiz for a subject
// @Description Filters the question bank to the subject and starts a fresh attempt.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Subject selection"
// @Success 200 {object} dto.QuizStateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No questions for subject"
// @Router /quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	var req dto.StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: []string{err.Error()}})
		return
	}
	state, err := c.quizSvc.SelectSubject(req.Subject)
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// State godoc
// @Summary Current quiz state
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizStateDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz [get]
func (c *QuizController) State(ctx *gin.Context) {
	state, err := c.quizSvc.State()
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Answer godoc
// @Summary Answer the current question
// @Description Records the answer for the current question. The first answer is final; repeats are ignored.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.SelectAnswerRequest true "Chosen option"
// @Success 200 {object} dto.QuizStateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: []string{err.Error()}})
		return
	}
	state, err := c.quizSvc.SelectAnswer(*req.OptionIndex)
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Next godoc
// @Summary Move to the next question or finish
// @Description From the last question, enters review when every question is answered; otherwise jumps to the first unanswered question with incomplete_warning set.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizStateDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/next [post]
func (c *QuizController) Next(ctx *gin.Context) {
	state, err := c.quizSvc.Next()
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Previous godoc
// @Summary Move to the previous question
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizStateDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/previous [post]
func (c *QuizController) Previous(ctx *gin.Context) {
	state, err := c.quizSvc.Previous()
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GoTo godoc
// @Summary Jump to a question
// @Description Navigates to any question by index, leaving review mode and clearing the incomplete warning.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.GoToQuestionRequest true "Question index"
// @Success 200 {object} dto.QuizStateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/goto [post]
func (c *QuizController) GoTo(ctx *gin.Context) {
	var req dto.GoToQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: []string{err.Error()}})
		return
	}
	state, err := c.quizSvc.JumpTo(*req.Index)
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Restart godoc
// @Summary Restart the current quiz
// @Description Clears every answer and starts over on the same subject.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizStateDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/restart [post]
func (c *QuizController) Restart(ctx *gin.Context) {
	state, err := c.quizSvc.Restart()
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Reset godoc
// @Summary Abandon the quiz
// @Description Discards the attempt and the chosen subject entirely.
// @Tags Quiz
// @Produce json
// @Success 204
// @Router /quiz/reset [post]
func (c *QuizController) Reset(ctx *gin.Context) {
	c.quizSvc.Reset()
	ctx.Status(http.StatusNoContent)
}

// Results godoc
// @Summary Quiz results
// @Description Score plus per-question breakdown. Available once every question is answered and the quiz reached review.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizResultsDTO
// @Failure 409 {object} dto.ErrorResponse "Quiz not complete"
// @Router /quiz/results [get]
func (c *QuizController) Results(ctx *gin.Context) {
	results, err := c.quizSvc.Results()
	if err != nil {
		quizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
