package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

// ContentController serves materials, the question bank and the subject
// index.
type ContentController struct {
	materialSvc service.MaterialService
	questionSvc service.QuestionService
}

func NewContentController(materialSvc service.MaterialService, questionSvc service.QuestionService) *ContentController {
	return &ContentController{materialSvc: materialSvc, questionSvc: questionSvc}
}

// GetSubjects godoc
// @Summary List subjects
// @Description Every subject label with its question count.
// @Tags Content
// @Produce json
// @Success 200 {array} dto.SubjectSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /subjects [get]
func (c *ContentController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.questionSvc.GetSubjects()
	if err != nil {
		log.Error().Err(err).Msg("GetSubjects: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetMaterials godoc
// @Summary List materials
// @Tags Content
// @Produce json
// @Param subject query string false "Filter by subject"
// @Success 200 {array} dto.MaterialResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /materials [get]
func (c *ContentController) GetMaterials(ctx *gin.Context) {
	materials, err := c.materialSvc.GetAllMaterials(ctx.Query("subject"))
	if err != nil {
		log.Error().Err(err).Msg("GetMaterials: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve materials"})
		return
	}
	ctx.JSON(http.StatusOK, materials)
}

// GetMaterial godoc
// @Summary Get a material
// @Tags Content
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} dto.MaterialResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{id} [get]
func (c *ContentController) GetMaterial(ctx *gin.Context) {
	material, err := c.materialSvc.GetMaterial(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrMaterialNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve material"})
		return
	}
	ctx.JSON(http.StatusOK, material)
}

// CreateMaterial godoc
// @Summary Add a material
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Material"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /materials [post]
func (c *ContentController) CreateMaterial(ctx *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid material", Details: []string{err.Error()}})
		return
	}
	material, err := c.materialSvc.CreateMaterial(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateMaterial: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save material"})
		return
	}
	ctx.JSON(http.StatusCreated, material)
}

// GetQuestions godoc
// @Summary List questions
// @Tags Content
// @Produce json
// @Param subject query string false "Filter by subject"
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *ContentController) GetQuestions(ctx *gin.Context) {
	questions, err := c.questionSvc.GetAllQuestions(ctx.Query("subject"))
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary Add a question
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionSvc.CreateQuestion(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}
