package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authSvc service.AuthService
}

func NewAuthController(authSvc service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Login godoc
// @Summary Log in with an access code
// @Description Validates the access code against the allowlist, enforces the one-code-per-email binding and opens the session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login form"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed request"
// @Failure 401 {object} dto.ErrorResponse "Invalid access code"
// @Failure 409 {object} dto.ErrorResponse "Access code bound to a different email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid login request", Details: []string{err.Error()}})
		return
	}

	user, err := c.authSvc.Login(req.Email, req.Username, req.Password, req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidAccessCode):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, model.ErrAccessCodeConflict):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Login failed")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An unexpected error occurred during login. Please try again."})
		}
		return
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing login response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Clears the persisted session. Access-code bindings are kept so the same email can log in again.
// @Tags Auth
// @Produce json
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authSvc.Logout(); err != nil {
		log.Error().Err(err).Msg("Logout failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log out"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Session godoc
// @Summary Current session
// @Description Returns the authenticated user, if any.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	user := c.authSvc.CurrentSession()
	resp := dto.SessionResponse{Authenticated: user != nil}
	if user != nil {
		var userResp dto.UserResponse
		if err := copier.Copy(&userResp, user); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing session response"})
			return
		}
		resp.User = &userResp
	}
	ctx.JSON(http.StatusOK, resp)
}
