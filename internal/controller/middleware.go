package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/service"
)

// RequireAuth rejects requests until a session has been established through
// login (or restored at startup). The portal has a single session; there is
// no per-request token.
func RequireAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !authSvc.IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		ctx.Next()
	}
}

// ContentProtection sets the response headers that keep learning content out
// of caches and embedding frames. Applied at the route-composition boundary;
// the services never know about it.
func ContentProtection() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		ctx.Header("Pragma", "no-cache")
		ctx.Header("X-Frame-Options", "DENY")
		ctx.Header("X-Content-Type-Options", "nosniff")
		ctx.Next()
	}
}
