package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/lshigami/learnhub/internal/service"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	authSvc := service.NewAuthService(
		[]string{"EDU-7K9D-2X3F"},
		repository.NewAccessCodeRepository(store),
		repository.NewSessionRepository(store),
	)
	questionRepo := repository.NewQuestionRepository(store)
	quizSvc := service.NewQuizService(questionRepo)
	questionSvc := service.NewQuestionService(questionRepo)
	materialSvc := service.NewMaterialService(repository.NewMaterialRepository(store))

	authCtrl := NewAuthController(authSvc)
	quizCtrl := NewQuizController(quizSvc)
	contentCtrl := NewContentController(materialSvc, questionSvc)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.GET("/auth/session", authCtrl.Session)

	portal := api.Group("")
	portal.Use(RequireAuth(authSvc), ContentProtection())
	portal.GET("/subjects", contentCtrl.GetSubjects)
	portal.GET("/materials", contentCtrl.GetMaterials)
	portal.POST("/quiz/start", quizCtrl.Start)
	portal.POST("/quiz/answer", quizCtrl.Answer)
	portal.POST("/quiz/next", quizCtrl.Next)
	portal.GET("/quiz/results", quizCtrl.Results)

	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const loginBody = `{"email":"a@x.com","username":"alice","password":"secret","access_code":"edu-7k9d-2x3f"}`

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))
}

func TestLoginInvalidCodeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","username":"alice","password":"secret","access_code":"WRONG"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginConflictEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"b@x.com","username":"bob","password":"secret","access_code":"EDU-7K9D-2X3F"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.False(t, session.Authenticated)

	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	rec = doJSON(router, http.MethodGet, "/api/v1/auth/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.True(t, session.Authenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)
}

func TestRequireAuthGate(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/subjects", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	rec = doJSON(router, http.MethodGet, "/api/v1/subjects", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	doJSON(router, http.MethodPost, "/api/v1/auth/logout", "")

	rec = doJSON(router, http.MethodGet, "/api/v1/subjects", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContentProtectionHeaders(t *testing.T) {
	router := newTestRouter(t)
	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	rec := doJSON(router, http.MethodGet, "/api/v1/materials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
}

func TestQuizFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	// The bundled Mathematics bank has two questions, both correct at 1.
	rec := doJSON(router, http.MethodPost, "/api/v1/quiz/start", `{"subject":"Mathematics"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state dto.QuizStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 2, state.TotalQuestions)
	require.NotNil(t, state.CurrentQuestion)
	assert.NotContains(t, rec.Body.String(), "correct_answer", "unanswered question never leaks the answer")

	rec = doJSON(router, http.MethodPost, "/api/v1/quiz/answer", `{"option_index":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(router, http.MethodPost, "/api/v1/quiz/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(router, http.MethodPost, "/api/v1/quiz/answer", `{"option_index":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(router, http.MethodPost, "/api/v1/quiz/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.ShowingReview)

	rec = doJSON(router, http.MethodGet, "/api/v1/quiz/results", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var results dto.QuizResultsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Equal(t, 2, results.Score.Correct)
	assert.Equal(t, 100, results.Score.Percentage)
}

func TestQuizStartUnknownSubject(t *testing.T) {
	router := newTestRouter(t)
	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	rec := doJSON(router, http.MethodPost, "/api/v1/quiz/start", `{"subject":"Astrology"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizResultsBeforeCompletion(t *testing.T) {
	router := newTestRouter(t)
	doJSON(router, http.MethodPost, "/api/v1/auth/login", loginBody)

	rec := doJSON(router, http.MethodGet, "/api/v1/quiz/results", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	doJSON(router, http.MethodPost, "/api/v1/quiz/start", `{"subject":"Mathematics"}`)
	rec = doJSON(router, http.MethodGet, "/api/v1/quiz/results", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
