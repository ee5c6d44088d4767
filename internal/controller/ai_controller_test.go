package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testJwtSecret = "test-secret"

type stubAiService struct {
	flashcardsRes *dto.GenerateFlashcardsResponse
	quizRes       *dto.GenerateQuizResponse
	summaryRes    *dto.GenerateSummaryResponse
	mindMapRes    *dto.GenerateMindMapResponse
	err           error

	lastUserId uuid.UUID
	calls      int
}

func (s *stubAiService) GenerateFlashcards(ctx context.Context, userId uuid.UUID, req *dto.GenerateFlashcardsRequest) (*dto.GenerateFlashcardsResponse, error) {
	s.calls++
	s.lastUserId = userId
	return s.flashcardsRes, s.err
}

func (s *stubAiService) GenerateQuiz(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	s.calls++
	s.lastUserId = userId
	return s.quizRes, s.err
}

func (s *stubAiService) GenerateSummary(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error) {
	s.calls++
	s.lastUserId = userId
	return s.summaryRes, s.err
}

func (s *stubAiService) GenerateMindMap(ctx context.Context, userId uuid.UUID, req *dto.GenerateMindMapRequest) (*dto.GenerateMindMapResponse, error) {
	s.calls++
	s.lastUserId = userId
	return s.mindMapRes, s.err
}

func newAiTestApp(svc *stubAiService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewAiController(svc).RegisterRoutes(api)
	return app
}

func signTestToken(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
		"email":   "student@example.com",
		"role":    "STUDENT",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJwtSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	resBody, _ := io.ReadAll(res.Body)
	var parsed map[string]interface{}
	_ = json.Unmarshal(resBody, &parsed)
	return res.StatusCode, parsed
}

func TestAiRoutesRequireToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{}
	app := newAiTestApp(svc)

	for _, path := range []string{
		"/api/ai/v1/flashcards",
		"/api/ai/v1/quiz",
		"/api/ai/v1/summarize",
		"/api/ai/v1/mindmap",
	} {
		status, body := postJSON(t, app, path, "", map[string]interface{}{})
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.Equal(t, false, body["success"], path)
	}
	assert.Equal(t, 0, svc.calls, "service must not be reached without a token")
}

func TestAiRoutesRejectBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newAiTestApp(&stubAiService{})

	req := httptest.NewRequest("POST", "/api/ai/v1/flashcards", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestGenerateFlashcardsSuccessEnvelope(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	userId := uuid.New()
	svc := &stubAiService{
		flashcardsRes: &dto.GenerateFlashcardsResponse{
			Flashcards: []dto.FlashcardResponse{
				{Id: uuid.New(), Front: "Q", Back: "A", Difficulty: 1, CreatedAt: time.Now()},
			},
		},
	}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/flashcards", signTestToken(t, userId), map[string]interface{}{
		"text_content": "cells",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Success generate flashcards", body["message"])
	assert.Equal(t, userId, svc.lastUserId, "user id comes from the token, not the body")

	data := body["data"].(map[string]interface{})
	cards := data["flashcards"].([]interface{})
	assert.Len(t, cards, 1)
}

func TestGenerateFlashcardsCountValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/flashcards", signTestToken(t, uuid.New()), map[string]interface{}{
		"text_content": "cells",
		"count":        25,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, 0, svc.calls, "body validation rejects before the service")
}

func TestGenerateSummaryNoContentIs400(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{
		err: apperrors.WithMessage(apperrors.ErrNoContent, "No content provided for summary generation"),
	}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/summarize", signTestToken(t, uuid.New()), map[string]interface{}{})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No content provided for summary generation", body["message"])
}

func TestGenerateMindMapRequiresContentIds(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/mindmap", signTestToken(t, uuid.New()), map[string]interface{}{
		"content_ids": []string{},
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, 0, svc.calls)
}

func TestGenerateQuizBackendFailureIs500WithStableMessage(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{
		err: apperrors.WithMessage(apperrors.ErrGenerationBackend, "Failed to generate quiz. Please try again."),
	}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/quiz", signTestToken(t, uuid.New()), map[string]interface{}{
		"text_content": "notes",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to generate quiz. Please try again.", body["message"])
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	svc := &stubAiService{
		err: assert.AnError,
	}
	app := newAiTestApp(svc)

	status, body := postJSON(t, app, "/api/ai/v1/quiz", signTestToken(t, uuid.New()), map[string]interface{}{
		"text_content": "notes",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}
