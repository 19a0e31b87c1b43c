package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/classguard/classguard-api/internal/handler"
)

type mockReviewService struct {
	lastProgress float64
	reply        string
	err          error
}

func (m *mockReviewService) Review(_ context.Context, progress float64) (string, error) {
	m.lastProgress = progress
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func reviewApp(svc *mockReviewService) *fiber.App {
	app := fiber.New()
	handler.NewReviewHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1"))
	return app
}

func TestReviewHandlerSuccess(t *testing.T) {
	svc := &mockReviewService{reply: "Great pace keep going"}
	app := reviewApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai-review?progress=76", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Res     string `json:"res"`
	}
	decodeResponse(t, resp, &body)

	require.True(t, body.Success)
	require.Equal(t, "Great pace keep going", body.Res)
	require.Equal(t, float64(76), svc.lastProgress)
}

func TestReviewHandlerFractionalProgress(t *testing.T) {
	svc := &mockReviewService{reply: "ok"}
	app := reviewApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai-review?progress=12.5", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 12.5, svc.lastProgress)
}

func TestReviewHandlerNonNumericProgress(t *testing.T) {
	svc := &mockReviewService{reply: "ok"}
	app := reviewApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai-review?progress=oops", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReviewHandlerUpstreamFailure(t *testing.T) {
	svc := &mockReviewService{err: errors.New("upstream unreachable")}
	app := reviewApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai-review?progress=40", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.False(t, body.Success)
	require.Equal(t, "AI Error", body.Message)
}
