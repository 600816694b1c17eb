package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/middleware"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/service"
	"github.com/pawsition/pawsition-api/internal/utils"
)

type stubSubmissionService struct {
	listFn   func(ctx context.Context, filter dto.SubmissionFilter, actor service.Actor) ([]dto.SubmissionResponse, error)
	createFn func(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error)
	decideFn func(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor service.Actor) (dto.SubmissionResponse, error)
}

func (s *stubSubmissionService) List(ctx context.Context, filter dto.SubmissionFilter, actor service.Actor) ([]dto.SubmissionResponse, error) {
	return s.listFn(ctx, filter, actor)
}

func (s *stubSubmissionService) Create(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
	return s.createFn(ctx, payload)
}

func (s *stubSubmissionService) Decide(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor service.Actor) (dto.SubmissionResponse, error) {
	return s.decideFn(ctx, id, payload, actor)
}

// newSubmissionApp wires the handler behind a middleware that fakes an
// authenticated user, mirroring what the JWT middleware stores in locals.
func newSubmissionApp(svc service.SubmissionService, userID uint, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		return c.Next()
	})

	h := NewSubmissionHandler(svc, zerolog.New(io.Discard))
	h.Register(app.Group("/submissions"), middleware.RequireRole(models.RoleTrainer, models.RoleAdmin))

	return app
}

func decodeResponse(t *testing.T, body io.Reader) utils.APIResponse {
	t.Helper()

	var response utils.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&response))
	return response
}

func TestSubmissionCreateEndpoint(t *testing.T) {
	svc := &stubSubmissionService{
		createFn: func(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
			return dto.SubmissionResponse{ID: 1, UserID: payload.UserID, SkillID: payload.SkillID, Status: models.SubmissionStatusSubmitted}, nil
		},
	}
	app := newSubmissionApp(svc, 1, models.RoleMember)

	payload, err := json.Marshal(dto.SubmissionCreateRequest{UserID: 1, SkillID: 10, Mode: models.SubmissionModeSelfSubmit})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/submissions", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeResponse(t, resp.Body)
	assert.True(t, body.Success)
}

func TestSubmissionCreateConflictMapsToBadRequest(t *testing.T) {
	svc := &stubSubmissionService{
		createFn: func(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
			return dto.SubmissionResponse{}, service.ErrSubmissionPending
		},
	}
	app := newSubmissionApp(svc, 1, models.RoleMember)

	req := httptest.NewRequest(fiber.MethodPost, "/submissions", bytes.NewReader([]byte(`{"user_id":1,"skill_id":10,"mode":"self_submit"}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp.Body)
	assert.False(t, body.Success)
	assert.Equal(t, "submission already pending", body.Message)
}

func TestSubmissionDecideRequiresTrainerRole(t *testing.T) {
	svc := &stubSubmissionService{
		decideFn: func(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor service.Actor) (dto.SubmissionResponse, error) {
			return dto.SubmissionResponse{ID: id, Status: payload.Status}, nil
		},
	}
	app := newSubmissionApp(svc, 1, models.RoleMember)

	req := httptest.NewRequest(fiber.MethodPatch, "/submissions/1", bytes.NewReader([]byte(`{"status":"approved"}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSubmissionDecideOutsideClassesMapsToForbidden(t *testing.T) {
	svc := &stubSubmissionService{
		decideFn: func(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor service.Actor) (dto.SubmissionResponse, error) {
			return dto.SubmissionResponse{}, service.ErrOutsideTrainerClasses
		},
	}
	app := newSubmissionApp(svc, 2, models.RoleTrainer)

	req := httptest.NewRequest(fiber.MethodPatch, "/submissions/1", bytes.NewReader([]byte(`{"status":"approved"}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSubmissionListForwardsActor(t *testing.T) {
	var seen service.Actor
	svc := &stubSubmissionService{
		listFn: func(ctx context.Context, filter dto.SubmissionFilter, actor service.Actor) ([]dto.SubmissionResponse, error) {
			seen = actor
			return []dto.SubmissionResponse{}, nil
		},
	}
	app := newSubmissionApp(svc, 7, models.RoleTrainer)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/submissions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, service.Actor{ID: 7, Role: models.RoleTrainer}, seen)
}
