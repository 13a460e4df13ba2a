package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visamarker/internal/domain"
)

type planJSON struct {
	ID          uuid.UUID     `json:"id"`
	Nationality string        `json:"nationality"`
	Destination string        `json:"destination"`
	TravelDate  string        `json:"travel_date"`
	Purpose     string        `json:"purpose"`
	Checklist   string        `json:"checklist"`
	Documents   []domain.Slot `json:"documents"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ---- POST /plans -----------------------------------------------------------

func TestCreatePlan_201(t *testing.T) {
	fixture := planFixture()
	var got domain.TripRequest
	svc := &mockPlanServicer{
		submit: func(_ context.Context, req domain.TripRequest) (domain.Plan, error) {
			got = req
			return fixture, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodPost, "/plans", jsonBody(t, map[string]any{
		"nationality": "Kenya",
		"destination": "Japan",
		"travel_date": "2025-06-01",
		"purpose":     "Tourism",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, fixture.Request, got)

	var resp planJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "2025-06-01", resp.TravelDate)
	assert.Equal(t, "# Visa Plan for Japan\n", resp.Checklist)
	require.Len(t, resp.Documents, 3)
	assert.Equal(t, domain.SlotCoverLetter, resp.Documents[0].Kind)
	assert.Equal(t, domain.SlotItinerary, resp.Documents[1].Kind)
	assert.Equal(t, domain.SlotBudget, resp.Documents[2].Kind)
	assert.Equal(t, domain.SlotSucceeded, resp.Documents[2].State)
}

func TestCreatePlan_422_ValidationError(t *testing.T) {
	svc := &mockPlanServicer{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			return domain.Plan{}, fmt.Errorf("service.PlanService.Submit: %w: nationality is required", domain.ErrValidation)
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodPost, "/plans", jsonBody(t, map[string]any{
		"destination": "Japan",
		"travel_date": "2025-06-01",
		"purpose":     "Tourism",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, "nationality is required", body.Error.Message)
}

func TestCreatePlan_422_MalformedDate(t *testing.T) {
	svc := &mockPlanServicer{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			t.Fatal("service must not be called")
			return domain.Plan{}, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodPost, "/plans", jsonBody(t, map[string]any{
		"nationality": "Kenya",
		"destination": "Japan",
		"travel_date": "01/06/2025",
		"purpose":     "Tourism",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}

func TestCreatePlan_422_NotJSON(t *testing.T) {
	svc := &mockPlanServicer{}
	rec := serve(newHTTPHandler(svc, nil), http.MethodPost, "/plans", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.True(t, strings.HasPrefix(decodeError(t, rec).Error.Message, "invalid request body"))
}

func TestCreatePlan_500_ChecklistFailure(t *testing.T) {
	svc := &mockPlanServicer{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			return domain.Plan{}, errors.New("visa table unavailable")
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodPost, "/plans", jsonBody(t, map[string]any{
		"nationality": "Kenya",
		"destination": "Japan",
		"travel_date": "2025-06-01",
		"purpose":     "Tourism",
	}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "visa table", "internal details must not leak")
}

// ---- GET /plans/{id} -------------------------------------------------------

func TestGetPlan_200(t *testing.T) {
	fixture := planFixture()
	svc := &mockPlanServicer{
		get: func(_ context.Context, id uuid.UUID) (domain.Plan, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodGet, "/plans/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp planJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Japan", resp.Destination)
	assert.Equal(t, fixture.CreatedAt, resp.CreatedAt)
}

func TestGetPlan_404(t *testing.T) {
	svc := &mockPlanServicer{
		get: func(_ context.Context, _ uuid.UUID) (domain.Plan, error) {
			return domain.Plan{}, domain.ErrNotFound
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodGet, "/plans/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "plan not found", body.Error.Message)
}

func TestGetPlan_422_BadID(t *testing.T) {
	rec := serve(newHTTPHandler(&mockPlanServicer{}, nil), http.MethodGet, "/plans/not-a-uuid", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "invalid plan id")
}

// ---- DELETE /plans/{id} ----------------------------------------------------

func TestDeletePlan_204(t *testing.T) {
	id := uuid.New()
	called := false
	svc := &mockPlanServicer{
		reset: func(_ context.Context, got uuid.UUID) error {
			called = true
			assert.Equal(t, id, got)
			return nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodDelete, "/plans/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
	assert.Empty(t, rec.Body.String())
}

func TestDeletePlan_404(t *testing.T) {
	svc := &mockPlanServicer{
		reset: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("service.PlanService.Reset: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodDelete, "/plans/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
