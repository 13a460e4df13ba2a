package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visamarker/internal/domain"
)

func TestGetShareLink_200(t *testing.T) {
	svc := &mockPlanServicer{
		shareLink: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "https://api.whatsapp.com/send?text=hi", nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodGet, "/plans/"+uuid.NewString()+"/share", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "https://api.whatsapp.com/send?text=hi", body.URL)
}

func TestGetShareLink_404(t *testing.T) {
	svc := &mockPlanServicer{
		shareLink: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "", domain.ErrNotFound
		},
	}

	rec := serve(newHTTPHandler(svc, nil), http.MethodGet, "/plans/"+uuid.NewString()+"/share", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
