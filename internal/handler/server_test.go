package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visamarker/internal/domain"
	"github.com/pkordes/visamarker/internal/handler"
)

// mockPlanServicer is a test double for handler.PlanServicer.
// Set only the method fields your test needs.
type mockPlanServicer struct {
	submit    func(ctx context.Context, req domain.TripRequest) (domain.Plan, error)
	get       func(ctx context.Context, id uuid.UUID) (domain.Plan, error)
	reset     func(ctx context.Context, id uuid.UUID) error
	generate  func(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error)
	shareLink func(ctx context.Context, id uuid.UUID) (string, error)
}

func (m *mockPlanServicer) Submit(ctx context.Context, req domain.TripRequest) (domain.Plan, error) {
	return m.submit(ctx, req)
}
func (m *mockPlanServicer) Get(ctx context.Context, id uuid.UUID) (domain.Plan, error) {
	return m.get(ctx, id)
}
func (m *mockPlanServicer) Reset(ctx context.Context, id uuid.UUID) error {
	return m.reset(ctx, id)
}
func (m *mockPlanServicer) Generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error) {
	return m.generate(ctx, id, kind)
}
func (m *mockPlanServicer) ShareLink(ctx context.Context, id uuid.UUID) (string, error) {
	return m.shareLink(ctx, id)
}

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	export func(ctx context.Context, id uuid.UUID, name string, format domain.ExportFormat) (domain.Export, error)
}

func (m *mockExporter) Export(ctx context.Context, id uuid.UUID, name string, format domain.ExportFormat) (domain.Export, error) {
	return m.export(ctx, id, name, format)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.PlanServicer = (*mockPlanServicer)(nil)
	_ handler.Exporter     = (*mockExporter)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(plans handler.PlanServicer, export handler.Exporter) http.Handler {
	return handler.NewServer(plans, export, nil).Routes()
}

func planFixture() domain.Plan {
	req := domain.TripRequest{
		Nationality: "Kenya",
		Destination: "Japan",
		TravelDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Purpose:     domain.PurposeTourism,
	}
	plan := domain.NewPlan(uuid.New(), req, "# Visa Plan for Japan\n", time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	plan.Slots[domain.SlotBudget] = domain.Slot{
		Kind: domain.SlotBudget, State: domain.SlotSucceeded, Content: "# Budget\n", Attempts: 1,
	}
	return plan
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errorBody mirrors the JSON error envelope for decoding in tests.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func serve(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
