package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/visamarker/internal/domain"
)

// planRequest is the POST /plans body.
type planRequest struct {
	Nationality string              `json:"nationality"`
	Destination string              `json:"destination"`
	TravelDate  *openapi_types.Date `json:"travel_date"`
	Purpose     string              `json:"purpose"`
}

// planResponse is the JSON form of a domain.Plan. Documents are listed in
// display order: cover letter, itinerary, budget.
type planResponse struct {
	ID          uuid.UUID          `json:"id"`
	Nationality string             `json:"nationality"`
	Destination string             `json:"destination"`
	TravelDate  openapi_types.Date `json:"travel_date"`
	Purpose     string             `json:"purpose"`
	Checklist   string             `json:"checklist"`
	Documents   []domain.Slot      `json:"documents"`
	CreatedAt   time.Time          `json:"created_at"`
}

// CreatePlan handles POST /plans.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	plan, err := s.plans.Submit(r.Context(), requestToTrip(body))
	if err != nil {
		s.writeError(w, r, err, "plan not found", "could not generate your visa plan")
		return
	}
	writeJSON(w, http.StatusCreated, planToResponse(plan))
}

// GetPlan handles GET /plans/{id}.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	plan, err := s.plans.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "plan not found", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, planToResponse(plan))
}

// DeletePlan handles DELETE /plans/{id}: the reset action. Documents still
// being generated for the plan are discarded when they finish.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	if err := s.plans.Reset(r.Context(), id); err != nil {
		s.writeError(w, r, err, "plan not found", "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// planID binds the {id} path parameter. On failure it writes a 422 and
// returns false.
func planID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid plan id: "+chi.URLParam(r, "id")))
		return uuid.Nil, false
	}
	return id, true
}

// requestToTrip converts a planRequest body into a domain.TripRequest.
// A missing travel_date stays zero and is rejected by the service.
func requestToTrip(body planRequest) domain.TripRequest {
	req := domain.TripRequest{
		Nationality: body.Nationality,
		Destination: body.Destination,
		Purpose:     body.Purpose,
	}
	if body.TravelDate != nil {
		req.TravelDate = body.TravelDate.Time
	}
	return req
}

// planToResponse converts a domain.Plan into its JSON form.
func planToResponse(p domain.Plan) planResponse {
	docs := make([]domain.Slot, 0, len(domain.SlotKinds))
	for _, k := range domain.SlotKinds {
		docs = append(docs, p.Slot(k))
	}
	return planResponse{
		ID:          p.ID,
		Nationality: p.Request.Nationality,
		Destination: p.Request.Destination,
		TravelDate:  openapi_types.Date{Time: p.Request.TravelDate},
		Purpose:     p.Request.Purpose,
		Checklist:   p.Checklist,
		Documents:   docs,
		CreatedAt:   p.CreatedAt,
	}
}
