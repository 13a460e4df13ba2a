package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/visamarker/internal/domain"
)

// GenerateDocument handles POST /plans/{id}/documents/{kind}.
// It responds 200 with the slot whether generation succeeded or failed; a
// failed slot carries its error message and is retried on the next call.
func (s *Server) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	kind, err := domain.ParseSlotKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	slot, err := s.plans.Generate(r.Context(), id, kind)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; the generation continues for the next caller.
			return
		}
		s.writeError(w, r, err, "plan not found", "could not generate "+kind.Title())
		return
	}
	writeJSON(w, http.StatusOK, slot)
}
