package handler

import "net/http"

type shareResponse struct {
	URL string `json:"url"`
}

// GetShareLink handles GET /plans/{id}/share.
func (s *Server) GetShareLink(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	link, err := s.plans.ShareLink(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "plan not found", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{URL: link})
}
