package handler

import (
	"net/http"

	"github.com/pkordes/visamarker/internal/domain"
)

type optionsResponse struct {
	Nationalities []string `json:"nationalities"`
	Destinations  []string `json:"destinations"`
	Purposes      []string `json:"purposes"`
}

// GetOptions handles GET /options: the values the plan form offers.
func (s *Server) GetOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		Nationalities: domain.Countries(),
		Destinations:  domain.Destinations(),
		Purposes:      domain.Purposes(),
	})
}
