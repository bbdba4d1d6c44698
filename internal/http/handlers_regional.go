package http

import (
	"net/http"

	"mulga/internal/core"
	"mulga/internal/log"
	"mulga/internal/macro"
)

func (s *Server) handleRegional(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category")
	if categoryID == "" {
		categoryID = "overall"
	}

	records, ok := macro.RegionalRecords(categoryID)
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownCategory)
		return
	}

	var meta macro.RegionalCategory
	for _, c := range macro.RegionalCategories {
		if c.ID == categoryID {
			meta = c
			break
		}
	}

	extremes, err := core.ComputeRegionalExtremes(records)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Regional extremes failed",
			log.FieldCategory, categoryID,
			log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, errUpstreamFailure)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category":   meta,
		"categories": macro.RegionalCategories,
		"records":    records,
		"extremes":   extremes,
	})
}
