package http

import (
	"net/http"

	"mulga/internal/macro"
)

func (s *Server) handleMinimumWage(w http.ResponseWriter, r *http.Request) {
	latest := macro.LatestWage()
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":          macro.MinimumWage,
		"latest":        latest,
		"latestMonthly": macro.MonthlyMinimumWage(latest.Year),
	})
}

func (s *Server) handleCPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":   macro.CPIRate,
		"latest": macro.CPIRate[len(macro.CPIRate)-1],
	})
}

func (s *Server) handleGDP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":   macro.GDPGrowth,
		"latest": macro.GDPGrowth[len(macro.GDPGrowth)-1],
	})
}

func (s *Server) handleEmployment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":   macro.Employment,
		"latest": macro.Employment[len(macro.Employment)-1],
	})
}

func (s *Server) handleAverageWage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":   macro.AvgMonthlyWage,
		"latest": macro.LatestAvgWage(),
	})
}
