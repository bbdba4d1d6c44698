package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mulga/internal/amqp"
	"mulga/internal/catalog"
	"mulga/internal/core"
	"mulga/internal/log"
	"mulga/internal/macro"
	"mulga/internal/snapshot"
)

// inflationResponse is the proxy endpoint payload. LongTerm carries the
// raw index series, FiveYear the derived price series over the same
// periods. TenYearIncrease and LastUpdated are null when the series is
// empty. Source is "snapshot" when stale stored data was served.
type inflationResponse struct {
	Category        string            `json:"category"`
	LongTerm        core.Series       `json:"longTerm"`
	FiveYear        []core.PricePoint `json:"fiveYear"`
	CurrentPrice    int64             `json:"currentPrice"`
	TenYearIncrease *float64          `json:"tenYearIncrease"`
	LastUpdated     *string           `json:"lastUpdated"`
	Source          string            `json:"source,omitempty"`
}

func buildInflationResponse(item catalog.Item, series core.Series) inflationResponse {
	longTerm := core.LongTerm(series)
	if longTerm == nil {
		longTerm = core.Series{}
	}

	resp := inflationResponse{
		Category:     item.Category,
		LongTerm:     longTerm,
		FiveYear:     core.PriceSeries(series, item.BasePrice),
		CurrentPrice: core.CurrentPrice(series, item.BasePrice),
	}

	if change, ok := core.TenYearChange(series); ok {
		resp.TenYearIncrease = &change.Percent
	}
	if latest, ok := series.Latest(); ok {
		year := latest.Year
		resp.LastUpdated = &year
	}

	return resp
}

// fetchSeries retrieves the series from KOSIS, falling back to the last
// stored snapshot when the upstream fails. A fallback hit queues a
// refresh so the snapshot does not stay stale forever. The bool reports
// whether the snapshot path was taken.
func (s *Server) fetchSeries(ctx context.Context, code string) (core.Series, bool, error) {
	endYear := strconv.Itoa(time.Now().Year())

	series, err := s.fetcher.FetchYearly(ctx, code, s.startYear, endYear)
	if err == nil {
		return series, false, nil
	}

	s.logger.ErrorContext(ctx, "Upstream fetch failed",
		log.FieldItemCode, code,
		log.FieldError, err.Error())

	if s.snapshots == nil {
		return nil, false, err
	}

	stored, fetchedAt, loadErr := s.snapshots.Load(ctx, code)
	if loadErr != nil {
		if !errors.Is(loadErr, snapshot.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Snapshot load failed",
				log.FieldItemCode, code,
				log.FieldError, loadErr.Error())
		}
		return nil, false, err
	}

	s.logger.WarnContext(ctx, "Serving stale snapshot",
		log.FieldItemCode, code,
		log.FieldSource, "snapshot",
		"fetched_at", fetchedAt.Format(time.RFC3339))

	if s.publisher != nil {
		if pubErr := s.publisher.PublishRefresh(ctx, code, amqp.ReasonUpstream); pubErr != nil {
			s.logger.WarnContext(ctx, "Refresh publish failed",
				log.FieldItemCode, code,
				log.FieldError, pubErr.Error())
		}
	}

	return stored, true, nil
}

func (s *Server) handleInflation(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, errMissingCode)
		return
	}

	item, ok := s.catalog.ByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownCode)
		return
	}

	if s.apiKey == "" {
		writeError(w, http.StatusInternalServerError, errMissingAPIKey)
		return
	}

	if cached, found := s.inflationCache.Get(code); found {
		s.logger.DebugContext(r.Context(), "Inflation cache hit", log.FieldItemCode, code)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	series, fromSnapshot, err := s.fetchSeries(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errUpstreamFailure)
		return
	}

	resp := buildInflationResponse(item, series)
	if fromSnapshot {
		resp.Source = "snapshot"
	} else {
		// Snapshot-backed responses stay out of the cache so a recovered
		// upstream is retried on the next request.
		s.inflationCache.Set(code, resp)
	}

	writeJSON(w, http.StatusOK, resp)
}

// affordabilityResponse relates an item's current price to wages: how
// many minutes of minimum-wage work it costs and how many units one
// average monthly wage buys.
type affordabilityResponse struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	CurrentPrice         int64  `json:"currentPrice"`
	WorkMinutes          int64  `json:"workMinutes"`
	MinimumWageYear      int    `json:"minimumWageYear"`
	MinimumWageHourly    int64  `json:"minimumWageHourly"`
	MonthlyPurchaseCount int64  `json:"monthlyPurchaseCount"`
	AverageWageYear      int    `json:"averageWageYear"`
	Source               string `json:"source,omitempty"`
}

func (s *Server) handleAffordability(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, errMissingCode)
		return
	}

	item, ok := s.catalog.ByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownCode)
		return
	}

	if s.apiKey == "" {
		writeError(w, http.StatusInternalServerError, errMissingAPIKey)
		return
	}

	var (
		price        int64
		fromSnapshot bool
	)
	if cached, found := s.inflationCache.Get(code); found {
		price = cached.CurrentPrice
		fromSnapshot = cached.Source == "snapshot"
	} else {
		series, snap, err := s.fetchSeries(r.Context(), code)
		if err != nil {
			writeError(w, http.StatusInternalServerError, errUpstreamFailure)
			return
		}
		price = core.CurrentPrice(series, item.BasePrice)
		fromSnapshot = snap
	}

	minWage := macro.LatestWage()
	avgWage := macro.LatestAvgWage()

	resp := affordabilityResponse{
		Code:                 item.Code,
		Name:                 item.Name,
		CurrentPrice:         price,
		WorkMinutes:          s.engine.WageEquivalent(price, 0),
		MinimumWageYear:      minWage.Year,
		MinimumWageHourly:    minWage.Hourly,
		MonthlyPurchaseCount: s.engine.PurchaseCount(price, avgWage.Year),
		AverageWageYear:      avgWage.Year,
	}
	if fromSnapshot {
		resp.Source = "snapshot"
	}

	writeJSON(w, http.StatusOK, resp)
}
