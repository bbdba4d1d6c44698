// Package kosis talks to the KOSIS open statistics API
// (kosis.kr/openapi), the upstream source for yearly price-index series.
package kosis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mulga/internal/core"
)

// DefaultBaseURL is the parameterized-statistics endpoint of the KOSIS
// open API.
const DefaultBaseURL = "https://kosis.kr/openapi/Param/statisticsParameterData.do"

// Fetcher retrieves a yearly index series for one item code. Years are
// inclusive 4-digit bounds.
type Fetcher interface {
	FetchYearly(ctx context.Context, code, startYear, endYear string) (core.Series, error)
}

// Client is an HTTP Fetcher against the living-price index table
// DT_1J22005.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

var _ Fetcher = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// FetchYearly requests the yearly series for an item code and returns it
// filtered to numeric values and sorted ascending by year. A KOSIS error
// envelope (a non-array JSON payload) yields an empty series and no
// error; transport and decode failures are errors.
func (c *Client) FetchYearly(ctx context.Context, code, startYear, endYear string) (core.Series, error) {
	q := url.Values{}
	q.Set("method", "getList")
	q.Set("apiKey", c.apiKey)
	q.Set("itmId", "T")
	q.Set("objL1", "T10")
	q.Set("objL2", code)
	q.Set("format", "json")
	q.Set("jsonVD", "Y")
	q.Set("prdSe", "Y")
	q.Set("orgId", "101")
	q.Set("tblId", "DT_1J22005")
	q.Set("startPrdDe", startYear)
	q.Set("endPrdDe", endYear)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build KOSIS request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch KOSIS series (code=%s): %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("KOSIS responded %d for code %s", resp.StatusCode, code)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read KOSIS response: %w", err)
	}

	series, err := ParseSeries(body)
	if err != nil {
		return nil, fmt.Errorf("parse KOSIS response (code=%s): %w", code, err)
	}
	return series, nil
}
