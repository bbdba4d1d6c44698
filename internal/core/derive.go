package core

import (
	"math"
	"sort"
	"strconv"
)

// LongTerm returns the raw series as-is. It exists so callers depend on
// the derivation layer's shape rather than on the fetcher's.
func LongTerm(s Series) Series {
	return s
}

// PriceSeries converts index points into estimated prices anchored to the
// base-year price, rounded to the nearest 100 KRW. An index of 0 yields a
// price of 0; a negative index yields a negative price, which callers
// treat as "no data".
func PriceSeries(s Series, basePrice int64) []PricePoint {
	out := make([]PricePoint, 0, len(s))
	for _, p := range s {
		out = append(out, PricePoint{
			Year:  p.Year,
			Price: estimatePrice(basePrice, p.Index),
		})
	}
	return out
}

// CurrentPrice is the estimated price at the latest observation. An empty
// series is priced at index 100, i.e. the base price itself.
func CurrentPrice(s Series, basePrice int64) int64 {
	idx := 100.0
	if latest, ok := s.Latest(); ok {
		idx = latest.Index
	}
	return estimatePrice(basePrice, idx)
}

func estimatePrice(basePrice int64, index float64) int64 {
	return int64(math.Round(float64(basePrice)*index/100/100)) * 100
}

// TenYearChange computes the percentage change between the latest point
// and the point ten years before it, rounded to one decimal. When the
// exact reference year is absent the series start is used instead; the
// returned FromYear tells which one it was. Returns ok=false for an empty
// series, an unparseable latest year, or a zero reference index.
func TenYearChange(s Series) (ChangeMetric, bool) {
	latest, ok := s.Latest()
	if !ok {
		return ChangeMetric{}, false
	}

	latestYear, err := strconv.Atoi(latest.Year)
	if err != nil {
		return ChangeMetric{}, false
	}
	targetYear := strconv.Itoa(latestYear - 10)

	ref := s[0]
	for _, p := range s {
		if p.Year == targetYear {
			ref = p
			break
		}
	}

	if ref.Index == 0 {
		return ChangeMetric{}, false
	}

	return ChangeMetric{
		FromYear: ref.Year,
		ToYear:   latest.Year,
		Percent:  round1((latest.Index - ref.Index) / ref.Index * 100),
	}, true
}

// Engine evaluates prices against injected wage tables. Tables are
// read-only after construction; methods are safe for concurrent use.
type Engine struct {
	minimumWage []WageRow
	averageWage []MonthlyWageRow
}

func NewEngine(minimumWage []WageRow, averageWage []MonthlyWageRow) *Engine {
	return &Engine{
		minimumWage: minimumWage,
		averageWage: averageWage,
	}
}

// WageEquivalent returns how many minutes of minimum-wage work buy the
// given price. A year of 0 selects the latest table row. Returns 0 when
// the price is non-positive or no row matches.
func (e *Engine) WageEquivalent(price int64, year int) int64 {
	var row *WageRow
	if year == 0 {
		if len(e.minimumWage) > 0 {
			row = &e.minimumWage[len(e.minimumWage)-1]
		}
	} else {
		for i := range e.minimumWage {
			if e.minimumWage[i].Year == year {
				row = &e.minimumWage[i]
				break
			}
		}
	}
	if row == nil || price <= 0 || row.Hourly <= 0 {
		return 0
	}
	return int64(math.Round(float64(price) / float64(row.Hourly) * 60))
}

// PurchaseCount returns how many units of an item the average monthly
// wage of the given year buys. Unlike WageEquivalent there is no
// latest-year fallback: a year without a row yields 0.
func (e *Engine) PurchaseCount(price int64, year int) int64 {
	for _, row := range e.averageWage {
		if row.Year == year {
			if price <= 0 {
				return 0
			}
			return row.Wage * 10000 / price
		}
	}
	return 0
}

// ComputeRegionalExtremes finds the highest and lowest region by index
// plus index/rate averages for one category. The sort is stable so ties
// resolve to the first-encountered record. An empty set is an error
// rather than a NaN average.
func ComputeRegionalExtremes(records []RegionalRecord) (RegionalExtremes, error) {
	if len(records) == 0 {
		return RegionalExtremes{}, ErrEmptyRegionSet
	}

	sorted := make([]RegionalRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index > sorted[j].Index
	})

	var indexSum, rateSum float64
	for _, r := range records {
		indexSum += r.Index
		rateSum += r.Rate
	}
	n := float64(len(records))

	return RegionalExtremes{
		Highest:     sorted[0],
		Lowest:      sorted[len(sorted)-1],
		Average:     round1(indexSum / n),
		RateAverage: round1(rateSum / n),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
