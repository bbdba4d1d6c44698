package core

import "errors"

type (
	// IndexPoint is one yearly observation of a price index (2020 = 100).
	IndexPoint struct {
		Year  string  `json:"year"`
		Index float64 `json:"index"`
	}

	// Series is an ascending-by-year sequence of index points. Gaps are
	// allowed; duplicate years are not.
	Series []IndexPoint

	// PricePoint is an estimated absolute price (KRW) for one year.
	PricePoint struct {
		Year  string `json:"year"`
		Price int64  `json:"price"`
	}

	// ChangeMetric describes a percentage change between two years of a
	// series. FromYear is the reference year actually used, which may be
	// the series start when the ten-years-back year is missing.
	ChangeMetric struct {
		FromYear string  `json:"fromYear"`
		ToYear   string  `json:"toYear"`
		Percent  float64 `json:"percent"`
	}

	// RegionalRecord is one region's index and year-over-year rate for a
	// single category.
	RegionalRecord struct {
		Region string  `json:"region"`
		Index  float64 `json:"index"`
		Rate   float64 `json:"rate"`
	}

	// RegionalExtremes summarizes a set of regional records.
	RegionalExtremes struct {
		Highest     RegionalRecord `json:"highest"`
		Lowest      RegionalRecord `json:"lowest"`
		Average     float64        `json:"average"`
		RateAverage float64        `json:"rateAverage"`
	}

	// WageRow is one year of the hourly minimum wage table (KRW).
	WageRow struct {
		Year   int   `json:"year"`
		Hourly int64 `json:"hourly"`
	}

	// MonthlyWageRow is one year of the average monthly wage table, in
	// units of 10,000 KRW as published.
	MonthlyWageRow struct {
		Year int   `json:"year"`
		Wage int64 `json:"wage"`
	}
)

var ErrEmptyRegionSet = errors.New("empty region set")

// Latest returns the last point of the series.
func (s Series) Latest() (IndexPoint, bool) {
	if len(s) == 0 {
		return IndexPoint{}, false
	}
	return s[len(s)-1], true
}
