// Package macro holds the compiled-in Korean macroeconomic reference
// tables: minimum wage (고용노동부), CPI and employment figures (통계청),
// GDP growth (한국은행). Every table is ordered by strictly ascending,
// unique years; the latest figure is always the last row.
package macro

import "mulga/internal/core"

type (
	// RateYear is one year of a percentage indicator.
	RateYear struct {
		Year int     `json:"year"`
		Rate float64 `json:"rate"`
	}

	// EmploymentYear pairs the employment and unemployment rates (%,
	// population 15+) for one year.
	EmploymentYear struct {
		Year         int     `json:"year"`
		Employment   float64 `json:"employment"`
		Unemployment float64 `json:"unemployment"`
	}
)

// MinimumWage is the statutory hourly minimum wage (KRW).
var MinimumWage = []core.WageRow{
	{Year: 2000, Hourly: 1600},
	{Year: 2001, Hourly: 1865},
	{Year: 2002, Hourly: 2100},
	{Year: 2003, Hourly: 2275},
	{Year: 2004, Hourly: 2510},
	{Year: 2005, Hourly: 2840},
	{Year: 2006, Hourly: 3100},
	{Year: 2007, Hourly: 3480},
	{Year: 2008, Hourly: 3770},
	{Year: 2009, Hourly: 4000},
	{Year: 2010, Hourly: 4110},
	{Year: 2011, Hourly: 4320},
	{Year: 2012, Hourly: 4580},
	{Year: 2013, Hourly: 4860},
	{Year: 2014, Hourly: 5210},
	{Year: 2015, Hourly: 5580},
	{Year: 2016, Hourly: 6030},
	{Year: 2017, Hourly: 6470},
	{Year: 2018, Hourly: 7530},
	{Year: 2019, Hourly: 8350},
	{Year: 2020, Hourly: 8590},
	{Year: 2021, Hourly: 8720},
	{Year: 2022, Hourly: 9160},
	{Year: 2023, Hourly: 9620},
	{Year: 2024, Hourly: 9860},
	{Year: 2025, Hourly: 10030},
	{Year: 2026, Hourly: 10320},
}

// CPIRate is the year-over-year consumer-price change (%).
var CPIRate = []RateYear{
	{Year: 2000, Rate: 2.3},
	{Year: 2001, Rate: 4.1},
	{Year: 2002, Rate: 2.8},
	{Year: 2003, Rate: 3.5},
	{Year: 2004, Rate: 3.6},
	{Year: 2005, Rate: 2.8},
	{Year: 2006, Rate: 2.2},
	{Year: 2007, Rate: 2.5},
	{Year: 2008, Rate: 4.7},
	{Year: 2009, Rate: 2.8},
	{Year: 2010, Rate: 2.9},
	{Year: 2011, Rate: 4.0},
	{Year: 2012, Rate: 2.2},
	{Year: 2013, Rate: 1.3},
	{Year: 2014, Rate: 1.3},
	{Year: 2015, Rate: 0.7},
	{Year: 2016, Rate: 1.0},
	{Year: 2017, Rate: 1.9},
	{Year: 2018, Rate: 1.5},
	{Year: 2019, Rate: 0.4},
	{Year: 2020, Rate: 0.5},
	{Year: 2021, Rate: 2.5},
	{Year: 2022, Rate: 5.1},
	{Year: 2023, Rate: 3.6},
	{Year: 2024, Rate: 2.3},
}

// GDPGrowth is the real GDP growth rate (%).
var GDPGrowth = []RateYear{
	{Year: 2000, Rate: 9.1},
	{Year: 2001, Rate: 4.5},
	{Year: 2002, Rate: 7.4},
	{Year: 2003, Rate: 2.9},
	{Year: 2004, Rate: 4.9},
	{Year: 2005, Rate: 3.9},
	{Year: 2006, Rate: 5.2},
	{Year: 2007, Rate: 5.5},
	{Year: 2008, Rate: 2.8},
	{Year: 2009, Rate: 0.8},
	{Year: 2010, Rate: 6.8},
	{Year: 2011, Rate: 3.7},
	{Year: 2012, Rate: 2.4},
	{Year: 2013, Rate: 3.2},
	{Year: 2014, Rate: 3.2},
	{Year: 2015, Rate: 2.8},
	{Year: 2016, Rate: 2.9},
	{Year: 2017, Rate: 3.2},
	{Year: 2018, Rate: 2.9},
	{Year: 2019, Rate: 2.2},
	{Year: 2020, Rate: -0.7},
	{Year: 2021, Rate: 4.3},
	{Year: 2022, Rate: 2.6},
	{Year: 2023, Rate: 1.4},
	{Year: 2024, Rate: 2.0},
}

// Employment is the employment/unemployment rate series.
var Employment = []EmploymentYear{
	{Year: 2000, Employment: 58.5, Unemployment: 4.4},
	{Year: 2001, Employment: 59.0, Unemployment: 4.0},
	{Year: 2002, Employment: 60.0, Unemployment: 3.3},
	{Year: 2003, Employment: 59.3, Unemployment: 3.6},
	{Year: 2004, Employment: 59.8, Unemployment: 3.7},
	{Year: 2005, Employment: 59.7, Unemployment: 3.7},
	{Year: 2006, Employment: 59.7, Unemployment: 3.5},
	{Year: 2007, Employment: 59.8, Unemployment: 3.2},
	{Year: 2008, Employment: 59.5, Unemployment: 3.2},
	{Year: 2009, Employment: 58.6, Unemployment: 3.6},
	{Year: 2010, Employment: 58.7, Unemployment: 3.7},
	{Year: 2011, Employment: 59.1, Unemployment: 3.4},
	{Year: 2012, Employment: 59.4, Unemployment: 3.2},
	{Year: 2013, Employment: 59.5, Unemployment: 3.1},
	{Year: 2014, Employment: 60.2, Unemployment: 3.5},
	{Year: 2015, Employment: 60.3, Unemployment: 3.6},
	{Year: 2016, Employment: 60.4, Unemployment: 3.7},
	{Year: 2017, Employment: 60.8, Unemployment: 3.7},
	{Year: 2018, Employment: 60.7, Unemployment: 3.8},
	{Year: 2019, Employment: 60.9, Unemployment: 3.8},
	{Year: 2020, Employment: 60.1, Unemployment: 4.0},
	{Year: 2021, Employment: 60.5, Unemployment: 3.7},
	{Year: 2022, Employment: 62.1, Unemployment: 2.9},
	{Year: 2023, Employment: 62.6, Unemployment: 2.7},
	{Year: 2024, Employment: 63.0, Unemployment: 2.8},
}

// AvgMonthlyWage is the average monthly wage in units of 10,000 KRW
// (고용형태별근로실태조사).
var AvgMonthlyWage = []core.MonthlyWageRow{
	{Year: 2000, Wage: 153},
	{Year: 2001, Wage: 163},
	{Year: 2002, Wage: 177},
	{Year: 2003, Wage: 189},
	{Year: 2004, Wage: 198},
	{Year: 2005, Wage: 209},
	{Year: 2006, Wage: 219},
	{Year: 2007, Wage: 230},
	{Year: 2008, Wage: 238},
	{Year: 2009, Wage: 240},
	{Year: 2010, Wage: 252},
	{Year: 2011, Wage: 264},
	{Year: 2012, Wage: 273},
	{Year: 2013, Wage: 280},
	{Year: 2014, Wage: 289},
	{Year: 2015, Wage: 297},
	{Year: 2016, Wage: 304},
	{Year: 2017, Wage: 311},
	{Year: 2018, Wage: 320},
	{Year: 2019, Wage: 326},
	{Year: 2020, Wage: 333},
	{Year: 2021, Wage: 340},
	{Year: 2022, Wage: 353},
	{Year: 2023, Wage: 369},
	{Year: 2024, Wage: 382},
}

// LatestWage returns the most recent minimum-wage row.
func LatestWage() core.WageRow {
	return MinimumWage[len(MinimumWage)-1]
}

// FindWage returns the minimum-wage row for a year.
func FindWage(year int) (core.WageRow, bool) {
	for _, w := range MinimumWage {
		if w.Year == year {
			return w, true
		}
	}
	return core.WageRow{}, false
}

// MonthlyMinimumWage is the statutory monthly minimum wage for a year,
// based on the 209-hour standard month. Returns 0 for years outside the
// table.
func MonthlyMinimumWage(year int) int64 {
	w, ok := FindWage(year)
	if !ok {
		return 0
	}
	return w.Hourly * 209
}

// LatestAvgWage returns the most recent average-monthly-wage row.
func LatestAvgWage() core.MonthlyWageRow {
	return AvgMonthlyWage[len(AvgMonthlyWage)-1]
}
