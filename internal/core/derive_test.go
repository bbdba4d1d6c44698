package core

import (
	"reflect"
	"testing"
)

func TestPriceSeries(t *testing.T) {
	t.Run("rounds to nearest 100", func(t *testing.T) {
		s := Series{
			{Year: "2020", Index: 100.0},
			{Year: "2021", Index: 102.5},
			{Year: "2022", Index: 107.7},
		}
		got := PriceSeries(s, 5000)
		want := []PricePoint{
			{Year: "2020", Price: 5000},
			{Year: "2021", Price: 5100}, // 5125 -> 5100
			{Year: "2022", Price: 5400}, // 5385 -> 5400
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("PriceSeries = %v, want %v", got, want)
		}
	})

	t.Run("output length equals input length", func(t *testing.T) {
		s := Series{{Year: "2019", Index: 98.1}, {Year: "2020", Index: 100}, {Year: "2021", Index: 103.2}}
		got := PriceSeries(s, 12000)
		if len(got) != len(s) {
			t.Fatalf("len = %d, want %d", len(got), len(s))
		}
		for _, p := range got {
			if p.Price < 0 || p.Price%100 != 0 {
				t.Errorf("price %d for year %s is not a non-negative multiple of 100", p.Price, p.Year)
			}
		}
	})

	t.Run("zero index yields zero price", func(t *testing.T) {
		got := PriceSeries(Series{{Year: "2020", Index: 0}}, 5000)
		if got[0].Price != 0 {
			t.Errorf("price = %d, want 0", got[0].Price)
		}
	})

	t.Run("negative index propagates", func(t *testing.T) {
		got := PriceSeries(Series{{Year: "2020", Index: -50}}, 5000)
		if got[0].Price != -2500 {
			t.Errorf("price = %d, want -2500", got[0].Price)
		}
	})

	t.Run("empty series yields empty output", func(t *testing.T) {
		if got := PriceSeries(nil, 5000); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestCurrentPrice(t *testing.T) {
	t.Run("uses latest point", func(t *testing.T) {
		s := Series{{Year: "2020", Index: 100}, {Year: "2024", Index: 130}}
		if got := CurrentPrice(s, 5000); got != 6500 {
			t.Errorf("CurrentPrice = %d, want 6500", got)
		}
	})

	t.Run("empty series falls back to index 100", func(t *testing.T) {
		if got := CurrentPrice(nil, 5000); got != 5000 {
			t.Errorf("CurrentPrice = %d, want 5000", got)
		}
		// Equivalent to deriving a single point at index 100.
		one := PriceSeries(Series{{Year: "2020", Index: 100}}, 5000)
		if got := CurrentPrice(nil, 5000); got != one[0].Price {
			t.Errorf("CurrentPrice = %d, want %d", got, one[0].Price)
		}
	})

	t.Run("base price not a multiple of 100 is rounded", func(t *testing.T) {
		if got := CurrentPrice(nil, 1350); got != 1400 {
			t.Errorf("CurrentPrice = %d, want 1400", got)
		}
	})
}

func TestTenYearChange(t *testing.T) {
	t.Run("exact reference year present", func(t *testing.T) {
		s := Series{{Year: "2014", Index: 100}, {Year: "2024", Index: 130}}
		got, ok := TenYearChange(s)
		if !ok {
			t.Fatal("expected ok")
		}
		if got.Percent != 30.0 {
			t.Errorf("percent = %v, want 30.0", got.Percent)
		}
		if got.FromYear != "2014" || got.ToYear != "2024" {
			t.Errorf("years = %s..%s, want 2014..2024", got.FromYear, got.ToYear)
		}
	})

	t.Run("missing reference year falls back to series start", func(t *testing.T) {
		s := Series{{Year: "2016", Index: 90}, {Year: "2024", Index: 117}}
		got, ok := TenYearChange(s)
		if !ok {
			t.Fatal("expected ok")
		}
		if got.Percent != 30.0 {
			t.Errorf("percent = %v, want 30.0", got.Percent)
		}
		if got.FromYear != "2016" {
			t.Errorf("FromYear = %s, want 2016", got.FromYear)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		if _, ok := TenYearChange(nil); ok {
			t.Error("expected ok=false for empty series")
		}
	})

	t.Run("zero reference index", func(t *testing.T) {
		s := Series{{Year: "2014", Index: 0}, {Year: "2024", Index: 110}}
		if _, ok := TenYearChange(s); ok {
			t.Error("expected ok=false for zero reference index")
		}
	})

	t.Run("single point compares against itself", func(t *testing.T) {
		s := Series{{Year: "2024", Index: 110}}
		got, ok := TenYearChange(s)
		if !ok {
			t.Fatal("expected ok")
		}
		if got.Percent != 0.0 {
			t.Errorf("percent = %v, want 0.0", got.Percent)
		}
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		s := Series{{Year: "2014", Index: 90}, {Year: "2024", Index: 111.1}}
		got, ok := TenYearChange(s)
		if !ok {
			t.Fatal("expected ok")
		}
		// (111.1-90)/90*100 = 23.444...
		if got.Percent != 23.4 {
			t.Errorf("percent = %v, want 23.4", got.Percent)
		}
	})
}

func TestEngineWageEquivalent(t *testing.T) {
	eng := NewEngine(
		[]WageRow{{Year: 2023, Hourly: 9620}, {Year: 2024, Hourly: 9860}},
		nil,
	)

	t.Run("exact year", func(t *testing.T) {
		// round(5000/9860*60) = round(30.42) = 30
		if got := eng.WageEquivalent(5000, 2024); got != 30 {
			t.Errorf("minutes = %d, want 30", got)
		}
	})

	t.Run("zero year selects latest row", func(t *testing.T) {
		if got := eng.WageEquivalent(5000, 0); got != 30 {
			t.Errorf("minutes = %d, want 30", got)
		}
	})

	t.Run("unknown year", func(t *testing.T) {
		if got := eng.WageEquivalent(5000, 1999); got != 0 {
			t.Errorf("minutes = %d, want 0", got)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		if got := eng.WageEquivalent(0, 2024); got != 0 {
			t.Errorf("minutes = %d, want 0", got)
		}
		if got := eng.WageEquivalent(-100, 2024); got != 0 {
			t.Errorf("minutes = %d, want 0", got)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		empty := NewEngine(nil, nil)
		if got := empty.WageEquivalent(5000, 0); got != 0 {
			t.Errorf("minutes = %d, want 0", got)
		}
	})
}

func TestEnginePurchaseCount(t *testing.T) {
	eng := NewEngine(nil, []MonthlyWageRow{{Year: 2023, Wage: 369}, {Year: 2024, Wage: 382}})

	t.Run("exact year", func(t *testing.T) {
		// floor(382*10000/5000) = 764
		if got := eng.PurchaseCount(5000, 2024); got != 764 {
			t.Errorf("count = %d, want 764", got)
		}
	})

	t.Run("floors the quotient", func(t *testing.T) {
		// 369*10000/7000 = 527.14...
		if got := eng.PurchaseCount(7000, 2023); got != 527 {
			t.Errorf("count = %d, want 527", got)
		}
	})

	t.Run("no latest-year fallback", func(t *testing.T) {
		if got := eng.PurchaseCount(5000, 2025); got != 0 {
			t.Errorf("count = %d, want 0", got)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		if got := eng.PurchaseCount(0, 2024); got != 0 {
			t.Errorf("count = %d, want 0", got)
		}
	})
}

func TestComputeRegionalExtremes(t *testing.T) {
	t.Run("basic extremes and averages", func(t *testing.T) {
		records := []RegionalRecord{
			{Region: "부산", Index: 110, Rate: 2.0},
			{Region: "서울", Index: 120, Rate: 2.6},
			{Region: "대구", Index: 115, Rate: 2.3},
		}
		got, err := ComputeRegionalExtremes(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Highest.Index != 120 || got.Highest.Region != "서울" {
			t.Errorf("highest = %+v", got.Highest)
		}
		if got.Lowest.Index != 110 || got.Lowest.Region != "부산" {
			t.Errorf("lowest = %+v", got.Lowest)
		}
		if got.Average != 115.0 {
			t.Errorf("average = %v, want 115.0", got.Average)
		}
		if got.RateAverage != 2.3 {
			t.Errorf("rate average = %v, want 2.3", got.RateAverage)
		}
	})

	t.Run("ties resolve to input order", func(t *testing.T) {
		records := []RegionalRecord{
			{Region: "인천", Index: 113, Rate: 2.0},
			{Region: "광주", Index: 113, Rate: 2.0},
		}
		got, err := ComputeRegionalExtremes(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Highest.Region != "인천" {
			t.Errorf("highest tie = %s, want 인천", got.Highest.Region)
		}
		if got.Lowest.Region != "광주" {
			t.Errorf("lowest tie = %s, want 광주", got.Lowest.Region)
		}
	})

	t.Run("empty input is an error", func(t *testing.T) {
		if _, err := ComputeRegionalExtremes(nil); err != ErrEmptyRegionSet {
			t.Errorf("err = %v, want ErrEmptyRegionSet", err)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		records := []RegionalRecord{
			{Region: "a", Index: 1},
			{Region: "b", Index: 3},
			{Region: "c", Index: 2},
		}
		orig := make([]RegionalRecord, len(records))
		copy(orig, records)
		if _, err := ComputeRegionalExtremes(records); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(records, orig) {
			t.Error("input slice was reordered")
		}
	})
}

func TestDerivationIdempotence(t *testing.T) {
	s := Series{{Year: "2014", Index: 96.4}, {Year: "2020", Index: 100}, {Year: "2024", Index: 114.2}}

	a := PriceSeries(s, 7000)
	b := PriceSeries(s, 7000)
	if !reflect.DeepEqual(a, b) {
		t.Error("PriceSeries is not deterministic")
	}

	c1, ok1 := TenYearChange(s)
	c2, ok2 := TenYearChange(s)
	if ok1 != ok2 || c1 != c2 {
		t.Error("TenYearChange is not deterministic")
	}

	if CurrentPrice(s, 7000) != CurrentPrice(s, 7000) {
		t.Error("CurrentPrice is not deterministic")
	}
}
