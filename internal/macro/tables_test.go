package macro

import (
	"testing"

	"mulga/internal/core"
)

func TestTablesAscendingUniqueYears(t *testing.T) {
	checkYears := func(t *testing.T, name string, years []int) {
		t.Helper()
		for i := 1; i < len(years); i++ {
			if years[i] <= years[i-1] {
				t.Errorf("%s: year %d follows %d", name, years[i], years[i-1])
			}
		}
	}

	t.Run("minimum wage", func(t *testing.T) {
		years := make([]int, len(MinimumWage))
		for i, w := range MinimumWage {
			years[i] = w.Year
		}
		checkYears(t, "MinimumWage", years)
	})

	t.Run("cpi rate", func(t *testing.T) {
		years := make([]int, len(CPIRate))
		for i, r := range CPIRate {
			years[i] = r.Year
		}
		checkYears(t, "CPIRate", years)
	})

	t.Run("gdp growth", func(t *testing.T) {
		years := make([]int, len(GDPGrowth))
		for i, r := range GDPGrowth {
			years[i] = r.Year
		}
		checkYears(t, "GDPGrowth", years)
	})

	t.Run("employment", func(t *testing.T) {
		years := make([]int, len(Employment))
		for i, r := range Employment {
			years[i] = r.Year
		}
		checkYears(t, "Employment", years)
	})

	t.Run("average wage", func(t *testing.T) {
		years := make([]int, len(AvgMonthlyWage))
		for i, r := range AvgMonthlyWage {
			years[i] = r.Year
		}
		checkYears(t, "AvgMonthlyWage", years)
	})
}

func TestLatestWage(t *testing.T) {
	got := LatestWage()
	if got.Year != 2026 || got.Hourly != 10320 {
		t.Errorf("LatestWage = %+v, want 2026/10320", got)
	}
}

func TestFindWage(t *testing.T) {
	w, ok := FindWage(2024)
	if !ok || w.Hourly != 9860 {
		t.Errorf("FindWage(2024) = %+v %v, want 9860", w, ok)
	}
	if _, ok := FindWage(1999); ok {
		t.Error("FindWage(1999) should miss")
	}
}

func TestMonthlyMinimumWage(t *testing.T) {
	if got := MonthlyMinimumWage(2024); got != 9860*209 {
		t.Errorf("MonthlyMinimumWage(2024) = %d, want %d", got, 9860*209)
	}
	if got := MonthlyMinimumWage(1995); got != 0 {
		t.Errorf("MonthlyMinimumWage(1995) = %d, want 0", got)
	}
}

func TestRegionalRecords(t *testing.T) {
	t.Run("every category has all 17 regions", func(t *testing.T) {
		for _, cat := range RegionalCategories {
			records, ok := RegionalRecords(cat.ID)
			if !ok {
				t.Errorf("category %s has no data", cat.ID)
				continue
			}
			if len(records) != 17 {
				t.Errorf("category %s has %d regions, want 17", cat.ID, len(records))
			}
		}
	})

	t.Run("unknown category misses", func(t *testing.T) {
		if _, ok := RegionalRecords("durables"); ok {
			t.Error("expected miss for unknown category")
		}
	})

	t.Run("overall aliases the all-items table", func(t *testing.T) {
		records, _ := RegionalRecords("overall")
		if &records[0] != &RegionalCPI[0] {
			t.Error("overall should alias RegionalCPI")
		}
	})

	t.Run("extremes over the overall table", func(t *testing.T) {
		ext, err := core.ComputeRegionalExtremes(RegionalCPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.Highest.Region != "제주" {
			t.Errorf("highest = %s, want 제주", ext.Highest.Region)
		}
		if ext.Lowest.Region != "울산" {
			t.Errorf("lowest = %s, want 울산", ext.Lowest.Region)
		}
	})
}
