package services

import (
	"testing"
	"time"

	"taxiops/internal/domain"
)

func TestResolveMonthlyRangeLeapFebruary(t *testing.T) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeMonthly, Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.Start != "2024-02-01" || rng.End != "2024-02-29" {
		t.Fatalf("leap february wrong: got [%s, %s]", rng.Start, rng.End)
	}

	rng, err = ResolveDateRange(DateRangeFilter{Mode: RangeMonthly, Year: 2023, Month: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.End != "2023-02-28" {
		t.Fatalf("non-leap february wrong end: %s", rng.End)
	}
}

func TestResolveMonthlyRangeShortAndLongMonths(t *testing.T) {
	cases := []struct {
		month int
		end   string
	}{
		{1, "2025-01-31"},
		{4, "2025-04-30"},
		{12, "2025-12-31"},
	}
	for _, c := range cases {
		rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeMonthly, Year: 2025, Month: c.month})
		if err != nil {
			t.Fatalf("month %d: %v", c.month, err)
		}
		if rng.End != c.end {
			t.Fatalf("month %d end: got %s want %s", c.month, rng.End, c.end)
		}
	}
}

func TestResolveMonthlyRangeZeroPadded(t *testing.T) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeMonthly, Year: 2025, Month: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rng.Start) != 10 || len(rng.End) != 10 {
		t.Fatalf("bounds must be zero-padded YYYY-MM-DD: [%s, %s]", rng.Start, rng.End)
	}
	if rng.Start != "2025-03-01" {
		t.Fatalf("start: got %s", rng.Start)
	}
}

func TestResolveMonthlyRangeRejectsBadInput(t *testing.T) {
	for _, f := range []DateRangeFilter{
		{Mode: RangeMonthly, Year: 2025, Month: 0},
		{Mode: RangeMonthly, Year: 2025, Month: 13},
		{Mode: RangeMonthly, Month: 5},
	} {
		if _, err := ResolveDateRange(f); !domain.IsValidation(err) {
			t.Fatalf("filter %+v: expected validation error, got %v", f, err)
		}
	}
}

func TestResolveYearlyRange(t *testing.T) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeYearly, Year: 2024})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.Start != "2024-01-01" || rng.End != "2024-12-31" {
		t.Fatalf("yearly wrong: got [%s, %s]", rng.Start, rng.End)
	}
}

func TestResolveCustomRange(t *testing.T) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeCustom, StartDate: "2025-01-05", EndDate: "2025-01-20"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.Start != "2025-01-05" || rng.End != "2025-01-20" {
		t.Fatalf("custom wrong: got [%s, %s]", rng.Start, rng.End)
	}
}

func TestResolveCustomRangeSingleDay(t *testing.T) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeCustom, StartDate: "2025-06-10", EndDate: "2025-06-10"})
	if err != nil {
		t.Fatalf("single-day range must be valid, got %v", err)
	}
	if rng.Start != rng.End {
		t.Fatalf("single-day range: got [%s, %s]", rng.Start, rng.End)
	}
}

func TestResolveCustomRangeEndBeforeStartRejected(t *testing.T) {
	_, err := ResolveDateRange(DateRangeFilter{Mode: RangeCustom, StartDate: "2025-01-20", EndDate: "2025-01-05"})
	if !domain.IsValidation(err) {
		t.Fatalf("end before start must be a validation error, got %v", err)
	}
}

func TestResolveCustomRangeBadFormatRejected(t *testing.T) {
	_, err := ResolveDateRange(DateRangeFilter{Mode: RangeCustom, StartDate: "05/01/2025", EndDate: "2025-01-20"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad date format, got %v", err)
	}
}

func TestResolvePresetsAtFixedClock(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.Local)

	rng, err := resolveDateRangeAt(DateRangeFilter{Mode: RangeThisMonth}, now)
	if err != nil {
		t.Fatalf("this_month: %v", err)
	}
	if rng.Start != "2025-03-01" || rng.End != "2025-03-31" {
		t.Fatalf("this_month: got [%s, %s]", rng.Start, rng.End)
	}

	rng, err = resolveDateRangeAt(DateRangeFilter{Mode: RangeLastMonth}, now)
	if err != nil {
		t.Fatalf("last_month: %v", err)
	}
	if rng.Start != "2025-02-01" || rng.End != "2025-02-28" {
		t.Fatalf("last_month: got [%s, %s]", rng.Start, rng.End)
	}

	rng, err = resolveDateRangeAt(DateRangeFilter{Mode: RangeLast30Days}, now)
	if err != nil {
		t.Fatalf("last_30_days: %v", err)
	}
	if rng.Start != "2025-02-14" || rng.End != "2025-03-15" {
		t.Fatalf("last_30_days: got [%s, %s]", rng.Start, rng.End)
	}
}

func TestResolvePresetLastMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.Local)
	rng, err := resolveDateRangeAt(DateRangeFilter{Mode: RangeLastMonth}, now)
	if err != nil {
		t.Fatalf("last_month: %v", err)
	}
	if rng.Start != "2024-12-01" || rng.End != "2024-12-31" {
		t.Fatalf("last_month across year boundary: got [%s, %s]", rng.Start, rng.End)
	}
}

func TestResolveUnknownModeRejected(t *testing.T) {
	_, err := ResolveDateRange(DateRangeFilter{Mode: "weekly"})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown mode must be a validation error, got %v", err)
	}
}
