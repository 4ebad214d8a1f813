package services

import (
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/utils"
)

// Date-range filter modes. The presets reduce to the three primitive forms
// relative to the evaluation time.
const (
	RangeMonthly    = "monthly"
	RangeYearly     = "yearly"
	RangeCustom     = "custom"
	RangeThisMonth  = "this_month"
	RangeLastMonth  = "last_month"
	RangeLast30Days = "last_30_days"
)

// DateRangeFilter selects exactly one variant via Mode. Fields of inactive
// variants are ignored, never applied.
type DateRangeFilter struct {
	Mode      string `json:"mode" form:"mode"`
	Year      int    `json:"year" form:"year"`
	Month     int    `json:"month" form:"month"` // 1..12, with Year, for monthly
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

// DateRange is an inclusive [Start, End] pair of zero-padded YYYY-MM-DD dates,
// safe for lexicographic comparison and SQL range predicates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ResolveDateRange converts a filter into concrete inclusive bounds.
func ResolveDateRange(f DateRangeFilter) (DateRange, error) {
	return resolveDateRangeAt(f, time.Now())
}

func resolveDateRangeAt(f DateRangeFilter, now time.Time) (DateRange, error) {
	switch f.Mode {
	case RangeMonthly:
		if f.Year < 1 || f.Month < 1 || f.Month > 12 {
			return DateRange{}, domain.ValidationError{Field: "month", Msg: "year and month (1-12) required"}
		}
		return monthRange(f.Year, time.Month(f.Month)), nil

	case RangeYearly:
		if f.Year < 1 {
			return DateRange{}, domain.ValidationError{Field: "year", Msg: "year required"}
		}
		return DateRange{
			Start: utils.FormatDate(time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.Local)),
			End:   utils.FormatDate(time.Date(f.Year, time.December, 31, 0, 0, 0, 0, time.Local)),
		}, nil

	case RangeCustom:
		start, err := utils.ParseDate(f.StartDate)
		if err != nil {
			return DateRange{}, domain.ValidationError{Field: "start_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
		end, err := utils.ParseDate(f.EndDate)
		if err != nil {
			return DateRange{}, domain.ValidationError{Field: "end_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
		// caller error, never silently swapped
		if end.Before(start) {
			return DateRange{}, domain.ValidationError{Field: "end_date", Msg: "end date is before start date"}
		}
		return DateRange{Start: utils.FormatDate(start), End: utils.FormatDate(end)}, nil

	case RangeThisMonth:
		return monthRange(now.Year(), now.Month()), nil

	case RangeLastMonth:
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
		return monthRange(prev.Year(), prev.Month()), nil

	case RangeLast30Days:
		// 30 calendar days ending today, inclusive
		return DateRange{
			Start: utils.FormatDate(now.AddDate(0, 0, -29)),
			End:   utils.FormatDate(now),
		}, nil

	default:
		return DateRange{}, domain.ValidationError{Field: "mode", Msg: "unknown date range mode"}
	}
}

// monthRange spans the first through the last calendar day of a month. The
// last day is "day 0 of the next month", which handles month lengths and
// leap years.
func monthRange(year int, month time.Month) DateRange {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return DateRange{Start: utils.FormatDate(first), End: utils.FormatDate(last)}
}
