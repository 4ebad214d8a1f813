package services

import (
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

type ReportsService struct {
	TripsRepo       repositories.TripsRepository
	MaintenanceRepo repositories.MaintenanceRepository
	OutsideRepo     repositories.OutsideTripsRepository
}

// ReportFilter scopes a report: optional date range (empty Mode means
// unfiltered), free-text refinement, and creator scope (0 = all creators).
type ReportFilter struct {
	Range     DateRangeFilter
	Search    string
	CreatedBy int64
}

// TripView pairs a trip with its recomputed profit for display and export.
type TripView struct {
	models.Trip
	Profit float64 `json:"profit"`
}

func NewTripViews(trips []models.Trip) []TripView {
	out := make([]TripView, 0, len(trips))
	for _, t := range trips {
		out = append(out, TripView{Trip: t, Profit: utils.Round2(t.Profit())})
	}
	return out
}

// SummaryCards carries the on-screen card values, currency formatted.
type SummaryCards struct {
	TripCount int    `json:"trip_count"`
	Revenue   string `json:"revenue"`
	Expenses  string `json:"expenses"`
	Profit    string `json:"profit"`
	Pending   string `json:"pending"`
}

func cardsFrom(s TripSummary) SummaryCards {
	return SummaryCards{
		TripCount: s.TripCount,
		Revenue:   utils.FormatINR(s.TotalRevenue),
		Expenses:  utils.FormatINR(s.TotalExpenses),
		Profit:    utils.FormatINR(s.TotalProfit),
		Pending:   utils.FormatINR(s.PendingTotal),
	}
}

type MonthlyReport struct {
	Range             *DateRange                             `json:"range,omitempty"`
	Summary           TripSummary                            `json:"summary"`
	Cards             SummaryCards                           `json:"cards"`
	Trips             []TripView                             `json:"trips"`
	Maintenance       []models.MaintenanceRecord             `json:"maintenance"`
	TripGroups        []MonthGroup[models.Trip]              `json:"trip_groups"`
	MaintenanceGroups []MonthGroup[models.MaintenanceRecord] `json:"maintenance_groups"`
}

type ExpenseReport struct {
	Range   *DateRange                             `json:"range,omitempty"`
	Total   float64                                `json:"total"`
	Display string                                 `json:"display"`
	Groups  []MonthGroup[models.MaintenanceRecord] `json:"groups"`
}

// MonthlyReport fetches trips and maintenance for the resolved range, applies
// the free-text refinement, and recomputes all aggregates from the refined
// subsets. The two fetches run concurrently; there is no ordering dependency
// between them.
func (s ReportsService) MonthlyReport(f ReportFilter) (MonthlyReport, error) {
	lf, rng, err := s.listFilter(f)
	if err != nil {
		return MonthlyReport{}, err
	}

	type maintResult struct {
		recs []models.MaintenanceRecord
		err  error
	}
	ch := make(chan maintResult, 1)
	go func() {
		recs, err := s.MaintenanceRepo.List(lf)
		ch <- maintResult{recs, err}
	}()

	trips, err := s.TripsRepo.List(lf)
	mr := <-ch
	if err != nil {
		return MonthlyReport{}, err
	}
	if mr.err != nil {
		return MonthlyReport{}, mr.err
	}

	trips = FilterTrips(trips, f.Search)
	maint := FilterMaintenance(mr.recs, f.Search)

	summary := Summarize(trips, maint)
	pending, err := s.TripsRepo.PendingTotal(f.CreatedBy)
	if err != nil {
		return MonthlyReport{}, err
	}
	summary.PendingTotal = pending

	return MonthlyReport{
		Range:       rng,
		Summary:     summary,
		Cards:       cardsFrom(summary),
		Trips:       NewTripViews(trips),
		Maintenance: maint,
		TripGroups: GroupByMonth(trips,
			func(t models.Trip) string { return t.Date },
			func(t models.Trip) float64 { return t.TripAmount }),
		MaintenanceGroups: GroupByMonth(maint,
			func(m models.MaintenanceRecord) string { return m.Date },
			func(m models.MaintenanceRecord) float64 { return m.Amount }),
	}, nil
}

// ExpenseReport groups maintenance spend by calendar month, newest first.
func (s ReportsService) ExpenseReport(f ReportFilter) (ExpenseReport, error) {
	lf, rng, err := s.listFilter(f)
	if err != nil {
		return ExpenseReport{}, err
	}

	records, err := s.MaintenanceRepo.List(lf)
	if err != nil {
		return ExpenseReport{}, err
	}
	records = FilterMaintenance(records, f.Search)

	var total float64
	for _, m := range records {
		total += m.Amount
	}

	return ExpenseReport{
		Range:   rng,
		Total:   total,
		Display: utils.FormatINR(total),
		Groups: GroupByMonth(records,
			func(m models.MaintenanceRecord) string { return m.Date },
			func(m models.MaintenanceRecord) float64 { return m.Amount }),
	}, nil
}

type DashboardSummary struct {
	Range   DateRange      `json:"range"`
	Fleet   TripSummary    `json:"fleet"`
	Cards   SummaryCards   `json:"cards"`
	Outside OutsideSummary `json:"outside"`
}

// DashboardSummary covers the current month plus global pending totals.
func (s ReportsService) DashboardSummary(createdBy int64) (DashboardSummary, error) {
	rng, err := ResolveDateRange(DateRangeFilter{Mode: RangeThisMonth})
	if err != nil {
		return DashboardSummary{}, err
	}
	lf := repositories.ListFilter{StartDate: rng.Start, EndDate: rng.End, CreatedBy: createdBy}

	trips, err := s.TripsRepo.List(lf)
	if err != nil {
		return DashboardSummary{}, err
	}
	maint, err := s.MaintenanceRepo.List(lf)
	if err != nil {
		return DashboardSummary{}, err
	}
	outside, err := s.OutsideRepo.List(lf)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := Summarize(trips, maint)
	pending, err := s.TripsRepo.PendingTotal(createdBy)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.PendingTotal = pending

	outsideSummary := SummarizeOutside(outside)
	outsidePending, err := s.OutsideRepo.PendingTotal(createdBy)
	if err != nil {
		return DashboardSummary{}, err
	}
	outsideSummary.PendingTotal = outsidePending

	return DashboardSummary{
		Range:   rng,
		Fleet:   summary,
		Cards:   cardsFrom(summary),
		Outside: outsideSummary,
	}, nil
}

func (s ReportsService) listFilter(f ReportFilter) (repositories.ListFilter, *DateRange, error) {
	lf := repositories.ListFilter{CreatedBy: f.CreatedBy}
	if f.Range.Mode == "" {
		return lf, nil, nil
	}
	rng, err := ResolveDateRange(f.Range)
	if err != nil {
		return lf, nil, err
	}
	lf.StartDate = rng.Start
	lf.EndDate = rng.End
	return lf, &rng, nil
}
