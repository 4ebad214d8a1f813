package services

import (
	"sort"

	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

// TripSummary holds the aggregates computed over a (possibly filtered) record
// set. Sums accumulate unrounded; rounding happens at presentation only.
// PendingTotal is always computed over the global (date-unfiltered) scope and
// supplied alongside the filtered view.
type TripSummary struct {
	TripCount       int     `json:"trip_count"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalTripCost   float64 `json:"total_trip_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalProfit     float64 `json:"total_profit"`
	PendingTotal    float64 `json:"pending_total"`
}

// Summarize recomputes every aggregate from the given record sets. It is
// called again on every filter change; aggregates are never reused across a
// changing filter.
func Summarize(trips []models.Trip, maint []models.MaintenanceRecord) TripSummary {
	var s TripSummary
	s.TripCount = len(trips)
	for _, t := range trips {
		s.TotalRevenue += t.TripAmount
		s.TotalTripCost += t.Cost()
		s.TotalProfit += t.Profit()
	}
	for _, m := range maint {
		s.MaintenanceCost += m.Amount
	}
	s.TotalExpenses = s.TotalTripCost + s.MaintenanceCost
	s.TotalProfit -= s.MaintenanceCost
	return s
}

// PendingTripTotal sums revenue of trips still marked pending.
func PendingTripTotal(trips []models.Trip) float64 {
	var total float64
	for _, t := range trips {
		if t.PaymentStatus == models.StatusPending {
			total += t.TripAmount
		}
	}
	return total
}

// OutsideSummary aggregates subcontracted trips: revenue-only, no cost side.
type OutsideSummary struct {
	TripCount    int     `json:"trip_count"`
	TotalRevenue float64 `json:"total_revenue"`
	PendingTotal float64 `json:"pending_total"`
}

func SummarizeOutside(trips []models.OutsideTrip) OutsideSummary {
	var s OutsideSummary
	s.TripCount = len(trips)
	for _, t := range trips {
		s.TotalRevenue += t.TripAmount
		if t.PaymentStatus == models.StatusPending {
			s.PendingTotal += t.TripAmount
		}
	}
	return s
}

// MonthGroup is one calendar month's subset of records with its amount total.
type MonthGroup[T any] struct {
	Label   string  `json:"label"` // e.g. "January 2025"
	Records []T     `json:"records"`
	Total   float64 `json:"total"`
}

// GroupByMonth buckets records by the calendar month of their date, most
// recent month first. Ordering compares the month key chronologically, never
// the rendered label (label sort would misorder across year boundaries).
func GroupByMonth[T any](records []T, date func(T) string, amount func(T) float64) []MonthGroup[T] {
	type bucket struct {
		key   string // YYYY-MM, zero-padded so lexicographic == chronological
		group MonthGroup[T]
	}
	index := map[string]int{}
	buckets := []bucket{}

	for _, rec := range records {
		d := date(rec)
		if len(d) < 7 {
			continue
		}
		key := d[:7]
		i, ok := index[key]
		if !ok {
			label := key
			if t, err := utils.ParseDate(key + "-01"); err == nil {
				label = utils.MonthLabel(t)
			}
			index[key] = len(buckets)
			i = len(buckets)
			buckets = append(buckets, bucket{key: key, group: MonthGroup[T]{Label: label}})
		}
		buckets[i].group.Records = append(buckets[i].group.Records, rec)
		buckets[i].group.Total += amount(rec)
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].key > buckets[j].key })

	out := make([]MonthGroup[T], 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.group)
	}
	return out
}

// matchesQuery reports whether any of the candidate fields contains the query
// as a case-insensitive substring.
func matchesQuery(query string, fields ...string) bool {
	for _, f := range fields {
		if utils.ContainsFold(f, query) {
			return true
		}
	}
	return false
}

// FilterTrips refines a trip list by free-text query over its string fields.
// Callers must re-derive aggregates from the returned subset.
func FilterTrips(trips []models.Trip, query string) []models.Trip {
	query = utils.TrimOrEmpty(query)
	if query == "" {
		return trips
	}
	out := []models.Trip{}
	for _, t := range trips {
		if matchesQuery(query,
			t.DriverName, t.DriverPhone, t.CustomerName, t.CustomerPhone,
			t.FromLocation, t.ToLocation, t.Company, t.Date,
		) {
			out = append(out, t)
		}
	}
	return out
}

func FilterMaintenance(records []models.MaintenanceRecord, query string) []models.MaintenanceRecord {
	query = utils.TrimOrEmpty(query)
	if query == "" {
		return records
	}
	out := []models.MaintenanceRecord{}
	for _, m := range records {
		if matchesQuery(query, m.VehicleNumber, m.DriverName, m.MaintenanceType, m.Date) {
			out = append(out, m)
		}
	}
	return out
}

func FilterOutsideTrips(trips []models.OutsideTrip, query string) []models.OutsideTrip {
	query = utils.TrimOrEmpty(query)
	if query == "" {
		return trips
	}
	out := []models.OutsideTrip{}
	for _, t := range trips {
		if matchesQuery(query,
			t.DriverName, t.TravelsCompany, t.VehicleType, t.VehicleNumber,
			t.FromLocation, t.ToLocation, t.AssignedBy, t.Date,
		) {
			out = append(out, t)
		}
	}
	return out
}
