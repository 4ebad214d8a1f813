package repositories

import "strings"

// ListFilter constrains record listings. Date bounds are inclusive
// YYYY-MM-DD strings; CreatedBy 0 selects all creators (privileged users).
type ListFilter struct {
	StartDate string
	EndDate   string
	CreatedBy int64
}

// whereClause builds the shared date-range + creator predicate.
func (f ListFilter) whereClause() (string, []any) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.StartDate); s != "" {
		where = append(where, "date>=?")
		args = append(args, s)
	}
	if e := strings.TrimSpace(f.EndDate); e != "" {
		where = append(where, "date<=?")
		args = append(args, e)
	}
	if f.CreatedBy > 0 {
		where = append(where, "created_by=?")
		args = append(args, f.CreatedBy)
	}
	return strings.Join(where, " AND "), args
}
