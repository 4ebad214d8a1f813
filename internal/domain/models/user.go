package models

// Roles: admin sees every record, staff only records they created.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID     int64  `json:"id"`
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Privileged reports whether the user may read records of all creators.
func (u User) Privileged() bool {
	return u.Role == RoleAdmin
}
