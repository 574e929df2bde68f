package identity

import "time"

// User roles.
const (
	RolePatient  = "patient"
	RoleDoctor   = "doctor"
	RoleEmployer = "employer"
)

// User is an account in the tracking platform. The password is an opaque
// string compared for equality only; it carries no security guarantees and
// is never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardPath returns the role-specific landing route the client should
// redirect to after login.
func (u *User) DashboardPath() string {
	switch u.Role {
	case RoleDoctor:
		return "/doctor-dashboard"
	case RoleEmployer:
		return "/employer-dashboard"
	default:
		return "/patient-dashboard"
	}
}
