package schedule

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleProfessional Role = "PROFESSIONAL"
	RoleClient       Role = "CLIENT"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleProfessional, RoleClient:
		return true
	}
	return false
}

// ===============================
// Booking Status
// ===============================

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)
