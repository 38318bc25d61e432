package domain

// Role determines which net-revenue formula the metrics aggregation applies
type Role string

const (
	RoleOwner        Role = "owner"
	RoleProfessional Role = "professional"
)

// IsValid returns true for a known role value
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleProfessional
}
