package domain

// RoleName is a stable, unique role identifier. Roles are seeded by
// migration and looked up by name, never mutated.
type RoleName string

const (
	RoleUser  RoleName = "ROLE_USER"
	RoleAdmin RoleName = "ROLE_ADMIN"
)

type Role struct {
	ID   int64    `json:"id"`
	Name RoleName `json:"name"`
}
