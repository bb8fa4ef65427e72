package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdministrator        RoleType = "ADMINISTRATOR"
	RoleBillingAdministrator RoleType = "BILLING_ADMINISTRATOR"
	RoleSupervisor           RoleType = "SUPERVISOR"
	RolePractitioner         RoleType = "PRACTITIONER"
)

// IsValid reports whether the role is one of the known portal roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleBillingAdministrator, RoleSupervisor, RolePractitioner:
		return true
	}
	return false
}
