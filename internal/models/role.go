package models

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleContractor Role = "contractor"
	RoleLabourer   Role = "labourer"
	RoleAdmin      Role = "admin"
)

// Title returns the display form of a role, used in access-denied notices.
func (r Role) Title() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleContractor:
		return "Contractor"
	case RoleLabourer:
		return "Labourer"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}
