package registry

// Per-role signup requests. The boundary binds loose form fields into these
// before anything touches the store.

type CustomerSignup struct {
	FullName        string `form:"full_name" json:"full_name"`
	Phone           string `form:"phone" json:"phone"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

type ContractorSignup struct {
	CompanyName     string `form:"company_name" json:"company_name"`
	OwnerName       string `form:"owner_name" json:"owner_name"`
	Phone           string `form:"phone" json:"phone"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// LabourerSignup is the only request where email may stay empty.
type LabourerSignup struct {
	FullName        string `form:"full_name" json:"full_name"`
	Phone           string `form:"phone" json:"phone"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// SigninRequest covers customer, contractor and labourer sign-in, where the
// identifier is a phone number or email address.
type SigninRequest struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
}

// AdminSignin identifies the admin by username (or admin email).
type AdminSignin struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
