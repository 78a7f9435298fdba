package domain

const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}

// CanManageCatalog reports whether the user may reach the admin screens.
func (u *User) CanManageCatalog() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleStaff)
}
