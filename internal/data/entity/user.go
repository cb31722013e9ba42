package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	CompanyName  *string `db:"company_name"`
	IsActive     bool    `db:"is_active"`
}

// DisplayName is the customer name shown on booking references
func (u *User) DisplayName() string {
	if u.CompanyName != nil && *u.CompanyName != "" {
		return *u.CompanyName
	}
	return u.Username
}
