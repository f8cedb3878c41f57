package domain

import "time"

// User is an account owner. Wallets and merchants may link back to a user.
type User struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	PasswordHash  string     `json:"-"` // Never expose
	RegisterDate  time.Time  `json:"register_date"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
// Credentials change through the dedicated password flow, never here.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// ApplyTo merges the update into the user field by field.
func (u UserUpdate) ApplyTo(usr *User) {
	if u.Email != nil {
		usr.Email = *u.Email
	}
	if u.FirstName != nil {
		usr.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		usr.LastName = *u.LastName
	}
}
