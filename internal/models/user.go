package models

// User is a row of the users table.
type User struct {
	UserID         string  `db:"user_id"`
	Username       string  `db:"username"`
	Name           string  `db:"name"`
	Email          *string `db:"email"`
	PasswordHash   *string `db:"password_hash"`
	AuthProvider   string  `db:"auth_provider"`
	ProviderUserID *string `db:"provider_user_id"`
	AuditFields
}
