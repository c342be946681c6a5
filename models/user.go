package models

// RoleAdmin is the only role value this app branches on. Any other value,
// including an unset role, is treated as a regular user.
const RoleAdmin = "admin"

// User is one record from the "users" collection.
type User struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
}
