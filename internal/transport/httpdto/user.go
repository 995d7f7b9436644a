package httpdto

import (
	"time"

	"relay-chat/internal/domain/user"
)

// UserRequest is the body of POST /user/signup, POST /user/login and
// PATCH /user/resetPassword. For resetPassword the password field carries
// the new password.
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO is the safe user projection returned to callers. It never
// carries a password field.
type UserDTO struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	DateJoined string `json:"dateJoined"`
}

// FromUser converts a domain user to UserDTO
func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:         u.ID.String(),
		Username:   u.Username,
		DateJoined: u.DateJoined.Format(time.RFC3339),
	}
}
