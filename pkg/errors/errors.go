package relay_errors

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	ErrSaveFailed   = errors.New("save failed")
	ErrLookupFailed = errors.New("lookup failed")
	ErrLoginFailed  = errors.New("login failed")
	ErrDeleteFailed = errors.New("delete failed")
	ErrUpdateFailed = errors.New("update failed")
)
