package user

import "errors"

// ErrInvalidCredentials signals a failed username/password check. Handlers
// must not leak which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUserNotFound signals a lookup for an unknown user ID.
var ErrUserNotFound = errors.New("user not found")

// DuplicateUserError signals a registration against a taken username.
type DuplicateUserError struct {
	Username string
}

func (e DuplicateUserError) Error() string {
	return "username already taken: " + e.Username
}
