package domain

import "errors"

const MaxUsernameLen = 36

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
)

// ConnID identifies one live connection. Assigned by the transport
// layer, opaque to everything else.
type ConnID string

type User struct {
	ID       ConnID `json:"id"`
	Username string `json:"username"`
}

func ValidateUsername(name string) error {
	if len(name) == 0 {
		return ErrUsernameEmpty
	}
	if len(name) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	return nil
}
