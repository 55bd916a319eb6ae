package auth

import "strings"

// SignupDTO is the transport shape used by the HTTP handler to accept signup requests.
type SignupDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d *SignupDTO) Validate() error {
	d.Username = strings.TrimSpace(d.Username)
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if len(d.Username) > 64 {
		return ValidationError{Msg: "username must be at most 64 characters"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return ValidationError{Msg: "refresh_token is required"}
	}
	return nil
}
