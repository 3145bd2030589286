package dto

import (
	"errors"
	"fmt"
	"strings"
)

type Register struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r Register) IsValid() error {
	return credentialErrors(r.Email, r.Password)
}

func (l Login) IsValid() error {
	return credentialErrors(l.Email, l.Password)
}

func credentialErrors(email, password string) error {
	var emailErr, passwordErr error

	if strings.TrimSpace(email) == "" {
		emailErr = fmt.Errorf("email is required")
	}

	if strings.TrimSpace(password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(emailErr, passwordErr)
}
