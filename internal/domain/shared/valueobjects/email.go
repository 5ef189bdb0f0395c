package valueobjects

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email must be a valid email address")
)

var validate = validator.New()

// Email is a trimmed, lower-cased and syntactically valid address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, ErrEmailRequired
	}
	if len(normalized) > 254 {
		return Email{}, ErrEmailInvalid
	}
	if err := validate.Var(normalized, "email"); err != nil {
		return Email{}, ErrEmailInvalid
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}
