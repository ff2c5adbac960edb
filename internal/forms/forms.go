// Package forms validates the login and registration forms before any
// request reaches the remote API.
package forms

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/passa-a-bola/passa-web/internal/model"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// ValidationError is a form problem whose message is shown to the visitor
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation errors
var (
	ErrMissingFields    = &ValidationError{"Por favor, preencha todos os campos"}
	ErrPasswordTooShort = &ValidationError{"A senha deve ter no mínimo 8 caracteres"}
	ErrPasswordMismatch = &ValidationError{"As senhas não coincidem"}
	ErrInvalidEmail     = &ValidationError{"Email inválido"}
	ErrInvalidRole      = &ValidationError{"Tipo de usuário inválido"}
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Login is the submitted login form
type Login struct {
	Email    string
	Password string
}

// LoginFromForm reads the login fields as submitted
func LoginFromForm(v url.Values) Login {
	return Login{
		Email:    v.Get("email"),
		Password: v.Get("password"),
	}
}

// Validate checks that both fields are filled in
func (f Login) Validate() error {
	if f.Email == "" || f.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// Register is the submitted registration form
type Register struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Role            model.Role
}

// RegisterFromForm reads the registration fields untrimmed, so a padded
// email fails validation. The role defaults to amateur player, as
// preselected on the form.
func RegisterFromForm(v url.Values) Register {
	role := model.Role(strings.TrimSpace(v.Get("role")))
	if role == "" {
		role = model.RoleAmateurPlayer
	}
	return Register{
		Name:            v.Get("nome"),
		Email:           v.Get("email"),
		Password:        v.Get("senha"),
		PasswordConfirm: v.Get("confirmarSenha"),
		Role:            role,
	}
}

// Validate returns the first failing check
func (f Register) Validate() error {
	if f.Name == "" || f.Email == "" || f.Password == "" || f.PasswordConfirm == "" {
		return ErrMissingFields
	}
	if len([]rune(f.Password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if f.Password != f.PasswordConfirm {
		return ErrPasswordMismatch
	}
	if !emailPattern.MatchString(f.Email) {
		return ErrInvalidEmail
	}
	if !f.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
