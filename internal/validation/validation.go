// Package validation checks request payloads before any store or crypto work
// and turns them into normalized inputs for the credential service.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"ride-auth/internal/api"
	"ride-auth/internal/model"

	"github.com/go-playground/validator/v10"
)

// MsgInvalidBody is reported when the request body cannot be decoded.
const MsgInvalidBody = "Invalid request body"

// messages maps a request field to the violation reported for it.
var messages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Invalid email",
	"Password": "Password must be at least 6 characters",
	"Role":     "Invalid role",
}

// RegisterInput is a registration payload that passed validation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// LoginInput is a login payload that passed validation.
type LoginInput struct {
	Email    string
	Password string
}

// Result holds either a normalized value or the list of violations.
type Result[T any] struct {
	value      T
	violations []string
}

func (r Result[T]) OK() bool { return len(r.violations) == 0 }

func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Violations() []string { return r.violations }

func ok[T any](v T) Result[T] { return Result[T]{value: v} }

func fail[T any](violations []string) Result[T] { return Result[T]{violations: violations} }

// Invalid builds a failed result, e.g. when the body could not be bound.
func Invalid[T any](violations ...string) Result[T] { return fail[T](violations) }

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 註冊 role 規則：僅接受 PASSENGER / DRIVER
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		return model.Role(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// mustRegister 自訂規則註冊失敗屬於程式錯誤，直接 panic
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Register validates a registration request, collecting every violation.
func (v *Validator) Register(req api.RegisterRequest) Result[RegisterInput] {
	req.Email = normalizeEmail(req.Email)
	if violations := v.check(&req); len(violations) > 0 {
		return fail[RegisterInput](violations)
	}
	return ok(RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
}

// Login validates a login request, collecting every violation.
func (v *Validator) Login(req api.LoginRequest) Result[LoginInput] {
	req.Email = normalizeEmail(req.Email)
	if violations := v.check(&req); len(violations) > 0 {
		return fail[LoginInput](violations)
	}
	return ok(LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
}

func (v *Validator) check(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{MsgInvalidBody}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, found := messages[fe.StructField()]
		if !found {
			msg = fe.Error()
		}
		out = append(out, msg)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
