// Package forms validates the sign-in and sign-up forms submitted from the
// storefront auth page.
package forms

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field keys used in FormErrors and in the HTML form inputs.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	// FieldGeneral carries errors that do not belong to a single input.
	FieldGeneral = "general"
)

// FormErrors maps a field key to a human readable message. An empty map means
// the form is valid.
type FormErrors map[string]string

// Valid reports whether no field failed validation.
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// Get returns the message for field or an empty string.
func (e FormErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// SignInFields mirrors the sign-in form.
type SignInFields struct {
	Email    string `form:"email" validate:"notblank,contains=@"`
	Password string `form:"password" validate:"notblank,min=6"`
}

// SignUpFields mirrors the sign-up form.
type SignUpFields struct {
	Name            string `form:"name" validate:"notblank,trimmin=3"`
	Email           string `form:"email" validate:"notblank,contains=@"`
	Password        string `form:"password" validate:"notblank,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"notblank,eqfield=Password"`
}

type messages map[string]map[string]string

var signInMessages = messages{
	FieldEmail: {
		"notblank": "Email is required",
		"contains": "Email must contain @",
	},
	FieldPassword: {
		"notblank": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
}

var signUpMessages = messages{
	FieldName: {
		"notblank": "Name is required",
		"trimmin":  "Name must be at least 3 characters",
	},
	FieldEmail: {
		"notblank": "Email is required",
		"contains": "Invalid email format",
	},
	FieldPassword: {
		"notblank": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	FieldConfirmPassword: {
		"notblank": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "trimmin", func(fl validator.FieldLevel) bool {
		min, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("forms: register " + tag + ": " + err.Error())
	}
}

// ValidateSignIn checks the sign-in form.
func ValidateSignIn(fields SignInFields) FormErrors {
	return collect(validate.Struct(fields), signInMessages)
}

// ValidateSignUp checks the sign-up form.
func ValidateSignUp(fields SignUpFields) FormErrors {
	return collect(validate.Struct(fields), signUpMessages)
}

// collect keeps one message per field. The validator stops at the first
// failing tag of a field, so rule order in the struct tag is rule priority.
func collect(err error, catalog messages) FormErrors {
	result := FormErrors{}
	if err == nil {
		return result
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result[FieldGeneral] = err.Error()
		return result
	}
	for _, fieldErr := range fieldErrs {
		field := fieldErr.Field()
		if _, seen := result[field]; seen {
			continue
		}
		if msg, ok := catalog[field][fieldErr.Tag()]; ok {
			result[field] = msg
			continue
		}
		result[field] = fieldErr.Error()
	}
	return result
}
