package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignUp() SignUpFields {
	return SignUpFields{
		Name:            "Arun Kumar",
		Email:           "arun@shop.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidateSignUpAcceptsValidForm(t *testing.T) {
	errs := ValidateSignUp(validSignUp())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidateSignUpRequiredFields(t *testing.T) {
	errs := ValidateSignUp(SignUpFields{})

	assert.Equal(t, FormErrors{
		FieldName:            "Name is required",
		FieldEmail:           "Email is required",
		FieldPassword:        "Password is required",
		FieldConfirmPassword: "Please confirm your password",
	}, errs)
}

func TestValidateSignUpWhitespaceCountsAsMissing(t *testing.T) {
	fields := validSignUp()
	fields.Name = "   "
	fields.Password = "      "
	fields.ConfirmPassword = "      "

	errs := ValidateSignUp(fields)

	assert.Equal(t, "Name is required", errs.Get(FieldName))
	assert.Equal(t, "Password is required", errs.Get(FieldPassword))
	assert.Equal(t, "Please confirm your password", errs.Get(FieldConfirmPassword))
	assert.Empty(t, errs.Get(FieldEmail))
}

func TestValidateSignUpFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignUpFields)
		field  string
		want   string
	}{
		{
			name:   "short name after trim",
			mutate: func(f *SignUpFields) { f.Name = "  Al  " },
			field:  FieldName,
			want:   "Name must be at least 3 characters",
		},
		{
			name:   "email without at sign",
			mutate: func(f *SignUpFields) { f.Email = "arun.shop.com" },
			field:  FieldEmail,
			want:   "Invalid email format",
		},
		{
			name: "short password",
			mutate: func(f *SignUpFields) {
				f.Password = "abc"
				f.ConfirmPassword = "abc"
			},
			field: FieldPassword,
			want:  "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validSignUp()
			tt.mutate(&fields)

			errs := ValidateSignUp(fields)

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs.Get(tt.field))
		})
	}
}

func TestValidateSignUpPasswordMismatchOnly(t *testing.T) {
	fields := validSignUp()
	fields.ConfirmPassword = "a"

	errs := ValidateSignUp(fields)

	assert.Equal(t, FormErrors{FieldConfirmPassword: "Passwords do not match"}, errs)
}

func TestValidateSignUpMinimumNameLengthIsInclusive(t *testing.T) {
	fields := validSignUp()
	fields.Name = " Ana "

	assert.True(t, ValidateSignUp(fields).Valid())
}

func TestValidateSignIn(t *testing.T) {
	tests := []struct {
		name   string
		fields SignInFields
		want   FormErrors
	}{
		{
			name:   "valid demo credentials",
			fields: SignInFields{Email: "demo@shop.com", Password: "demo123"},
			want:   FormErrors{},
		},
		{
			name:   "missing everything",
			fields: SignInFields{},
			want: FormErrors{
				FieldEmail:    "Email is required",
				FieldPassword: "Password is required",
			},
		},
		{
			name:   "email without at sign",
			fields: SignInFields{Email: "demo", Password: "demo123"},
			want:   FormErrors{FieldEmail: "Email must contain @"},
		},
		{
			name:   "short password",
			fields: SignInFields{Email: "demo@shop.com", Password: "demo"},
			want:   FormErrors{FieldPassword: "Password must be at least 6 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSignIn(tt.fields))
		})
	}
}
