package auth

import "errors"

// Built-in demo identity, usable without signing up.
const (
	DemoEmail    = "demo@shop.com"
	DemoPassword = "demo123"
)

// InvalidCredentialsMessage is shown for every failed login. It does not say
// which field was wrong.
const InvalidCredentialsMessage = "Invalid credentials. Try demo@shop.com / demo123 or Sign Up first."

var (
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrAlreadyLoggedIn is returned by Login when a user is already signed in.
	ErrAlreadyLoggedIn = errors.New("auth: already logged in")
	// ErrInconsistentState is returned when restored state breaks the
	// logged-in/current-user invariant.
	ErrInconsistentState = errors.New("auth: inconsistent session state")
)

// Credentials are submitted by the sign-in form.
type Credentials struct {
	Email    string
	Password string
}

// User is the identity submitted by the sign-up form.
type User struct {
	Name     string
	Email    string
	Password string
}

// RegisteredUser is the stored form of the single signed-up account.
type RegisteredUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// CurrentUser identifies whoever is logged in.
type CurrentUser struct {
	Email string `json:"email"`
}

// State is the serializable form of a Session.
type State struct {
	LoggedIn   bool            `json:"logged_in"`
	Registered *RegisteredUser `json:"registered,omitempty"`
	Current    *CurrentUser    `json:"current,omitempty"`
}
