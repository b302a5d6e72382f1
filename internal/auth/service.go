// Package auth holds the demo authentication state of a storefront visit:
// the single registered account, the login status and the active user.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Resetter is cleared on every logout. The cart implements it.
type Resetter interface {
	Reset()
}

// Option configures a Session.
type Option func(*Session)

// WithHashCost sets the bcrypt cost used by SignUp.
func WithHashCost(cost int) Option {
	return func(s *Session) {
		s.cost = cost
	}
}

// Session is a two-state machine: LoggedOut and LoggedIn. Only Login moves
// it to LoggedIn and only Logout moves it back.
type Session struct {
	loggedIn   bool
	registered *RegisteredUser
	current    *CurrentUser
	onLogout   Resetter
	cost       int
}

// NewSession returns a logged-out session with no registered user. onLogout
// may be nil.
func NewSession(onLogout Resetter, opts ...Option) *Session {
	s := &Session{onLogout: onLogout, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RestoreSession rebuilds a session from stored state.
func RestoreSession(onLogout Resetter, state State, opts ...Option) (*Session, error) {
	if state.LoggedIn != (state.Current != nil) {
		return nil, ErrInconsistentState
	}
	s := NewSession(onLogout, opts...)
	s.loggedIn = state.LoggedIn
	if state.Registered != nil {
		reg := *state.Registered
		s.registered = &reg
	}
	if state.Current != nil {
		cur := *state.Current
		s.current = &cur
	}
	return s, nil
}

// State returns a copy of the session state.
func (s *Session) State() State {
	state := State{LoggedIn: s.loggedIn}
	state.Registered = s.RegisteredUser()
	state.Current = s.CurrentUser()
	return state
}

// IsLoggedIn reports whether a user is logged in.
func (s *Session) IsLoggedIn() bool {
	return s.loggedIn
}

// CurrentUser returns the logged-in user or nil.
func (s *Session) CurrentUser() *CurrentUser {
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

// RegisteredUser returns the signed-up account or nil.
func (s *Session) RegisteredUser() *RegisteredUser {
	if s.registered == nil {
		return nil
	}
	reg := *s.registered
	return &reg
}

// SignUp replaces the registered account with user. Callers validate the
// form first; SignUp only trims name and email.
func (s *Session) SignUp(user User) error {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(user.Password), s.cost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	s.registered = &RegisteredUser{
		Name:         strings.TrimSpace(user.Name),
		Email:        strings.TrimSpace(user.Email),
		PasswordHash: string(hash),
	}
	return nil
}

// Login signs in with the registered account or the demo identity. Both
// email and password must match exactly.
func (s *Session) Login(creds Credentials) error {
	if s.loggedIn {
		return ErrAlreadyLoggedIn
	}
	if !s.matchesRegistered(creds) && !matchesDemo(creds) {
		return ErrInvalidCredentials
	}
	s.loggedIn = true
	s.current = &CurrentUser{Email: creds.Email}
	return nil
}

// Logout signs out and clears the cart. Calling it while logged out only
// clears the cart again.
func (s *Session) Logout() {
	s.loggedIn = false
	s.current = nil
	if s.onLogout != nil {
		s.onLogout.Reset()
	}
}

func (s *Session) matchesRegistered(creds Credentials) bool {
	if s.registered == nil || creds.Email != s.registered.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.registered.PasswordHash), passwordDigest(creds.Password)) == nil
}

// passwordDigest feeds bcrypt a fixed 64-byte input so that every byte of
// the password counts and no length is rejected.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	dst := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(dst, sum[:])
	return dst
}

func matchesDemo(creds Credentials) bool {
	return creds.Email == DemoEmail && creds.Password == DemoPassword
}
