// Package storefront composes the auth session, the cart and the navigation
// selection of one storefront visit and exposes them as synchronous
// commands.
package storefront

import (
	"errors"

	"github.com/shopez/shopez/internal/auth"
	"github.com/shopez/shopez/internal/cart"
	"github.com/shopez/shopez/internal/catalog"
)

var (
	// ErrNotAuthenticated is returned by commands that need a logged-in user.
	ErrNotAuthenticated = errors.New("storefront: not authenticated")
	// ErrUnknownSection is returned for navigation outside the fixed sections.
	ErrUnknownSection = errors.New("storefront: unknown section")
	// ErrCorruptSnapshot is returned when stored state cannot be restored.
	ErrCorruptSnapshot = errors.New("storefront: corrupt snapshot")
)

// Store owns all mutable state of a visit. Mutation goes only through its
// command methods.
type Store struct {
	catalog *catalog.Catalog
	session *auth.Session
	cart    *cart.Cart
	section Section
}

// NewStore returns a logged-out store with an empty cart.
func NewStore(cat *catalog.Catalog, opts ...auth.Option) *Store {
	c := cart.New()
	return &Store{
		catalog: cat,
		session: auth.NewSession(c, opts...),
		cart:    c,
		section: DefaultSection,
	}
}

// Screen selects the top-level screen.
func (s *Store) Screen() Screen {
	if !s.session.IsLoggedIn() {
		return Unauthenticated()
	}
	return Authenticated(s.section)
}

// SignUp registers user as the single demo account.
func (s *Store) SignUp(user auth.User) error {
	return s.session.SignUp(user)
}

// Login signs in and selects the default section.
func (s *Store) Login(creds auth.Credentials) error {
	if err := s.session.Login(creds); err != nil {
		return err
	}
	s.section = DefaultSection
	return nil
}

// Logout signs out. The session resets the cart.
func (s *Store) Logout() {
	s.session.Logout()
	s.section = DefaultSection
}

// AddToCart adds the catalog product with productID to the cart.
func (s *Store) AddToCart(productID string) (catalog.Product, error) {
	if !s.session.IsLoggedIn() {
		return catalog.Product{}, ErrNotAuthenticated
	}
	p, err := s.catalog.Get(productID)
	if err != nil {
		return catalog.Product{}, err
	}
	s.cart.Add(p)
	return p, nil
}

// ResetCart empties the cart.
func (s *Store) ResetCart() error {
	if !s.session.IsLoggedIn() {
		return ErrNotAuthenticated
	}
	s.cart.Reset()
	return nil
}

// Navigate selects a section of the authenticated shell.
func (s *Store) Navigate(section Section) error {
	if !s.session.IsLoggedIn() {
		return ErrNotAuthenticated
	}
	if _, err := ParseSection(string(section)); err != nil {
		return err
	}
	s.section = section
	return nil
}

// CartCount returns the number of items in the cart.
func (s *Store) CartCount() int {
	return s.cart.Count()
}

// CurrentUser returns the logged-in user or nil.
func (s *Store) CurrentUser() *auth.CurrentUser {
	return s.session.CurrentUser()
}

// RegisteredUser returns the signed-up account or nil.
func (s *Store) RegisteredUser() *auth.RegisteredUser {
	return s.session.RegisteredUser()
}

// Catalog returns the product catalog shown by the store.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}
