package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopez/shopez/internal/auth"
	"github.com/shopez/shopez/internal/catalog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewStore(cat, auth.WithHashCost(bcrypt.MinCost))
}

func loginDemo(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.Login(auth.Credentials{Email: auth.DemoEmail, Password: auth.DemoPassword}))
}

func TestScreenFollowsSession(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, Unauthenticated(), s.Screen())

	loginDemo(t, s)
	assert.Equal(t, Authenticated(SectionDashboard), s.Screen())

	s.Logout()
	assert.Equal(t, ScreenUnauthenticated, s.Screen().Kind)
}

func TestNavigate(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.Navigate(SectionItems), ErrNotAuthenticated)

	loginDemo(t, s)
	require.NoError(t, s.Navigate(SectionAnalytics))
	assert.Equal(t, Authenticated(SectionAnalytics), s.Screen())

	assert.ErrorIs(t, s.Navigate(Section("billing")), ErrUnknownSection)
	assert.Equal(t, SectionAnalytics, s.Screen().Section)
}

func TestFreshLoginResetsSection(t *testing.T) {
	s := newTestStore(t)
	loginDemo(t, s)
	require.NoError(t, s.Navigate(SectionSettings))

	s.Logout()
	loginDemo(t, s)

	assert.Equal(t, Authenticated(DefaultSection), s.Screen())
}

func TestAddToCartCountsEachCall(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddToCart("p1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	loginDemo(t, s)
	for i := 0; i < 4; i++ {
		p, err := s.AddToCart("p2")
		require.NoError(t, err)
		assert.Equal(t, "Bluetooth Headset", p.Name)
	}
	assert.Equal(t, 4, s.CartCount())

	_, err = s.AddToCart("nope")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Equal(t, 4, s.CartCount())

	require.NoError(t, s.ResetCart())
	assert.Zero(t, s.CartCount())
}

func TestLogoutResetsCart(t *testing.T) {
	s := newTestStore(t)
	loginDemo(t, s)
	for i := 0; i < 3; i++ {
		_, err := s.AddToCart("p1")
		require.NoError(t, err)
	}

	s.Logout()

	assert.Zero(t, s.CartCount())
	loginDemo(t, s)
	assert.Zero(t, s.CartCount())
}

func TestSignUpAndLoginThroughStore(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SignUp(auth.User{Name: "Arun", Email: "arun@shop.com", Password: "secret1"}))
	assert.Equal(t, ScreenUnauthenticated, s.Screen().Kind)

	require.NoError(t, s.Login(auth.Credentials{Email: "arun@shop.com", Password: "secret1"}))
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "arun@shop.com", s.CurrentUser().Email)
	assert.Equal(t, "Arun", s.RegisteredUser().Name)
}

func TestResetCartRequiresLogin(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.ResetCart(), ErrNotAuthenticated)
}

func TestParseSection(t *testing.T) {
	for _, section := range Sections() {
		parsed, err := ParseSection(section.String())
		require.NoError(t, err)
		assert.Equal(t, section, parsed)
		assert.NotEmpty(t, section.Label())
	}

	_, err := ParseSection("")
	assert.ErrorIs(t, err, ErrUnknownSection)
}
