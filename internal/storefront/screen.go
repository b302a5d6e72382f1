package storefront

// ScreenKind tags the top-level screen variant.
type ScreenKind int

const (
	// ScreenUnauthenticated shows sign-in with the sign-up entry point.
	ScreenUnauthenticated ScreenKind = iota
	// ScreenAuthenticated shows the navigation shell and one section.
	ScreenAuthenticated
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenUnauthenticated:
		return "unauthenticated"
	case ScreenAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Screen is either Unauthenticated or Authenticated(Section). Section is
// empty for the unauthenticated variant.
type Screen struct {
	Kind    ScreenKind
	Section Section
}

// Unauthenticated returns the logged-out screen.
func Unauthenticated() Screen {
	return Screen{Kind: ScreenUnauthenticated}
}

// Authenticated returns the shell screen showing section.
func Authenticated(section Section) Screen {
	return Screen{Kind: ScreenAuthenticated, Section: section}
}
