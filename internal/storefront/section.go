package storefront

import "fmt"

// Section is one entry of the sidebar navigation inside the authenticated
// shell.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionItems     Section = "items"
	SectionAnalytics Section = "analytics"
	SectionOrders    Section = "orders"
	SectionCart      Section = "cart"
	SectionSettings  Section = "settings"
)

// DefaultSection is selected after every fresh login.
const DefaultSection = SectionDashboard

var sectionLabels = map[Section]string{
	SectionDashboard: "Dashboard",
	SectionItems:     "Items",
	SectionAnalytics: "Analytics",
	SectionOrders:    "Orders",
	SectionCart:      "Cart",
	SectionSettings:  "Settings",
}

// Sections returns the navigation sections in sidebar order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionItems,
		SectionAnalytics,
		SectionOrders,
		SectionCart,
		SectionSettings,
	}
}

// ParseSection maps a URL segment to a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if _, ok := sectionLabels[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return s, nil
}

// Label is the sidebar caption.
func (s Section) Label() string {
	return sectionLabels[s]
}

func (s Section) String() string {
	return string(s)
}
