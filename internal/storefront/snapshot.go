package storefront

import (
	"encoding/json"
	"fmt"

	"github.com/shopez/shopez/internal/auth"
	"github.com/shopez/shopez/internal/cart"
	"github.com/shopez/shopez/internal/catalog"
)

// SnapshotKey is the browser-session value holding the encoded snapshot.
const SnapshotKey = "storefront"

// Snapshot is the serializable state of a Store.
type Snapshot struct {
	auth.State
	CartCount int     `json:"cart_count"`
	Section   Section `json:"section"`
}

// Snapshot captures the store state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		State:     s.session.State(),
		CartCount: s.cart.Count(),
		Section:   s.section,
	}
}

// Restore rebuilds a store from snap. A logged-out snapshot must have an
// empty cart because logout always resets it.
func Restore(cat *catalog.Catalog, snap Snapshot, opts ...auth.Option) (*Store, error) {
	section := snap.Section
	if section == "" {
		section = DefaultSection
	}
	if _, err := ParseSection(string(section)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if !snap.LoggedIn && snap.CartCount != 0 {
		return nil, fmt.Errorf("%w: cart not empty while logged out", ErrCorruptSnapshot)
	}
	c, err := cart.Restore(snap.CartCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	session, err := auth.RestoreSession(c, snap.State, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return &Store{catalog: cat, session: session, cart: c, section: section}, nil
}

// Encode serializes the snapshot for the session store.
func (snap Snapshot) Encode() (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("storefront: encode snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a value produced by Encode.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return snap, nil
}
