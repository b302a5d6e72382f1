package storefronthttp

import (
	"log/slog"
	"net/http"

	"github.com/shopez/shopez/internal/shared"
	"github.com/shopez/shopez/internal/storefront"
)

// loadStore restores the visitor's Store from the session. A snapshot that
// fails to decode or restore is dropped and the visitor starts over.
func (h *Handler) loadStore(w http.ResponseWriter, r *http.Request) (*storefront.Store, *shared.Session, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("session missing", slog.String("path", r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, nil, false
	}
	raw := sess.Get(storefront.SnapshotKey)
	if raw == "" {
		return storefront.NewStore(h.catalog, h.authOpts...), sess, true
	}
	snap, err := storefront.DecodeSnapshot(raw)
	if err == nil {
		var store *storefront.Store
		store, err = storefront.Restore(h.catalog, snap, h.authOpts...)
		if err == nil {
			return store, sess, true
		}
	}
	h.logger.Warn("discarding storefront snapshot", slog.Any("error", err))
	sess.Delete(storefront.SnapshotKey)
	return storefront.NewStore(h.catalog, h.authOpts...), sess, true
}

// saveStore writes the Store back into the session. It must run before the
// response header is written.
func (h *Handler) saveStore(w http.ResponseWriter, sess *shared.Session, store *storefront.Store) bool {
	raw, err := store.Snapshot().Encode()
	if err != nil {
		h.logger.Error("encode storefront snapshot", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	sess.Set(storefront.SnapshotKey, raw)
	return true
}
