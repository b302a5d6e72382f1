package storefronthttp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/shopez/shopez/internal/auth"
	"github.com/shopez/shopez/internal/catalog"
	"github.com/shopez/shopez/internal/forms"
	"github.com/shopez/shopez/internal/observability"
	"github.com/shopez/shopez/internal/platform/httpx"
	"github.com/shopez/shopez/internal/shared"
	"github.com/shopez/shopez/internal/storefront"
	"github.com/shopez/shopez/internal/view"
)

const (
	signInEmailKey       = "signin_email"
	signUpSuccessMessage = "✅ Sign-up successful! Now login using your email & password."
	authAttemptsPerMin   = 20
)

// Handler serves the storefront pages and commands.
type Handler struct {
	logger    *slog.Logger
	catalog   *catalog.Catalog
	currency  string
	templates *view.Engine
	csrf      *shared.CSRFManager
	metrics   *observability.Metrics
	authOpts  []auth.Option
}

// NewHandler constructs a Handler. authOpts are applied to every restored
// auth session.
func NewHandler(logger *slog.Logger, cat *catalog.Catalog, currency string, templates *view.Engine, csrf *shared.CSRFManager, metrics *observability.Metrics, authOpts ...auth.Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		catalog:   cat,
		currency:  currency,
		templates: templates,
		csrf:      csrf,
		metrics:   metrics,
		authOpts:  authOpts,
	}
}

// MountRoutes registers storefront routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/shop/{section}", h.navigate)
	r.Route("/auth", func(r chi.Router) {
		r.Use(httprate.Limit(authAttemptsPerMin, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Post("/login", h.login)
		r.Post("/signup", h.signUp)
		r.Post("/logout", h.logout)
	})
	r.Route("/cart", func(r chi.Router) {
		r.Post("/add", h.addToCart)
		r.Post("/reset", h.resetCart)
	})
	r.Get("/api/catalog", h.catalogJSON)
	r.Get("/api/catalog/{id}", h.productJSON)
}

type authPageData struct {
	SignIn       forms.SignInFields
	SignInErrors forms.FormErrors
	SignUp       forms.SignUpFields
	SignUpErrors forms.FormErrors
	ShowSignUp   bool
	DemoEmail    string
	DemoPassword string
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

type catalogView struct {
	Products  []catalog.Product
	CSRFToken string
}

type shellPageData struct {
	Nav       []navItem
	Section   storefront.Section
	User      *auth.CurrentUser
	Account   *auth.RegisteredUser
	CartCount int
	Catalog   catalogView
	Stats     catalog.Stats
	Currency  string
}

type catalogResponse struct {
	Currency string            `json:"currency"`
	Products []catalog.Product `json:"products"`
	Stats    catalog.Stats     `json:"stats"`
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	switch screen := store.Screen(); screen.Kind {
	case storefront.ScreenUnauthenticated:
		data := newAuthPageData()
		data.ShowSignUp = r.URL.Query().Get("signup") == "1"
		data.SignIn.Email = sess.Pop(signInEmailKey)
		h.render(w, r, http.StatusOK, "pages/auth.html", "Sign In", data)
	case storefront.ScreenAuthenticated:
		h.renderShell(w, r, store, screen.Section)
	default:
		h.logger.Error("unhandled screen", slog.String("screen", screen.Kind.String()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	section, err := storefront.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := store.Navigate(section); err != nil {
		if errors.Is(err, storefront.ErrNotAuthenticated) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Error("navigate", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !h.saveStore(w, sess, store) {
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	fields := forms.SignInFields{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	data := newAuthPageData()
	data.SignIn = forms.SignInFields{Email: fields.Email}

	if errs := forms.ValidateSignIn(fields); !errs.Valid() {
		h.metrics.RecordAuth("login", "invalid_form")
		data.SignInErrors = errs
		h.render(w, r, http.StatusBadRequest, "pages/auth.html", "Sign In", data)
		return
	}

	err := store.Login(auth.Credentials{Email: fields.Email, Password: fields.Password})
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrAlreadyLoggedIn):
		h.metrics.RecordAuth("login", "already_logged_in")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.metrics.RecordAuth("login", "rejected")
		data.SignInErrors = forms.FormErrors{forms.FieldGeneral: auth.InvalidCredentialsMessage}
		h.render(w, r, http.StatusBadRequest, "pages/auth.html", "Sign In", data)
		return
	default:
		h.logger.Error("login", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !h.saveStore(w, sess, store) {
		return
	}
	h.metrics.RecordAuth("login", "success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	fields := forms.SignUpFields{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	data := newAuthPageData()
	data.ShowSignUp = true
	data.SignUp = forms.SignUpFields{Name: fields.Name, Email: fields.Email}

	if errs := forms.ValidateSignUp(fields); !errs.Valid() {
		h.metrics.RecordAuth("signup", "invalid_form")
		data.SignUpErrors = errs
		h.render(w, r, http.StatusBadRequest, "pages/auth.html", "Sign Up", data)
		return
	}

	err := store.SignUp(auth.User{Name: fields.Name, Email: fields.Email, Password: fields.Password})
	if err != nil {
		h.logger.Error("sign up", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !h.saveStore(w, sess, store) {
		return
	}
	sess.Set(signInEmailKey, strings.TrimSpace(fields.Email))
	sess.AddFlash(shared.FlashMessage{Kind: "success", Message: signUpSuccessMessage})
	h.metrics.RecordAuth("signup", "success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	store.Logout()
	if !h.saveStore(w, sess, store) {
		return
	}
	h.metrics.RecordAuth("logout", "success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	product, err := store.AddToCart(r.PostFormValue("product_id"))
	switch {
	case err == nil:
	case errors.Is(err, storefront.ErrNotAuthenticated):
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, catalog.ErrProductNotFound):
		sess.AddFlash(shared.FlashMessage{Kind: "error", Message: "That product is no longer available."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	default:
		h.logger.Error("add to cart", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !h.saveStore(w, sess, store) {
		return
	}
	h.metrics.RecordCart("add")
	h.logger.Debug("cart add", slog.String("product", product.ID), slog.Int("count", store.CartCount()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) resetCart(w http.ResponseWriter, r *http.Request) {
	store, sess, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	if err := store.ResetCart(); err != nil {
		if errors.Is(err, storefront.ErrNotAuthenticated) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Error("reset cart", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !h.saveStore(w, sess, store) {
		return
	}
	h.metrics.RecordCart("reset")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) catalogJSON(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	if store.Screen().Kind != storefront.ScreenAuthenticated {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	httpx.JSON(w, http.StatusOK, catalogResponse{
		Currency: h.currency,
		Products: h.catalog.All(),
		Stats:    h.catalog.Stats(),
	})
}

func (h *Handler) productJSON(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.loadStore(w, r)
	if !ok {
		return
	}
	if store.Screen().Kind != storefront.ScreenAuthenticated {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	product, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			err = fmt.Errorf("%w: %v", httpx.ErrNotFound, err)
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, store *storefront.Store, section storefront.Section) {
	sess := shared.SessionFromContext(r.Context())
	token, err := h.csrf.EnsureToken(r.Context(), sess)
	if err != nil {
		h.logger.Error("csrf token", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	user := store.CurrentUser()
	data := shellPageData{
		Nav:       navItems(section),
		Section:   section,
		User:      user,
		CartCount: store.CartCount(),
		Catalog:   catalogView{Products: h.catalog.All(), CSRFToken: token},
		Stats:     h.catalog.Stats(),
		Currency:  h.currency,
	}
	if account := store.RegisteredUser(); account != nil && user != nil && account.Email == user.Email {
		data.Account = account
	}
	h.render(w, r, http.StatusOK, "pages/shell.html", section.Label(), data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	sess := shared.SessionFromContext(r.Context())
	token, err := h.csrf.EnsureToken(r.Context(), sess)
	if err != nil {
		h.logger.Error("csrf token", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	viewData := view.TemplateData{
		Title:       title,
		CSRFToken:   token,
		Flash:       sess.PopFlash(),
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, status, name, viewData); err != nil {
		h.logger.Error("render", slog.String("template", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func newAuthPageData() authPageData {
	return authPageData{
		DemoEmail:    auth.DemoEmail,
		DemoPassword: auth.DemoPassword,
	}
}

func navItems(active storefront.Section) []navItem {
	sections := storefront.Sections()
	items := make([]navItem, 0, len(sections))
	for _, s := range sections {
		items = append(items, navItem{
			Label:  s.Label(),
			Href:   "/shop/" + s.String(),
			Active: s == active,
		})
	}
	return items
}
