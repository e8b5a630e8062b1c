package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gotodo/webapp/internal/services"
	"github.com/gotodo/webapp/internal/session"
	"github.com/gotodo/webapp/internal/store"
	"github.com/gotodo/webapp/internal/web"
	"go.uber.org/zap"
)

// AuthHandler serves the registration, login, and logout pages.
type AuthHandler struct {
	auth     *services.AuthService
	sessions *session.Manager
	renderer *web.Renderer
	log      *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, sessions *session.Manager, renderer *web.Renderer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		renderer: renderer,
		log:      log,
	}
}

// AuthRouter registers the auth routes on the given router.
func AuthRouter(r chi.Router, auth *services.AuthService, sessions *session.Manager, renderer *web.Renderer, log *zap.Logger) {
	handler := NewAuthHandler(auth, sessions, renderer, log)

	r.Get("/register", handler.RegisterForm)
	r.Post("/register", handler.Register)
	r.Get("/login", handler.LoginForm)
	r.Post("/login", handler.Login)
	r.Get("/logout", handler.Logout)
}

type registerView struct {
	Message  string
	Error    string
	Username string
	Email    string
}

type loginView struct {
	Message  string
	Error    string
	Username string
}

// RegisterForm renders the registration form. The msg and error query
// parameters become banner text.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, http.StatusOK, registerView{
		Message: r.URL.Query().Get("msg"),
		Error:   r.URL.Query().Get("error"),
	})
}

// Register processes a registration submission. Failures re-render the form
// with an error banner and the submitted username and email preserved.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirmPassword")

	_, err := h.auth.Register(r.Context(), username, email, password, confirmPassword)
	if err != nil {
		view := registerView{Username: username, Email: email}
		switch {
		case errors.Is(err, store.ErrDuplicate):
			view.Error = "Username or email already exists!"
		default:
			if verr, ok := services.AsValidationError(err); ok {
				view.Error = registerFieldMessage(verr.Field)
			} else {
				h.log.Error("register failed", zap.Error(err))
				view.Error = genericErrorMessage
			}
		}
		h.renderRegister(w, http.StatusOK, view)
		return
	}

	redirectWithMsg(w, r, "/login", "Registration successful! Please login.")
}

// LoginForm renders the login form.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, http.StatusOK, loginView{
		Message: r.URL.Query().Get("msg"),
		Error:   r.URL.Query().Get("error"),
	})
}

// Login verifies credentials. Whether the username is unknown or the
// password wrong, the response is the same generic error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		view := loginView{Username: username}
		if errors.Is(err, services.ErrInvalidCredentials) {
			view.Error = "Invalid username or password!"
		} else {
			h.log.Error("login failed", zap.Error(err))
			view.Error = genericErrorMessage
		}
		h.renderLogin(w, http.StatusOK, view)
		return
	}

	sess := h.sessions.Issue(user.ID, user.Username)
	h.sessions.SetCookie(w, sess)
	redirect(w, r, "/dashboard")
}

// Logout destroys the session unconditionally and sends the client home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	h.sessions.ClearCookie(w)
	redirectWithMsg(w, r, "/", "Logged out successfully!")
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, status int, view registerView) {
	if err := h.renderer.Render(w, status, "register", view); err != nil {
		h.log.Error("render register failed", zap.Error(err))
	}
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, status int, view loginView) {
	if err := h.renderer.Render(w, status, "login", view); err != nil {
		h.log.Error("render login failed", zap.Error(err))
	}
}

func registerFieldMessage(field string) string {
	switch field {
	case "username":
		return "Username is required!"
	case "email":
		return "Email is required!"
	case "password":
		return "Password is required!"
	case "confirmPassword":
		return "Passwords do not match!"
	default:
		return "Invalid input!"
	}
}
