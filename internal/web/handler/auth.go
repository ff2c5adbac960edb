package handler

import (
	"log/slog"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/forms"
	"github.com/passa-a-bola/passa-web/internal/services/auth"
	"github.com/passa-a-bola/passa-web/internal/web/middleware"
	"github.com/passa-a-bola/passa-web/internal/web/templates/pages"
)

const tooManyAttemptsMessage = "Muitas tentativas de login. Aguarde um instante e tente novamente."

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "", "")
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "", "Dados do formulário inválidos")
		return
	}

	form := forms.LoginFromForm(r.PostForm)
	sess, err := h.authService.Login(r.Context(), middleware.GetClientID(r.Context()), form)
	if err != nil {
		h.renderLogin(w, r, http.StatusOK, form.Email, auth.Message(err))
		return
	}

	middleware.SetFlash(w, "success", "Bem-vinda, "+sess.User.DisplayName()+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// TooManyAttempts answers a rate limited login
func (h *AuthHandler) TooManyAttempts(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("login rate limited", slog.String("remote", r.RemoteAddr))
	h.renderLogin(w, r, http.StatusTooManyRequests, r.PostFormValue("email"), tooManyAttemptsMessage)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderRegister(w, r, forms.Register{}, "")
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, forms.Register{}, "Dados do formulário inválidos")
		return
	}

	form := forms.RegisterFromForm(r.PostForm)
	if err := h.authService.Register(r.Context(), form); err != nil {
		h.renderRegister(w, r, form, auth.Message(err))
		return
	}

	middleware.SetFlash(w, "success", auth.RegisteredMessage)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout clears the client's session and feed
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.GetClientID(r.Context())); err != nil {
		h.logger.Error("logout", slog.String("error", err.Error()))
		middleware.ErrorPage(w, http.StatusServiceUnavailable)
		return
	}

	middleware.SetFlash(w, "info", "Você saiu da sua conta.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, email, errorMsg string) {
	render(w, r, status, pages.Login(pages.LoginData{
		PageData: pageData(r, "Entrar"),
		Email:    email,
		Error:    errorMsg,
	}))
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, form forms.Register, errorMsg string) {
	render(w, r, http.StatusOK, pages.Register(pages.RegisterData{
		PageData: pageData(r, "Cadastro"),
		Name:     form.Name,
		Email:    form.Email,
		Role:     form.Role,
		Error:    errorMsg,
	}))
}
