package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/service"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

// Register creates a new account. The password hash never leaves the
// server.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err, "")
		return
	}

	errs := validate.Errors{}
	if req.Email == nil {
		errs.Add("email", "field required")
	} else {
		validate.Email(errs, "email", *req.Email)
		validate.Length(errs, "email", *req.Email, 3, 255)
	}
	if req.Password == nil {
		errs.Add("password", "field required")
	} else {
		// bcrypt only digests the first 72 bytes
		validate.Length(errs, "password", *req.Password, 6, 72)
	}
	if err := errs.OrNil(); err != nil {
		handleError(w, h.logger, err, "")
		return
	}

	user, err := h.service.Register(r.Context(), *req.Email, *req.Password)
	if err != nil {
		var conflictErr *model.ConflictError
		if errors.As(err, &conflictErr) {
			respondDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		handleError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

// Login verifies credentials and returns a bearer token. The credentials
// arrive either as an OAuth2 password form or as a JSON object with the
// same field names.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := loginCredentials(r)
	if err != nil {
		handleError(w, h.logger, err, "")
		return
	}

	accessToken, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// Me returns the account the presented token resolves to.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func loginCredentials(r *http.Request) (username, password string, err error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeJSON(r, &req); err != nil {
			return "", "", err
		}
		username, password = req.Username, req.Password
	} else {
		if err := r.ParseForm(); err != nil {
			return "", "", validate.Errors{"body": "must be a valid form body"}
		}
		username, password = r.PostFormValue("username"), r.PostFormValue("password")
	}

	errs := validate.Errors{}
	if username == "" {
		errs.Add("username", "field required")
	}
	if password == "" {
		errs.Add("password", "field required")
	}
	return username, password, errs.OrNil()
}
