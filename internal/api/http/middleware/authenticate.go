package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

// UserStore resolves user ids to stored users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// Authenticate validates bearer tokens and injects the resolved user
// into the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	userStore      UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, userStore UserStore, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Middleware rejects requests whose token is missing, malformed,
// expired or does not resolve to an existing user. Every failure gets
// the same response so callers cannot tell a forged token from an
// expired one.
func (m *Authenticate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.authenticate(r)
		if err != nil {
			m.logger.Debug("authentication failed", "path", r.URL.Path, "error", err.Error())
			unauthorized(w)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(r *http.Request) (model.User, error) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return model.User{}, errMissingToken
	}

	userID, err := m.tokenManager.ParseAccessToken(parts[1])
	if err != nil {
		return model.User{}, err
	}

	user, err := m.userStore.GetByID(r.Context(), userID)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

var errMissingToken = errors.New("missing authorization token")

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
}
