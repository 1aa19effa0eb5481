package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/musicschool-server/internal/api/httpctx"
	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/mocks"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/token"
)

func newAuthMiddleware(t *testing.T, userStore *mocks.UserStore) (*Authenticate, model.TokenManager, model.ContextManager) {
	t.Helper()
	tokMan := token.NewJWT("test-secret", time.Minute)
	ctxMgr := httpctx.NewManager()
	return NewAuthenticate(tokMan, userStore, ctxMgr, logger.New(0)), tokMan, ctxMgr
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, int64(7)).
		Return(model.User{ID: 7, Email: "user@school.edu"}, nil)

	mw, tokMan, ctxMgr := newAuthMiddleware(t, userStore)

	access, err := tokMan.GenerateAccessToken(7)
	require.NoError(t, err)

	var gotUser model.User
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotOK = ctxMgr.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()

	mw.Middleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, "user@school.edu", gotUser.Email)
}

func TestAuthenticate_Rejections(t *testing.T) {
	expired := token.NewJWT("test-secret", -time.Second)
	expiredToken, err := expired.GenerateAccessToken(7)
	require.NoError(t, err)

	foreign := token.NewJWT("other-secret", time.Minute)
	foreignToken, err := foreign.GenerateAccessToken(7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signing key", header: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &mocks.UserStore{}
			mw, _, _ := newAuthMiddleware(t, userStore)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Middleware(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Could not validate credentials", body["detail"])
		})
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, int64(7)).Return(model.User{}, model.ErrNotFound)

	mw, tokMan, _ := newAuthMiddleware(t, userStore)

	access, err := tokMan.GenerateAccessToken(7)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()

	mw.Middleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
