package middleware_test

import (
	"kmc/config"
	"kmc/infras/jwt"
	jwtMocks "kmc/infras/jwt/mocks"
	otelMocks "kmc/infras/otel/mocks"
	"kmc/permissions"
	"kmc/shared/constant"
	sessionMocks "kmc/shared/session/mocks"
	"kmc/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	testAPIKey = "internal-key"
	testToken  = "access-token"
)

type authFixture struct {
	jwt      *jwtMocks.MockJWT
	sessions *sessionMocks.MockStore
	router   http.Handler
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	f := authFixture{
		jwt:      jwtMocks.NewMockJWT(ctrl),
		sessions: sessionMocks.NewMockStore(ctrl),
	}

	authRole := middleware.NewAuthRoleMiddleware(f.jwt, f.sessions, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Test-Role", role)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(g chi.Router) {
		g.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		g.Route("/v1", func(v1 chi.Router) {
			v1.Post("/auth/login", ok)
			v1.Route("/rooms", func(rooms chi.Router) {
				rooms.Get("/", ok)
			})
			v1.Route("/vacations", func(vacations chi.Router) {
				vacations.Put("/{reqNo}/response", ok)
			})
			v1.Get("/unlisted", ok)
		})
	})

	f.router = router

	return f
}

func (f authFixture) signedIn(role string) {
	f.jwt.EXPECT().ValidateToken(gomock.Any(), testToken, jwt.AccessToken).
		Return(&jwt.Claims{UserID: "desk@kmc.org", Email: "desk@kmc.org", Role: role, TokenID: "tid-1"}, nil)
	f.sessions.EXPECT().IsActive(gomock.Any(), "desk@kmc.org", "tid-1").Return(true, nil)
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		setup      func(f authFixture)
		wantStatus int
	}{
		{
			name:       "login needs no token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), testToken, jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "staff lists rooms",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup:      func(f authFixture) { f.signedIn(constant.RoleStaff) },
			wantStatus: http.StatusOK,
		},
		{
			name:   "session replaced by a newer login",
			method: http.MethodGet,
			path:   "/v1/rooms/",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), testToken, jwt.AccessToken).
					Return(&jwt.Claims{UserID: "desk@kmc.org", Email: "desk@kmc.org", Role: constant.RoleStaff, TokenID: "old"}, nil)
				f.sessions.EXPECT().IsActive(gomock.Any(), "desk@kmc.org", "old").Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "staff cannot decide vacations",
			method:     http.MethodPut,
			path:       "/v1/vacations/12/response",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup:      func(f authFixture) { f.signedIn(constant.RoleStaff) },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "manager decides vacations",
			method:     http.MethodPut,
			path:       "/v1/vacations/12/response",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup:      func(f authFixture) { f.signedIn(constant.RoleManager) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "internal caller with api key",
			method:     http.MethodPut,
			path:       "/v1/vacations/12/response",
			header:     map[string]string{constant.RequestHeaderAPIKey: testAPIKey},
			wantStatus: http.StatusOK,
		},
		{
			name:       "route without a permission entry",
			method:     http.MethodGet,
			path:       "/v1/unlisted",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Bearer " + testToken},
			setup:      func(f authFixture) { f.signedIn(constant.RoleManager) },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "api key with the right prefix",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			header:     map[string]string{constant.RequestHeaderAPIKey: testAPIKey[:len(testAPIKey)-1]},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong api key",
			method:     http.MethodGet,
			path:       "/v1/rooms/",
			header:     map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
