package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"kmc/config"
	"kmc/infras/jwt"
	"kmc/infras/otel"
	"kmc/permissions"
	"kmc/shared/constant"
	"kmc/shared/failure"
	"kmc/shared/session"
	"kmc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgSessionReplaced = "다른 기기에서 로그인되어 세션이 종료되었습니다."

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	sessions   session.Store
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, sessions session.Store, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		sessions:   sessions,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// skipped reports whether an internal caller already passed the API key check.
func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

// route resolves the registered chi pattern of the request and its permission entry.
// listed is false when permissions.json has no entry for the pattern.
func (m *authRoleImpl) route(request *http.Request) (path string, permission permissions.Permission, listed bool) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path, permissions.Permission{}, false
	}

	path = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if m.permission == nil {
		return path, permissions.Permission{}, false
	}

	permission, listed = m.permission.Lookup(path, request.Method)

	return path, permission, listed
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidToken):
		return failure.Unauthorized("Invalid token")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	default:
		return failure.Unauthorized("Token validation failed")
	}
}

// authenticate turns the Authorization header into claims of the admin's live session.
func (m *authRoleImpl) authenticate(ctx context.Context, header string) (*jwt.Claims, error) {
	if header == "" {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		return nil, tokenFailure(err)
	}

	if claims.UserID == "" || claims.Email == "" {
		log.Error().Str("user_id", claims.UserID).Msg("token carries an empty subject")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	active, err := m.sessions.IsActive(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to read session")

		return nil, err
	}

	if !active {
		return nil, failure.Unauthorized(msgSessionReplaced)
	}

	return claims, nil
}

// Auth admits requests carrying the access token of the admin's current session.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		path, permission, _ := m.route(request)
		if permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		claims, err := m.authenticate(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			deny(writer, scope, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC runs after Auth and checks the caller's role against the route's permission entry.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		path, permission, listed := m.route(request)
		if !listed {
			log.Warn().Str("method", request.Method).Str("path", path).Msg("route has no permission entry")
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		if permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal services bypass Auth and RBAC with the shared key.
// Requests without the header continue as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, true)))
	})
}
