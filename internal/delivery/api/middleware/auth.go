package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies bearer access tokens and rejects revoked ones.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService   service.TokenService
	SessionUsecase usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		sessions: params.SessionUsecase,
		logger:   params.Logger,
	}
}

// Authenticate requires "Authorization: Bearer <jwt>" and stores the caller's identity on the context.
// A cache failure while checking revocation fails the request rather than letting it through.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			m.log(c).Debug("Rejected bearer token", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}

		if claims.ExpiresAt == nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token has no expiry")
		}

		ctx := c.Request().Context()
		revoked, err := m.sessions.IsRevoked(ctx, claims.ID, claims.ExpiresAt.Time)
		if err != nil {
			return errors.Wrap(err, "failed to check token revocation")
		}
		if revoked {
			m.log(c).Info("Rejected revoked token", slog.Any("user_id", claims.UserID), slog.String("token_id", claims.ID))

			return domainerrors.ErrUnauthorized.WrapMessage("token has been revoked")
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID:    claims.UserID,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})

		return next(c)
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// Unless applies mw to every request whose path is not whitelisted.
// Entries match exactly, ignoring a trailing slash; an entry ending in "/*" matches its whole subtree.
func Unless(whitelist []string, mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	exact := make(map[string]struct{}, len(whitelist))
	var prefixes []string
	for _, p := range whitelist {
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			prefixes = append(prefixes, prefix+"/")

			continue
		}
		exact[trimTrailingSlash(p)] = struct{}{}
	}

	whitelisted := func(path string) bool {
		if _, ok := exact[trimTrailingSlash(path)]; ok {
			return true
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}

		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		gated := mw(next)

		return func(c echo.Context) error {
			if whitelisted(c.Request().URL.Path) {
				return next(c)
			}

			return gated(c)
		}
	}
}

func trimTrailingSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.UserID, true
}
