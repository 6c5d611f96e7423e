package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	users        usecase.UserUsecase
	tokenService service.TokenService
	setCache     repository.SetCache
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserUsecase  usecase.UserUsecase
	TokenService service.TokenService
	SetCache     repository.SetCache
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		users:        params.UserUsecase,
		tokenService: params.TokenService,
		setCache:     params.SetCache,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates the credentials and issues an access token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credentials are required")
	}

	user, err := srv.users.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	issued, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	// The per-user set lives as long as the user's latest token.
	if err := srv.setCache.AddToSetUntil(ctx, repository.SignedInTokensSet(user.ID), issued.ExpiresAt, issued.ID); err != nil {
		return nil, errors.Wrap(err, "failed to record signed-in token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// Logout revokes the presented token. Other tokens held by the same user stay valid.
func (srv *sessionService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || input.TokenID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token id is required")
	}
	if input.ExpiresAt.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("token expiry is required")
	}

	revokedSet, until := repository.RevokedTokensSet(input.ExpiresAt)
	if err := srv.setCache.AddToSetUntil(ctx, revokedSet, until, input.TokenID); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	if err := srv.setCache.RemoveMemberFromSet(ctx, repository.SignedInTokensSet(input.UserID), input.TokenID); err != nil {
		return errors.Wrap(err, "failed to clear signed-in token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", input.UserID), slog.String("token_id", input.TokenID))

	return nil
}

// IsRevoked reports whether a token ID has been revoked by logout.
func (srv *sessionService) IsRevoked(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	revokedSet, _ := repository.RevokedTokensSet(expiresAt)
	revoked, err := srv.setCache.IsMemberOfSet(ctx, revokedSet, tokenID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return revoked, nil
}

// IsSignedIn reports whether the user holds at least one token that has not been logged out.
// Tokens that simply expired are only dropped when the user's set lapses with the latest one.
func (srv *sessionService) IsSignedIn(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := srv.setCache.CountSetMembers(ctx, repository.SignedInTokensSet(userID))
	if err != nil {
		return false, errors.Wrap(err, "failed to check signed-in user")
	}

	return n > 0, nil
}
