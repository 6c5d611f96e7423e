package impl

import (
	"context"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/infra/auth"
	"authgate/internal/infra/cache"
	mockRepo "authgate/internal/mocks/repository"
	mockService "authgate/internal/mocks/service"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	users    *mockUsecase.MockUserUsecase
	tokens   *mockService.MockTokenService
	setCache *mockRepo.MockSetCache
}

func newTestSessionService(t *testing.T) (usecase.SessionUsecase, sessionMocks) {
	t.Helper()

	m := sessionMocks{
		users:    mockUsecase.NewMockUserUsecase(t),
		tokens:   mockService.NewMockTokenService(t),
		setCache: mockRepo.NewMockSetCache(t),
	}
	svc := NewSessionService(SessionServiceParams{
		UserUsecase:  m.users,
		TokenService: m.tokens,
		SetCache:     m.setCache,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestSessionService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)
	user := &entity.User{ID: uuid.New(), Email: "test@test.com"}
	issued := &service.AccessToken{Token: "signed.jwt.token", ID: "jti-1", ExpiresAt: time.Now().Add(15 * time.Minute)}

	m.users.EXPECT().
		Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPassword"}).
		Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken(user.ID).Return(issued, nil)
	m.setCache.EXPECT().
		AddToSetUntil(ctx, repository.SignedInTokensSet(user.ID), issued.ExpiresAt, []string{"jti-1"}).
		Return(nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "test@test.com", Password: "myPassword"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
	assert.Equal(t, issued.ExpiresAt, out.ExpiresAt)
	assert.Equal(t, user, out.User)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)

	m.users.EXPECT().
		Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPasswor"}).
		Return(nil, nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "test@test.com", Password: "myPasswor"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_AuthenticateError(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)
	storeErr := domainerrors.NewPersistenceError(errors.New("timeout"), "find users by email")

	m.users.EXPECT().
		Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPassword"}).
		Return(nil, storeErr)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "test@test.com", Password: "myPassword"})

	assert.ErrorIs(t, err, storeErr)
}

func TestSessionService_Login_TokenFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)
	user := &entity.User{ID: uuid.New()}

	m.users.EXPECT().Authenticate(ctx, &usecase.AuthenticateInput{Email: "a@b.co", Password: "pw"}).Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken(user.ID).Return(nil, errors.New("signing failed"))

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@b.co", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)
	userID := uuid.New()
	expiresAt := time.Date(2026, 3, 1, 10, 42, 0, 0, time.UTC)
	revokedSet, until := repository.RevokedTokensSet(expiresAt)

	m.setCache.EXPECT().AddToSetUntil(ctx, revokedSet, until, []string{"token-id"}).Return(nil)
	m.setCache.EXPECT().RemoveMemberFromSet(ctx, repository.SignedInTokensSet(userID), "token-id").Return(nil)

	err := svc.Logout(ctx, &usecase.LogoutInput{UserID: userID, TokenID: "token-id", ExpiresAt: expiresAt})

	require.NoError(t, err)
}

func TestSessionService_Logout_Errors(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Minute)

	t.Run("missing token id", func(t *testing.T) {
		svc, _ := newTestSessionService(t)

		err := svc.Logout(ctx, &usecase.LogoutInput{UserID: uuid.New(), ExpiresAt: expiresAt})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing expiry", func(t *testing.T) {
		svc, _ := newTestSessionService(t)

		err := svc.Logout(ctx, &usecase.LogoutInput{UserID: uuid.New(), TokenID: "token-id"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("revoke fails", func(t *testing.T) {
		svc, m := newTestSessionService(t)
		m.setCache.EXPECT().AddToSetUntil(ctx, mock.Anything, mock.Anything, []string{"token-id"}).
			Return(domainerrors.NewPersistenceError(errors.New("redis down"), "add to set"))

		err := svc.Logout(ctx, &usecase.LogoutInput{UserID: uuid.New(), TokenID: "token-id", ExpiresAt: expiresAt})

		assert.True(t, domainerrors.IsPersistenceError(err))
	})
}

func TestSessionService_IsRevoked(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestSessionService(t)
	expiresAt := time.Now().Add(time.Minute)
	revokedSet, _ := repository.RevokedTokensSet(expiresAt)

	m.setCache.EXPECT().IsMemberOfSet(ctx, revokedSet, "revoked").Return(true, nil)
	m.setCache.EXPECT().IsMemberOfSet(ctx, revokedSet, "live").Return(false, nil)

	revoked, err := svc.IsRevoked(ctx, "revoked", expiresAt)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = svc.IsRevoked(ctx, "live", expiresAt)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionService_IsSignedIn(t *testing.T) {
	ctx := context.Background()

	t.Run("counts live tokens", func(t *testing.T) {
		svc, m := newTestSessionService(t)
		userID := uuid.New()
		m.setCache.EXPECT().CountSetMembers(ctx, repository.SignedInTokensSet(userID)).Return(int64(2), nil)

		signedIn, err := svc.IsSignedIn(ctx, userID)

		require.NoError(t, err)
		assert.True(t, signedIn)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newTestSessionService(t)
		userID := uuid.New()
		m.setCache.EXPECT().CountSetMembers(ctx, repository.SignedInTokensSet(userID)).
			Return(int64(0), domainerrors.NewPersistenceError(errors.New("redis down"), "count set"))

		signedIn, err := svc.IsSignedIn(ctx, userID)

		assert.False(t, signedIn)
		assert.True(t, domainerrors.IsPersistenceError(err))
	})
}

// newRedisSessionService wires the session service to a real token signer and an in-memory Redis.
func newRedisSessionService(t *testing.T, user *entity.User) (usecase.SessionUsecase, service.TokenService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := mockUsecase.NewMockUserUsecase(t)
	users.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(user, nil).Maybe()

	svc := NewSessionService(SessionServiceParams{
		UserUsecase:  users,
		TokenService: tokens,
		SetCache:     cache.NewSetCache(client, cfg),
		Logger:       newDiscardLogger(),
	})

	return svc, tokens, mr
}

func TestSessionService_LogoutOneOfTwoSessions(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@test.com"}
	svc, tokens, _ := newRedisSessionService(t, user)
	creds := &usecase.LoginInput{Email: "test@test.com", Password: "myPassword"}

	first, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	second, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	firstClaims, err := tokens.ValidateToken(first.AccessToken)
	require.NoError(t, err)
	secondClaims, err := tokens.ValidateToken(second.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{
		UserID: user.ID, TokenID: firstClaims.ID, ExpiresAt: firstClaims.ExpiresAt.Time,
	}))

	revoked, err := svc.IsRevoked(ctx, firstClaims.ID, firstClaims.ExpiresAt.Time)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = svc.IsRevoked(ctx, secondClaims.ID, secondClaims.ExpiresAt.Time)
	require.NoError(t, err)
	assert.False(t, revoked)

	signedIn, err := svc.IsSignedIn(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, signedIn, "second session is still live")

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{
		UserID: user.ID, TokenID: secondClaims.ID, ExpiresAt: secondClaims.ExpiresAt.Time,
	}))

	signedIn, err = svc.IsSignedIn(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, signedIn)
}

func TestSessionService_RevocationsExpireWithTheirTokens(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@test.com"}
	svc, tokens, mr := newRedisSessionService(t, user)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "test@test.com", Password: "myPassword"})
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(out.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{
		UserID: user.ID, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time,
	}))

	revokedSet, until := repository.RevokedTokensSet(claims.ExpiresAt.Time)
	require.True(t, mr.Exists(revokedSet))
	ttl := mr.TTL(revokedSet)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Until(until)+time.Second)
	assert.True(t, time.Now().Add(ttl).After(claims.ExpiresAt.Time), "revocation outlives the token")

	mr.FastForward(ttl + time.Second)

	assert.False(t, mr.Exists(revokedSet))
	assert.Empty(t, mr.Keys())
}
