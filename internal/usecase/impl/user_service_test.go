package impl

import (
	"context"
	"testing"
	"time"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/auth"
	mockRepo "authgate/internal/mocks/repository"
	mockService "authgate/internal/mocks/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T, hasher *mockService.MockPasswordHasher) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return svc, txManager, userRepo
}

func validSignUpInput() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		Email:     "test@test.com",
		Password:  "myPassword",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	ctx := context.Background()
	hasher := mockService.NewMockPasswordHasher(t)
	svc, txManager, userRepo := newTestUserService(t, hasher)

	hasher.EXPECT().Hash("myPassword").Return("hashed-password", nil)
	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return(nil, nil)
	userRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "hashed-password", user.PasswordHash)
			assert.Equal(t, "test@test.com", user.Email)
			user.ID = uuid.New()
			user.CreatedAt = time.Now()
			user.UpdatedAt = user.CreatedAt

			return nil
		})

	input := validSignUpInput()
	input.Email = "  Test@Test.COM "
	input.FirstName = " Test "

	out, err := svc.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, "test@test.com", out.User.Email)
	assert.Equal(t, "Test", out.User.FirstName)
	assert.Empty(t, out.User.PasswordHash)
	assert.False(t, out.User.CreatedAt.IsZero())
}

func TestUserService_SignUp_Duplicated(t *testing.T) {
	ctx := context.Background()
	hasher := mockService.NewMockPasswordHasher(t)
	svc, txManager, userRepo := newTestUserService(t, hasher)

	hasher.EXPECT().Hash("myPassword").Return("hashed-password", nil)
	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(ctx, "test@test.com").
		Return([]*entity.User{{ID: uuid.New(), Email: "test@test.com"}}, nil)

	out, err := svc.SignUp(ctx, validSignUpInput())

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicatedUser)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Duplicated user", appErr.Message())
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		details string
	}{
		{name: "missing email", mutate: func(in *usecase.SignUpInput) { in.Email = "" }, details: "email: required"},
		{name: "malformed email", mutate: func(in *usecase.SignUpInput) { in.Email = "not-an-email" }, details: "email: email"},
		{name: "missing password", mutate: func(in *usecase.SignUpInput) { in.Password = "" }, details: "password: required"},
		{name: "blank first name", mutate: func(in *usecase.SignUpInput) { in.FirstName = "   " }, details: "firstName: required"},
		{name: "missing last name", mutate: func(in *usecase.SignUpInput) { in.LastName = "" }, details: "lastName: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := mockService.NewMockPasswordHasher(t)
			svc, txManager, _ := newTestUserService(t, hasher)

			input := validSignUpInput()
			tt.mutate(input)

			out, err := svc.SignUp(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.details)
			hasher.AssertNotCalled(t, "Hash", mock.Anything)
			txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_SignUp_NilInput(t *testing.T) {
	svc, _, _ := newTestUserService(t, mockService.NewMockPasswordHasher(t))

	_, err := svc.SignUp(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SignUp_HashFailure(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	svc, txManager, _ := newTestUserService(t, hasher)

	hasher.EXPECT().Hash("myPassword").Return("", errors.New("entropy exhausted"))

	_, err := svc.SignUp(context.Background(), validSignUpInput())

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_PasswordTooLong(t *testing.T) {
	svc, _, _ := newTestUserService(t, nil)
	svc.(*userService).hasher = auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	input := validSignUpInput()
	input.Password = string(make([]byte, 73))

	_, err := svc.SignUp(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SignUp_DuplicateCheckFailure(t *testing.T) {
	ctx := context.Background()
	hasher := mockService.NewMockPasswordHasher(t)
	svc, txManager, userRepo := newTestUserService(t, hasher)

	hasher.EXPECT().Hash("myPassword").Return("hashed-password", nil)
	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(ctx, "test@test.com").
		Return(nil, domainerrors.NewPersistenceError(errors.New("connection reset"), "find users by email"))

	_, err := svc.SignUp(ctx, validSignUpInput())

	require.Error(t, err)
	assert.True(t, domainerrors.IsPersistenceError(err))
	assert.NotErrorIs(t, err, domainerrors.ErrDuplicatedUser)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_SaveFailure(t *testing.T) {
	ctx := context.Background()
	hasher := mockService.NewMockPasswordHasher(t)
	svc, txManager, userRepo := newTestUserService(t, hasher)

	hasher.EXPECT().Hash("myPassword").Return("hashed-password", nil)
	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return(nil, nil)
	userRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.NewPersistenceError(errors.New("disk full"), "save user"))

	out, err := svc.SignUp(ctx, validSignUpInput())

	assert.Nil(t, out)
	assert.True(t, domainerrors.IsPersistenceError(err))
}

// storedUser builds what the repository would hold after signing up test@test.com / myPassword.
func storedUser(t *testing.T) *entity.User {
	t.Helper()

	hash, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost).Hash("myPassword")
	require.NoError(t, err)

	return &entity.User{
		ID:           uuid.New(),
		Email:        "test@test.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
	}
}

func newAuthenticatingService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		UserRepo:  userRepo,
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:    newDiscardLogger(),
	})

	return svc, userRepo
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t)

	t.Run("correct credentials", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return([]*entity.User{user}, nil)

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPassword"})

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Empty(t, got.PasswordHash)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByEmail(ctx, "tes@test.com").Return(nil, nil)

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: "tes@test.com", Password: "myPassword"})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return([]*entity.User{user}, nil)

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPasswor"})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("email case and spacing ignored", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return([]*entity.User{user}, nil)

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: " TEST@test.com", Password: "myPassword"})

		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		broken := *user
		broken.PasswordHash = "not-a-bcrypt-hash"
		userRepo.EXPECT().FindByEmail(ctx, "test@test.com").Return([]*entity.User{&broken}, nil)

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPassword"})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByEmail(ctx, "test@test.com").
			Return(nil, domainerrors.NewPersistenceError(errors.New("timeout"), "find users by email"))

		got, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{Email: "test@test.com", Password: "myPassword"})

		assert.Nil(t, got)
		assert.True(t, domainerrors.IsPersistenceError(err))
	})

	t.Run("nil input", func(t *testing.T) {
		svc, _ := newAuthenticatingService(t)

		_, err := svc.Authenticate(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t)

	t.Run("found", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := svc.GetProfile(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.Empty(t, got.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		svc, userRepo := newAuthenticatingService(t)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := svc.GetProfile(ctx, user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
