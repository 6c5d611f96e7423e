// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/usecase"
	"authgate/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validate:  util.NewValidator(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a user after validation, hashing and a duplicate-email check.
// The check and the insert share a transaction; a concurrent sign-up with the
// same email can still slip between them since the email column is not unique.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sign-up input is required")
	}

	normalized := *input
	normalized.Email = entity.NormalizeEmail(input.Email)
	normalized.FirstName = strings.TrimSpace(input.FirstName)
	normalized.LastName = strings.TrimSpace(input.LastName)

	if err := srv.validate.Struct(&normalized); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(util.DescribeValidationErrors(err))
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", normalized.Email))

	hash, err := srv.hasher.Hash(normalized.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        normalized.Email,
		FirstName:    normalized.FirstName,
		LastName:     normalized.LastName,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := newDuplicateChecker(userRepo).CountByEmail(ctx, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check duplicate email")
		}
		if count > 0 {
			return domainerrors.ErrDuplicatedUser.WrapMessage("email already registered")
		}

		if err := userRepo.Save(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicatedUser) {
			srv.log(ctx).Info("Sign-up rejected, duplicated user", slog.String("email", user.Email))
		} else {
			srv.log(ctx).Error("Sign-up failed", slog.String("email", user.Email), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("user_id", user.ID))

	return &usecase.SignUpOutput{User: user.WithoutCredentials()}, nil
}

// Authenticate checks an email/password pair against the stored hash.
// When several users share the email, the earliest one is used.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credentials are required")
	}

	email := entity.NormalizeEmail(input.Email)

	users, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to look up user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if len(users) == 0 {
		srv.log(ctx).Debug("Authentication failed, unknown email", slog.String("email", email))

		return nil, nil
	}

	user := users[0]
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Authentication failed, password mismatch", slog.Any("user_id", user.ID))

		return nil, nil
	}

	return user.WithoutCredentials(), nil
}

// GetProfile loads a user by ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.WithoutCredentials(), nil
}
