package handler

import (
	"log/slog"
	"net/http"

	"authgate/internal/delivery/api/response"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthenticationHandler serves sign-up, login and logout.
type AuthenticationHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// AuthenticationHandlerParams holds dependencies for AuthenticationHandler, injected by Fx.
type AuthenticationHandlerParams struct {
	fx.In

	UserUsecase    usecase.UserUsecase
	SessionUsecase usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewAuthenticationHandler is the constructor for AuthenticationHandler.
func NewAuthenticationHandler(params AuthenticationHandlerParams) *AuthenticationHandler {
	return &AuthenticationHandler{
		users:    params.UserUsecase,
		sessions: params.SessionUsecase,
		logger:   params.Logger,
	}
}

// SignUp handles the user registration request.
func (h *AuthenticationHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	output, err := h.users.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login exchanges email and password for a bearer access token.
func (h *AuthenticationHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.sessions.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout revokes the bearer token used for this request.
func (h *AuthenticationHandler) Logout(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	err := h.sessions.Logout(c.Request().Context(), &usecase.LogoutInput{
		UserID:    identity.UserID,
		TokenID:   identity.TokenID,
		ExpiresAt: identity.ExpiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
