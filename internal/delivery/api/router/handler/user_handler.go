package handler

import (
	"net/http"

	apimiddleware "authgate/internal/delivery/api/middleware"
	"authgate/internal/delivery/api/response"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the authenticated caller's own account.
type UserHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
}

// ProfileResponse is the body of GET /users/me.
type ProfileResponse struct {
	User     *entity.User `json:"user"`
	SignedIn bool         `json:"signedIn"`
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(users usecase.UserUsecase, sessions usecase.SessionUsecase) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

// Me returns the profile of the token's subject.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := apimiddleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	ctx := c.Request().Context()
	user, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	signedIn, err := h.sessions.IsSignedIn(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ProfileResponse{User: user, SignedIn: signedIn})
}
