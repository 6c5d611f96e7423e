package errors_test

import (
	"fmt"
	"testing"

	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	base := errors.New("redis down")

	wrapped := errors.Wrap(base, "failed to revoke token")

	assert.EqualError(t, wrapped, "failed to revoke token: redis down")
	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "ignored"))
	assert.NoError(t, errors.WithStack(nil))
}

func TestWithStack_KeepsMessage(t *testing.T) {
	base := errors.New("boom")

	err := errors.WithStack(base)

	assert.EqualError(t, err, "boom")
	assert.True(t, errors.Is(err, base))
}

func TestIsAndAs_DomainErrorsThroughWrapping(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrUnauthorized.WrapMessage("token has been revoked"), "authenticate")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), appErr.ErrorCode())
}
