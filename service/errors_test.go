package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	assert.Nil(t, ToStatus(nil))

	tests := []struct {
		err  error
		code codes.Code
	}{
		{model.ErrUserNotFound, codes.NotFound},
		{model.ErrDuplicateUserId, codes.AlreadyExists},
		{model.ErrOwnershipViolation, codes.PermissionDenied},
		{model.ErrAuthorizationFailed, codes.Unauthenticated},
		{model.ErrMerkleVerificationFailed, codes.Aborted},
		{model.ErrInvalidHeader, codes.FailedPrecondition},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		wrapped := fmt.Errorf("%w: some detail", tt.err)
		st := ToStatus(wrapped)
		assert.Equal(t, tt.code, status.Code(st))
		assert.Equal(t, wrapped.Error(), status.Convert(st).Message())
	}

	// Already a status error.
	invalid := status.Error(codes.InvalidArgument, "missing field land_id")
	assert.Equal(t, invalid, ToStatus(invalid))
}

func TestFromStatus(t *testing.T) {
	wrapped := fmt.Errorf("%w: seller B", model.ErrUserNotFound)
	err := FromStatus(ToStatus(wrapped))
	assert.True(t, errors.Is(err, model.ErrUserNotFound))
	assert.Equal(t, wrapped.Error(), err.Error())

	err = FromStatus(ToStatus(model.ErrOwnershipViolation))
	assert.True(t, errors.Is(err, model.ErrOwnershipViolation))
	assert.False(t, errors.Is(err, model.ErrUserNotFound))

	unavailable := status.Error(codes.Unavailable, "connection refused")
	assert.Equal(t, unavailable, FromStatus(unavailable))

	plain := errors.New("plain")
	assert.Equal(t, plain, FromStatus(plain))
}
