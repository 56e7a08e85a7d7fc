package service

import (
	"errors"

	"github.com/Luismorlan/land_in_go/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{model.ErrUserNotFound, codes.NotFound},
	{model.ErrDuplicateUserId, codes.AlreadyExists},
	{model.ErrOwnershipViolation, codes.PermissionDenied},
	{model.ErrAuthorizationFailed, codes.Unauthenticated},
	{model.ErrMerkleVerificationFailed, codes.Aborted},
	{model.ErrInvalidHeader, codes.FailedPrecondition},
}

// ToStatus converts a ledger error into a gRPC status error. Unknown errors become Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return status.Error(ec.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// A remoteError keeps the server's message while unwrapping to the model error.
type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string {
	return e.msg
}

func (e *remoteError) Unwrap() error {
	return e.sentinel
}

// FromStatus is the reverse of ToStatus. Errors without a matching code are returned as is.
func FromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return err
	}
	for _, ec := range errorCodes {
		if st.Code() == ec.code {
			return &remoteError{sentinel: ec.err, msg: st.Message()}
		}
	}
	return err
}
