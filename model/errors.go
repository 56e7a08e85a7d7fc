package model

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrDuplicateUserId          = errors.New("user with this id already exists")
	ErrOwnershipViolation       = errors.New("ownership violation: land cannot be sold by someone who doesn't own it")
	ErrAuthorizationFailed      = errors.New("authorization failed")
	ErrMerkleVerificationFailed = errors.New("block verification failed: merkle root mismatch")
	ErrInvalidHeader            = errors.New("invalid block header")
	ErrEmptyValidatorSet        = errors.New("empty validator set")
	ErrInvalidStake             = errors.New("invalid validator stake")
	ErrDuplicateValidator       = errors.New("duplicate validator")
)
