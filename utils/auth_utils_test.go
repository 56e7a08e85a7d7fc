package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedChallengeRandom() *mockRandom {
	rnd := &mockRandom{}
	// Every character is ALPHANUMERIC[0] and the bit is 1.
	rnd.On("Intn", len(ALPHANUMERIC)).Return(0)
	rnd.On("Intn", 2).Return(1)
	return rnd
}

func TestNewChallenge(t *testing.T) {
	a := NewAuthorizer(fixedChallengeRandom(), 16)
	c, err := a.NewChallenge()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 16)+"1", c)

	// Same draw again is a replay.
	_, err = a.NewChallenge()
	assert.True(t, errors.Is(err, model.ErrAuthorizationFailed))
}

func TestAuthorizeDeterministicToken(t *testing.T) {
	a := NewAuthorizer(fixedChallengeRandom(), 16)
	token, err := a.Authorize("pw2", "pw2")
	require.NoError(t, err)

	challenge := strings.Repeat("a", 16) + "1"
	assert.Equal(t, BytesToHex(HMACSHA256([]byte("pw2"), []byte(challenge))), token)
}

func TestAuthorizeWrongSecret(t *testing.T) {
	a := NewAuthorizer(NewSeededRandom(1), 16)
	token, err := a.Authorize("wrong", "pw2")
	assert.True(t, errors.Is(err, model.ErrAuthorizationFailed))
	assert.Empty(t, token)
}

func TestAuthorizeTokensAreSingleUse(t *testing.T) {
	a := NewAuthorizer(NewSeededRandom(1), 16)
	t1, err := a.Authorize("pw2", "pw2")
	require.NoError(t, err)
	t2, err := a.Authorize("pw2", "pw2")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
	// One spent challenge per authorization.
	assert.Len(t, a.used, 2)

	// A replayed challenge cannot produce a token even with the right secret.
	replay := NewAuthorizer(fixedChallengeRandom(), 16)
	_, err = replay.Authorize("pw2", "pw2")
	require.NoError(t, err)
	_, err = replay.Authorize("pw2", "pw2")
	assert.True(t, errors.Is(err, model.ErrAuthorizationFailed))
}
