package utils

import (
	"crypto/hmac"
	"fmt"
	"strconv"
	"sync"

	"github.com/Luismorlan/land_in_go/model"
)

// Authorizer runs the challenge-response exchange that stands in for a signature on a land
// transfer. Both sides are evaluated locally:
// 1. Draw an alphanumeric challenge and a random bit.
// 2. expected = HMAC(provided secret, challenge || bit).
// 3. response = HMAC(stored seller secret, challenge || bit).
// 4. Accept iff expected == response (constant time). response becomes the token.
//
// The response is keyed by the seller's stored secret, not by anything the buyer holds. This
// makes the protocol a symmetric shared-secret check on the seller passphrase.
type Authorizer struct {
	rnd             RandomSource
	challengeLength int
	// Challenges already issued. A challenge is never accepted twice. One entry per authorization
	// for the lifetime of the process, the ledger itself keeps every transfer in memory too.
	used map[string]bool
	m    sync.Mutex
}

func NewAuthorizer(rnd RandomSource, challengeLength int) *Authorizer {
	return &Authorizer{
		rnd:             rnd,
		challengeLength: challengeLength,
		used:            make(map[string]bool),
	}
}

// NewChallenge draws a fresh challenge message: the random string followed by the bit.
func (a *Authorizer) NewChallenge() (string, error) {
	a.m.Lock()
	defer a.m.Unlock()
	challenge := RandomString(a.rnd, a.challengeLength)
	bit := a.rnd.Intn(2)
	msg := challenge + strconv.Itoa(bit)
	if a.used[msg] {
		return "", fmt.Errorf("%w: challenge replayed", model.ErrAuthorizationFailed)
	}
	a.used[msg] = true
	return msg, nil
}

// ComputeResponse is the keyed answer to a challenge message.
func ComputeResponse(secret string, challenge string) []byte {
	return HMACSHA256([]byte(secret), []byte(challenge))
}

// Authorize checks providedSecret against storedSecret under a fresh challenge and returns the
// hex token on success.
func (a *Authorizer) Authorize(providedSecret string, storedSecret string) (string, error) {
	challenge, err := a.NewChallenge()
	if err != nil {
		return "", err
	}
	expected := ComputeResponse(providedSecret, challenge)
	response := ComputeResponse(storedSecret, challenge)
	if !hmac.Equal(expected, response) {
		return "", fmt.Errorf("%w: wrong password", model.ErrAuthorizationFailed)
	}
	return BytesToHex(response), nil
}
