package utils

import (
	"crypto"
	"crypto/hmac"
	"crypto/sha256"
)

// Hash message using SHA256
func SHA256(msg []byte) []byte {
	newhash := crypto.SHA256
	pssh := newhash.New()
	pssh.Write(msg)
	return pssh.Sum(nil)
}

// SHA256Hex is SHA256 in the hex string format.
func SHA256Hex(msg []byte) string {
	return BytesToHex(SHA256(msg))
}

// HMACSHA256 computes the keyed digest of msg using key as the secret.
func HMACSHA256(key []byte, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
