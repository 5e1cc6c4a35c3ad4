package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for stored credentials.
var PasswordCost = bcrypt.DefaultCost

// dummyHash is compared against when no user exists so that unknown and
// known emails cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword(prehash("careerportal-dummy"), bcrypt.DefaultCost)

var prehashKey = []byte("careerportal/password")

// prehash folds the password into 44 bytes, under bcrypt's 72 byte input
// limit, so passwords of any length are accepted.
func prehash(password string) []byte {
	mac := hmac.New(sha256.New, prehashKey)
	mac.Write([]byte(password))
	sum := mac.Sum(nil)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}

// HashPassword hashes the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(prehash(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash checks if the password matches the hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

// BurnPasswordCheck performs a comparison whose result is discarded.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, prehash(password))
}
