// Package utils provides password hashing and access-token helpers.
package utils

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt hash compared against when a login names an
// unknown user, so that the miss costs the same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyDummy burns a bcrypt comparison against a fixed hash. Callers invoke
// it on the user-not-found path before answering with the same invalid
// credentials outcome as a password mismatch.
func VerifyDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
