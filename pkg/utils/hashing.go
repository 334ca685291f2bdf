package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a pre-computed bcrypt hash compared against when a login email
// isn't found, so response time stays constant and emails can't be enumerated.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), 10)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// CompareDummy burns a bcrypt comparison against a throwaway hash.
func CompareDummy(plainPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainPassword))
}
