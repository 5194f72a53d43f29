package utils

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const digits = "0123456789"

var randSource = rand.NewSource(time.Now().UnixNano())
var randGenerator = rand.New(randSource)

// GenerateRandomString produces an alphanumeric code (referral codes).
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[randGenerator.Intn(len(charset))]
	}
	return string(b)
}

// GenerateNumericCode produces a short digit-only code (team join codes).
func GenerateNumericCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = digits[randGenerator.Intn(len(digits))]
	}
	return string(b)
}
