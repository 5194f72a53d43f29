package service

import (
	"errors"
)

const maxCodeAttempts = 10

// generateUniqueCode draws codes until one is unused. Bails out after a
// bounded number of attempts so a saturated code space can't spin forever.
func generateUniqueCode(gen func() string, exists func(string) (bool, error)) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := gen()
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique code")
}
