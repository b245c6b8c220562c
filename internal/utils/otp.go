package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode returns a zero-padded numeric code of the given length
// from a CSPRNG.
func GenerateOTPCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid OTP length: %d", length)
	}

	max := big.NewInt(10)
	code := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP digit: %w", err)
		}
		code = append(code, byte('0'+n.Int64()))
	}

	return string(code), nil
}
