package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// verificationCodeLength is the number of decimal digits in a delivery
// verification code.
const verificationCodeLength = 6

// newVerificationCode generates the short one-time code the customer reads
// out at delivery. Drawn from crypto/rand; leading zeros are preserved.
func newVerificationCode() (string, error) {
	limit := big.NewInt(1)
	for range verificationCodeLength {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}

	return fmt.Sprintf("%0*d", verificationCodeLength, n), nil
}
