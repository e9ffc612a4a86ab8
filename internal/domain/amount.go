package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
)

var amountRegex = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// ValidateAmount checks that an amount is a canonical non-negative integer string
// in the token's smallest unit and that it fits in 256 bits.
func ValidateAmount(amount string) error {
	if !amountRegex.MatchString(amount) {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if _, err := uint256.FromDecimal(amount); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAmount, amount, err)
	}
	return nil
}

// FormatUnits renders a smallest-unit amount as a decimal display string,
// e.g. FormatUnits("1500000", 6) == "1.5".
func FormatUnits(amount string, decimals uint8) (string, error) {
	if err := ValidateAmount(amount); err != nil {
		return "", err
	}
	if decimals == 0 {
		return amount, nil
	}

	d := int(decimals)
	if len(amount) <= d {
		amount = strings.Repeat("0", d-len(amount)+1) + amount
	}
	whole := amount[:len(amount)-d]
	frac := strings.TrimRight(amount[len(amount)-d:], "0")
	if frac == "" {
		return whole, nil
	}
	return whole + "." + frac, nil
}

// ParseUnits converts a decimal display string into a smallest-unit amount,
// e.g. ParseUnits("1.5", 6) == "1500000". More fractional digits than
// decimals is an error; nothing is rounded.
func ParseUnits(display string, decimals uint8) (string, error) {
	display = strings.TrimSpace(display)
	whole, frac, hasFrac := strings.Cut(display, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && frac == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if len(frac) > int(decimals) {
		return "", fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, display, decimals)
	}

	digits := strings.TrimLeft(whole+frac+strings.Repeat("0", int(decimals)-len(frac)), "0")
	if digits == "" {
		digits = "0"
	}

	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidAmount, display, err)
	}
	return v.Dec(), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
