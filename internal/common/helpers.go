package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	EtherDecimals = 18 // 1 ETH = 10^18 wei
)

var (
	errEmptyAmount = errors.New("empty amount")
	errTooPrecise  = fmt.Errorf("too many decimals (max %d)", EtherDecimals)
)

// WeiToEther converts wei to ETH string without float precision loss.
// At least one fractional digit is kept: 0 -> "0.0", 2*10^18 -> "2.0".
func WeiToEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	return formatWithDecimals(wei, EtherDecimals)
}

// EtherToWei converts ETH string to wei without float precision loss
func EtherToWei(ether string) (*big.Int, error) {
	return parseWithDecimals(ether, EtherDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(1500000000000000000, 18) = "1.5"
func formatWithDecimals(value *big.Int, decimals int) string {
	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	s := new(big.Int).Abs(value).String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		frac = "0"
	}
	return sign + whole + "." + frac
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("1.5", 18) = 1500000000000000000
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyAmount
	}

	whole, frac, found := strings.Cut(s, ".")
	if found && strings.Contains(frac, ".") {
		return nil, fmt.Errorf("invalid decimal format")
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid decimal format")
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("invalid decimal %q", s)
	}
	if len(frac) > decimals {
		return nil, errTooPrecise
	}

	// Pad fractional part to exact decimals
	frac += strings.Repeat("0", decimals-len(frac))

	n, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal %q", s)
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CompareEtherAmounts compares two ETH decimal string amounts without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareEtherAmounts(a, b string) (int, error) {
	aVal, err := parseWithDecimals(a, EtherDecimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := parseWithDecimals(b, EtherDecimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	return aVal.Cmp(bVal), nil
}
