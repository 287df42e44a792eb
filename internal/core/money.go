// Package core holds the expense ledger: balance, categories, per-label
// expense totals and the budget rules that tie them together.
//
// This file contains parsing of user-entered amounts.
package core

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedAmount is returned when text does not parse as a whole number.
var ErrMalformedAmount = errors.New("amount is not a whole number")

// ParseAmount converts user input to an Amount.
//
// Surrounding whitespace and a leading sign are accepted. The sign is kept, so
// "-5" parses to -5 and it is left to the ledger to reject it as an invalid
// amount. Anything that is not an integer returns ErrMalformedAmount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	return Amount(v), nil
}
