// Package catalog holds the product rules that depend on store state or time:
// sequential code numbers and the active window.
package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Additional-Code/storehouse/internal/entity"
)

const (
	// CodePrefix starts every product code number.
	CodePrefix = "PRO-"
	// FirstCodeNumber is assigned when no product exists yet.
	FirstCodeNumber = CodePrefix + "0001"
)

// ErrMalformedCode is returned when the latest product's code has no numeric suffix.
var ErrMalformedCode = errors.New("malformed product code number")

// NextCodeNumber derives the code for the next product from the product with the
// highest id, or FirstCodeNumber when latest is nil. The suffix is zero padded to
// four digits and widens past PRO-9999.
//
// The result is only a proposal: two concurrent creates can compute the same
// code, and the unique constraint on the column rejects the second insert.
func NextCodeNumber(latest *entity.Product) (string, error) {
	if latest == nil {
		return FirstCodeNumber, nil
	}

	code := latest.CodeNumber
	if len(code) <= len(CodePrefix) {
		return "", fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}

	seq, err := strconv.ParseUint(code[len(CodePrefix):], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}

	return fmt.Sprintf("%s%04d", CodePrefix, seq+1), nil
}
