package penny

import (
	"fmt"
	"math/big"

	fixed "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// NewFromFixed converts a fixed-precision decimal from package
// [github.com/govalues/decimal] to a (possibly rounded) amount.
// See also method [Money.Fixed].
func NewFromFixed(d fixed.Decimal) Money {
	return NewFromDecimal(NewDecimalFromFixed(d))
}

// NewDecimalFromFixed converts a fixed-precision decimal from package
// [github.com/govalues/decimal] to a decimal.
// The conversion is exact.
func NewDecimalFromFixed(d fixed.Decimal) Decimal {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return newDecimal(decimal.NewFromBigInt(coef, int32(-d.Scale()))) //nolint:gosec
}

// Fixed returns the amount as a fixed-precision decimal from package
// [github.com/govalues/decimal] with exactly 2 digits after the decimal point.
// See also constructor [NewFromFixed].
//
// Fixed returns an error if the amount in minor units does not fit
// into an int64.
func (m Money) Fixed() (fixed.Decimal, error) {
	units, ok := m.MinorUnits()
	if !ok {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed decimal: %w", m, ErrInvalidAmount)
	}
	d, err := fixed.New(units, scaleMoney)
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed decimal: %w: %w", m, ErrInvalidAmount, err)
	}
	return d, nil
}

// Fixed returns the decimal as a fixed-precision decimal from package
// [github.com/govalues/decimal].
// Fractional digits that do not fit into 19 digits are rounded.
//
// Fixed returns an error if the integer part has more than 19 digits.
func (d Decimal) Fixed() (fixed.Decimal, error) {
	f, err := fixed.Parse(d.String())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed decimal: %w: %w", d, ErrInvalidAmount, err)
	}
	return f, nil
}
