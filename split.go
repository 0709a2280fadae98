package penny

import (
	"fmt"
	"math/big"
)

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed one cent at a time among the first
// parts of the slice: 1.00 split 3 ways is [0.34 0.33 0.33].
// The result is the same as [Money.Allocate] with equal weights 1/parts.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive: %w", ErrInvalidArgument)
	}

	// Quotient and remainder, T-division
	total := m.BigMinorUnits()
	quo, rem := new(big.Int).QuoRem(total, big.NewInt(int64(parts)), new(big.Int))
	ulp := big.NewInt(int64(rem.Sign()))

	res := make([]Money, parts)
	for i := 0; i < parts; i++ {
		units := new(big.Int).Set(quo)
		// Remainder distribution
		if rem.Sign() != 0 {
			rem.Sub(rem, ulp)
			units.Add(units, ulp)
		}
		res[i] = newMoneyFromMinorUnits(units)
	}
	return res, nil
}

// Fraction returns the amount that, increased by the given rate, gives the
// original amount, rounded to cents: amount / (1 + rate).
// For example, 2.50 with a rate of 0.15 is 2.17.
// This is useful to remove a tax or a fee that is already included in
// a price.
// The division is exact before rounding.
//
// Fraction returns an error if:
//   - the rate is nil, an amount, or cannot be converted to a fraction;
//   - the rate is negative.
func (m Money) Fraction(rate Operand) (Money, error) {
	r, err := m.fraction(rate)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / (1 + %v)]: %w", m, rate, err)
	}
	return r, nil
}

func (m Money) fraction(rate Operand) (Money, error) {
	if _, ok := rate.(Money); ok {
		return Money{}, fmt.Errorf("rate is an amount: %w", ErrIncompatibleOperand)
	}
	r, err := toRat(rate)
	if err != nil {
		return Money{}, err
	}
	if r.Sign() < 0 {
		return Money{}, fmt.Errorf("rate must not be negative: %w", ErrInvalidArgument)
	}
	r.Add(r, big.NewRat(1, 1))
	q := m.Decimal().Rat()
	q.Quo(q, r)
	return newMoneyFromRat(q), nil
}
