package penny

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Money type represents a monetary amount with exactly 2 digits after
// the decimal point.
// Its zero value corresponds to 0.00.
//
// Money is immutable: every method returns a new value.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Money values are not comparable with the == operator, use [Money.Equal]
// or [Money.Cmp] instead.
type Money struct {
	value decimal.Decimal // monetary value, rounded to cents
}

// newMoney rounds a decimal to cents.
func newMoney(d decimal.Decimal) Money {
	return Money{value: roundDecimal(d, scaleMoney)}
}

// newMoneyFromRat rounds a fraction to cents.
func newMoneyFromRat(r *big.Rat) Money {
	return Money{value: roundRat(r, scaleMoney)}
}

// newMoneyFromMinorUnits converts an integer number of cents to an amount.
func newMoneyFromMinorUnits(units *big.Int) Money {
	return Money{value: decimal.NewFromBigInt(units, -scaleMoney)}
}

// Zero returns an amount equal to 0.00.
// It is the same as the zero value of [Money].
func Zero() Money {
	return Money{}
}

// New returns a (possibly rounded) amount equal to coef / 10^scale.
// See also method [Money.Round] for the rounding rule.
//
// New returns an error if the scale is negative or greater than 1000.
func New(coef int64, scale int) (Money, error) {
	if scale < 0 {
		return Money{}, fmt.Errorf("creating amount %v / 10^%v: negative scale: %w", coef, scale, ErrInvalidArgument)
	}
	d, err := NewDecimal(coef, scale)
	if err != nil {
		return Money{}, fmt.Errorf("creating amount %v / 10^%v: %w", coef, scale, err)
	}
	return NewFromDecimal(d), nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(coef int64, scale int) Money {
	m, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return m
}

// NewFromInt64 converts an integer number of major units to an amount.
func NewFromInt64(i int64) Money {
	return newMoney(decimal.NewFromInt(i))
}

// NewFromFloat64 converts a float to a (possibly rounded) amount.
// The float is read through its shortest decimal text, so 1.125 becomes
// 1.13 and 343.205 becomes 343.21.
// See also method [Money.Float64].
//
// NewFromFloat64 returns an error if the float is NaN or an infinity.
func NewFromFloat64(f float64) (Money, error) {
	d, err := NewDecimalFromFloat64(f)
	if err != nil {
		return Money{}, err
	}
	return NewFromDecimal(d), nil
}

// NewFromRat converts a fraction to a (possibly rounded) amount.
// The fraction is rounded exactly, without an intermediate decimal.
//
// NewFromRat returns an error if the fraction is nil.
func NewFromRat(r *big.Rat) (Money, error) {
	if r == nil {
		return Money{}, fmt.Errorf("converting fraction: %w", ErrInvalidAmount)
	}
	return newMoneyFromRat(r), nil
}

// NewFromDecimal converts a decimal to a (possibly rounded) amount.
// See also method [Money.Decimal].
func NewFromDecimal(d Decimal) Money {
	return newMoney(d.value)
}

// NewFromMinorUnits converts an integer number of minor units (cents)
// to an amount.
// See also method [Money.MinorUnits].
func NewFromMinorUnits(units int64) Money {
	return newMoneyFromMinorUnits(big.NewInt(units))
}

// NewFromMinorUnitsFloat64 converts a number of minor units (cents) to an
// amount.
// The number is first rounded to a whole minor unit, so 1950.5 cents
// becomes 19.51.
//
// NewFromMinorUnitsFloat64 returns an error if the float is NaN or an infinity.
func NewFromMinorUnitsFloat64(units float64) (Money, error) {
	d, err := NewDecimalFromFloat64(units)
	if err != nil {
		return Money{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newMoney(roundDecimal(d.value, 0).Shift(-scaleMoney)), nil
}

// Decimal returns the decimal representation of the amount.
// The result always has 2 digits after the decimal point.
// See also constructor [NewFromDecimal].
func (m Money) Decimal() Decimal {
	return newDecimal(roundDecimal(m.value, scaleMoney))
}

// MinorUnits returns the amount in minor units (cents).
// See also constructor [NewFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (m Money) MinorUnits() (units int64, ok bool) {
	u := m.BigMinorUnits()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// BigMinorUnits returns the amount in minor units (cents).
func (m Money) BigMinorUnits() *big.Int {
	return m.value.Shift(scaleMoney).BigInt()
}

// Int64 returns the integer part of the amount, truncating the fractional
// part toward zero: 1.50 becomes 1 and -1.50 becomes -1.
//
// If the result cannot be represented as an int64, then false is returned.
func (m Money) Int64() (i int64, ok bool) {
	b := m.value.BigInt()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Float64 returns the nearest binary floating-point number.
// The conversion goes through the decimal text of the amount, so 1.50
// becomes exactly the float 1.5.
// See also constructor [NewFromFloat64].
//
// If the amount is too large for a float64, then false is returned.
func (m Money) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(m.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.value.IsNegative()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.value.IsPositive()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return newMoney(m.value.Abs())
}

// Neg returns an amount with the opposite sign.
// The negation of 0.00 is 0.00.
func (m Money) Neg() Money {
	return newMoney(m.value.Neg())
}

// Floor returns the integer part of the amount, dropping the cents and
// keeping the sign: 18.99 becomes 18.00 and -18.99 becomes -18.00.
func (m Money) Floor() Money {
	return newMoney(m.value.Truncate(0))
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using rounding half away from zero, see [Decimal.Round].
// Round(0) rounds to whole units: 54.50 becomes 55.00.
// Scales of 2 and more leave the amount unchanged, scales far below the
// magnitude of the amount give 0.00.
func (m Money) Round(scale int) Money {
	return newMoney(roundDecimal(m.value, min(scale, scaleMoney)))
}

// Add returns the sum of amount m and operand b.
// The operand is converted to money first, see [Add].
func (m Money) Add(b Operand) (Money, error) {
	return Add(m, b)
}

// Sub returns the difference between amount m and operand b.
// The operand is converted to money first, see [Sub].
func (m Money) Sub(b Operand) (Money, error) {
	return Sub(m, b)
}

// Mul returns the (possibly rounded) product of amount m and factor e.
// See [Mul] for the rounding rule.
func (m Money) Mul(e Operand) (Money, error) {
	return Mul(m, e)
}

// Quo always fails with [ErrUnsupportedOperation].
// Dividing an amount is ambiguous: the divisor may be a count of parts,
// a rate, or another amount.
// Use [Money.Split], [Money.Allocate] or [Money.Fraction] instead.
func (m Money) Quo(e Operand) (Money, error) {
	return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, ErrUnsupportedOperation)
}

// Cmp compares amount m and operand b, see [Cmp].
func (m Money) Cmp(b Operand) (int, error) {
	return Cmp(m, b)
}

// Less returns true if m < b.
// The operand is converted to money first.
func (m Money) Less(b Operand) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual returns true if m <= b.
// The operand is converted to money first.
func (m Money) LessOrEqual(b Operand) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater returns true if m > b.
// The operand is converted to money first.
func (m Money) Greater(b Operand) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual returns true if m >= b.
// The operand is converted to money first.
func (m Money) GreaterOrEqual(b Operand) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Equal returns true if amounts are numerically equal.
func (m Money) Equal(b Money) bool {
	return m.value.Equal(b.value)
}

// Hash returns a hash of the amount.
// Equal amounts always have equal hashes.
func (m Money) Hash() uint64 {
	return xxhash.Sum64String(m.String())
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the amount: an optional minus sign, the integer part,
// a decimal point and exactly 2 fractional digits, for example "-1.00".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.value.StringFixed(scaleMoney)
}

// Add returns the sum of operands a and b as an amount.
// Both operands are converted to money first, so Add(m, x) and Add(x, m)
// always agree.
//
// Add returns an error if an operand is nil or cannot be converted to money.
func Add(a, b Operand) (Money, error) {
	c, err := add(a, b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func add(a, b Operand) (Money, error) {
	x, err := toMoney(a)
	if err != nil {
		return Money{}, err
	}
	y, err := toMoney(b)
	if err != nil {
		return Money{}, err
	}
	return newMoney(x.value.Add(y.value)), nil
}

// Sub returns the difference between operands a and b as an amount.
// Both operands are converted to money first, so Sub(Int(2), m) subtracts
// the amount from 2.00.
//
// Sub returns an error if an operand is nil or cannot be converted to money.
func Sub(a, b Operand) (Money, error) {
	c, err := sub(a, b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func sub(a, b Operand) (Money, error) {
	x, err := toMoney(a)
	if err != nil {
		return Money{}, err
	}
	y, err := toMoney(b)
	if err != nil {
		return Money{}, err
	}
	return newMoney(x.value.Sub(y.value)), nil
}

// Mul returns the product of operands a and b rounded to cents using
// rounding half away from zero: 0.03 * 0.5 is 0.02 and 0.10 * 0.33 is 0.03.
// The product is computed exactly before rounding.
// A [Float] factor is read as the simplest fraction that rounds to the same
// float, so 3.30 * (1.0/12) is 0.28, as with the exact 3.30 * 1/12.
//
// Mul returns an error if:
//   - an operand is nil;
//   - both operands are amounts;
//   - a float operand is NaN or an infinity.
func Mul(a, b Operand) (Money, error) {
	c, err := mul(a, b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

func mul(a, b Operand) (Money, error) {
	_, aok := a.(Money)
	_, bok := b.(Money)
	if aok && bok {
		return Money{}, ErrIncompatibleOperand
	}
	x, err := toRat(a)
	if err != nil {
		return Money{}, err
	}
	y, err := toRat(b)
	if err != nil {
		return Money{}, err
	}
	return newMoneyFromRat(x.Mul(x, y)), nil
}

// Cmp compares operands a and b and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Both operands are converted to money first.
//
// Cmp returns an error if an operand is nil or cannot be converted to money.
func Cmp(a, b Operand) (int, error) {
	x, err := toMoney(a)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	y, err := toMoney(b)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	return x.value.Cmp(y.value), nil
}
