package penny

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// ratGuardDigits is the number of digits kept beyond the scale of money
// when a fraction is approximated by a decimal.
const ratGuardDigits = 16

// maxExponent is the largest absolute exponent accepted by [NewDecimal] and
// by the exponent notation of [ParseDecimal].
const maxExponent = 1000

// Decimal type represents an exact decimal number with an unbounded number
// of integer and fractional digits.
// Its zero value corresponds to 0.
// Decimal is designed to be safe for concurrent use by multiple goroutines.
type Decimal struct {
	value decimal.Decimal
}

func newDecimal(d decimal.Decimal) Decimal {
	return Decimal{value: d}
}

// NewDecimal returns a decimal equal to coef / 10^scale.
// A negative scale multiplies the coefficient by 10^(-scale).
//
// NewDecimal returns an error if the absolute value of the scale is greater
// than 1000.
func NewDecimal(coef int64, scale int) (Decimal, error) {
	if scale < -maxExponent || scale > maxExponent {
		return Decimal{}, fmt.Errorf("creating decimal %v / 10^%v: scale out of range: %w", coef, scale, ErrInvalidArgument)
	}
	return newDecimal(decimal.New(coef, int32(-scale))), nil //nolint:gosec // |scale| <= maxExponent
}

// MustNewDecimal is like [NewDecimal] but panics if the decimal cannot be
// constructed.
func MustNewDecimal(coef int64, scale int) Decimal {
	d, err := NewDecimal(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewDecimal(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewDecimalFromInt64 converts an integer to a decimal.
func NewDecimalFromInt64(i int64) Decimal {
	return newDecimal(decimal.NewFromInt(i))
}

// NewDecimalFromFloat64 converts a float to a decimal.
// The conversion goes through the shortest decimal text that represents
// the float exactly, so 0.1 becomes 0.1 and not 0.1000000000000000055...
//
// NewDecimalFromFloat64 returns an error if the float is NaN or an infinity.
func NewDecimalFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting float: %w", err)
	}
	return newDecimal(d), nil
}

// NewDecimalFromRat converts a fraction to a (possibly rounded) decimal.
// The result carries 18 digits after the decimal point, enough to round
// any realistic amount correctly to cents.
//
// NewDecimalFromRat returns an error if the fraction is nil.
func NewDecimalFromRat(r *big.Rat) (Decimal, error) {
	if r == nil {
		return Decimal{}, fmt.Errorf("converting fraction: %w", ErrInvalidAmount)
	}
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return newDecimal(num.DivRound(den, scaleMoney+ratGuardDigits)), nil
}

// ParseDecimal converts a string to a decimal.
// The string may use scientific notation, for example "1.5e3".
//
// ParseDecimal returns an error if the exponent is greater than 1000 or
// smaller than -1000, unless the digits are written out in full.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing decimal %q: %w: %w", s, ErrParse, err)
	}
	if exp := int(d.Exponent()); exp > maxExponent || exp < -max(maxExponent, len(s)) {
		return Decimal{}, fmt.Errorf("parsing decimal %q: exponent out of range: %w", s, ErrParse)
	}
	return newDecimal(d), nil
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	if exp := d.value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns true if d = 0.
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.value.IsNegative()
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.value.IsPositive()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(d.value.Neg())
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return newDecimal(d.value.Abs())
}

// Trunc returns a decimal truncated to the specified number of digits after
// the decimal point using rounding toward zero.
func (d Decimal) Trunc(scale int) Decimal {
	scale = max(scale, 0)
	if scale >= d.Scale() {
		return d
	}
	return newDecimal(d.value.Truncate(int32(scale))) //nolint:gosec // scale < d.Scale()
}

// Rat returns the exact value of the decimal as a fraction.
func (d Decimal) Rat() *big.Rat {
	return d.value.Rat()
}

// Add returns the exact sum of decimal d and operand e.
//
// Add returns an error if the operand is nil or cannot be converted to a decimal.
func (d Decimal) Add(e Operand) (Decimal, error) {
	f, err := toDecimal(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return newDecimal(d.value.Add(f.value)), nil
}

// Sub returns the exact difference between decimal d and operand e.
//
// Sub returns an error if the operand is nil or cannot be converted to a decimal.
func (d Decimal) Sub(e Operand) (Decimal, error) {
	f, err := toDecimal(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return newDecimal(d.value.Sub(f.value)), nil
}

// Mul returns the product of decimal d and operand e.
// The product is exact unless e is a [Ratio] without a finite decimal
// expansion, see [NewDecimalFromRat].
//
// Mul returns an error if the operand is nil or cannot be converted to a decimal.
func (d Decimal) Mul(e Operand) (Decimal, error) {
	f, err := toDecimal(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return newDecimal(d.value.Mul(f.value)), nil
}

// Cmp compares decimal d and operand e and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Cmp returns an error if the operand is nil or cannot be converted to a decimal.
func (d Decimal) Cmp(e Operand) (int, error) {
	f, err := toDecimal(e)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", d, e, err)
	}
	return d.value.Cmp(f.value), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the decimal without trailing zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.value.String()
}
