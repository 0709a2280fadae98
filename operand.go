package penny

import (
	"fmt"
	"math/big"
	"strings"
)

// Operand is a value that can take part in arithmetic and comparisons with
// [Money] and [Decimal].
// The set of operands is closed: it is implemented only by [Money], [Decimal],
// [Int], [Float] and [Ratio].
// Any operand may appear on either side of an operation, see [Add], [Sub],
// [Mul] and [Cmp].
type Operand interface {
	// ToMoney converts the operand to a (possibly rounded) amount.
	ToMoney() (Money, error)
	// ToDecimal converts the operand to a (possibly rounded) decimal.
	ToDecimal() (Decimal, error)
	// exactRat returns the exact value of the operand when used as a factor
	// or a weight.
	exactRat() (*big.Rat, error)
}

var (
	_ Operand = Money{}
	_ Operand = Decimal{}
	_ Operand = Int(0)
	_ Operand = Float(0)
	_ Operand = Ratio{}
)

// Int is an integer operand.
type Int int64

// ToMoney implements the [Operand] interface.
func (i Int) ToMoney() (Money, error) {
	return NewFromInt64(int64(i)), nil
}

// ToDecimal implements the [Operand] interface.
func (i Int) ToDecimal() (Decimal, error) {
	return NewDecimalFromInt64(int64(i)), nil
}

func (i Int) exactRat() (*big.Rat, error) {
	return new(big.Rat).SetInt64(int64(i)), nil
}

// Float is a binary floating-point operand.
// It is converted to a decimal through its shortest decimal text, so
// Float(1.5) is exactly 1.5.
// When used as a factor or a weight, it is read as the simplest fraction
// that rounds to the same float, so Float(1.0/12) is exactly 1/12.
type Float float64

// ToMoney implements the [Operand] interface.
// It returns an error if the float is NaN or an infinity.
func (f Float) ToMoney() (Money, error) {
	return NewFromFloat64(float64(f))
}

// ToDecimal implements the [Operand] interface.
// It returns an error if the float is NaN or an infinity.
func (f Float) ToDecimal() (Decimal, error) {
	return NewDecimalFromFloat64(float64(f))
}

func (f Float) exactRat() (*big.Rat, error) {
	return ratFromFloat64(float64(f))
}

// Ratio is an arbitrary-precision fraction operand.
// Its zero value corresponds to 0.
type Ratio struct {
	r *big.Rat
}

// NewRatio returns a ratio equal to num / den.
//
// NewRatio returns an error if the denominator is 0.
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("creating ratio %v/%v: zero denominator: %w", num, den, ErrInvalidArgument)
	}
	return Ratio{r: big.NewRat(num, den)}, nil
}

// MustNewRatio is like [NewRatio] but panics if the denominator is 0.
func MustNewRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatio(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewRatioFromRat returns a ratio holding a copy of r.
// A nil r corresponds to 0.
func NewRatioFromRat(r *big.Rat) Ratio {
	if r == nil {
		return Ratio{}
	}
	return Ratio{r: new(big.Rat).Set(r)}
}

// ParseRatio converts a string such as "1/3", "0.25" or "-2" to a ratio.
// Strings without a slash follow the rules of [ParseDecimal].
func ParseRatio(s string) (Ratio, error) {
	if !strings.Contains(s, "/") {
		d, err := ParseDecimal(s)
		if err != nil {
			return Ratio{}, fmt.Errorf("parsing ratio %q: %w", s, err)
		}
		return Ratio{r: d.Rat()}, nil
	}
	// Both sides of a slash are plain integers.
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Ratio{}, fmt.Errorf("parsing ratio %q: %w", s, ErrParse)
	}
	return Ratio{r: r}, nil
}

// Rat returns a copy of the fraction held by the ratio.
func (r Ratio) Rat() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r.r)
}

// String implements the [fmt.Stringer] interface and returns the ratio
// in the form "num/den".
func (r Ratio) String() string {
	return r.Rat().String()
}

// ToMoney implements the [Operand] interface.
func (r Ratio) ToMoney() (Money, error) {
	return NewFromRat(r.Rat())
}

// ToDecimal implements the [Operand] interface.
func (r Ratio) ToDecimal() (Decimal, error) {
	return NewDecimalFromRat(r.Rat())
}

func (r Ratio) exactRat() (*big.Rat, error) {
	return r.Rat(), nil
}

// ToMoney implements the [Operand] interface and rounds the decimal to cents.
func (d Decimal) ToMoney() (Money, error) {
	return NewFromDecimal(d), nil
}

// ToDecimal implements the [Operand] interface.
func (d Decimal) ToDecimal() (Decimal, error) {
	return d, nil
}

func (d Decimal) exactRat() (*big.Rat, error) {
	return d.Rat(), nil
}

// ToMoney implements the [Operand] interface and returns the amount itself.
func (m Money) ToMoney() (Money, error) {
	return m, nil
}

// ToDecimal implements the [Operand] interface.
// See also method [Money.Decimal].
func (m Money) ToDecimal() (Decimal, error) {
	return m.Decimal(), nil
}

func (m Money) exactRat() (*big.Rat, error) {
	return m.Decimal().Rat(), nil
}

func toDecimal(e Operand) (Decimal, error) {
	if e == nil {
		return Decimal{}, ErrIncompatibleOperand
	}
	return e.ToDecimal()
}

func toMoney(e Operand) (Money, error) {
	if e == nil {
		return Money{}, ErrIncompatibleOperand
	}
	return e.ToMoney()
}

func toRat(e Operand) (*big.Rat, error) {
	if e == nil {
		return nil, ErrIncompatibleOperand
	}
	return e.exactRat()
}
