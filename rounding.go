package penny

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// scaleMoney is the number of digits after the decimal point kept by [Money].
const scaleMoney = 2

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Round returns a decimal rounded to the specified number of digits after
// the decimal point using [rounding half away from zero].
// The whole remainder is taken into account, so 54.1754 rounds to 54.18
// and 27.25 rounds to 27.3.
// If the scale is negative, the integer part is rounded to the nearest
// multiple of 10^(-scale).
// Banker's rounding is never used.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (d Decimal) Round(scale int) Decimal {
	return newDecimal(roundDecimal(d.value, scale))
}

// roundDecimal rounds d half away from zero to the given scale.
// Only the digits of d are ever rescaled, so the cost does not depend on
// the scale.
func roundDecimal(d decimal.Decimal, scale int) decimal.Decimal {
	exp := int(d.Exponent())
	if scale >= -exp {
		return d
	}
	// |d| < 10^top, far below half a unit of 10^(-scale).
	if top := exp + d.NumDigits(); -scale > top {
		return decimal.Zero
	}
	return d.Round(int32(scale)) //nolint:gosec // -exp-NumDigits <= scale < -exp
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// roundRat rounds a fraction to the given number of digits after the decimal
// point using rounding half away from zero.
func roundRat(r *big.Rat, scale int) decimal.Decimal {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	if scale >= 0 {
		num.Mul(num, pow10(scale))
	} else {
		den.Mul(den, pow10(-scale))
	}
	q, m := new(big.Int).QuoRem(num, den, new(big.Int))
	m.Abs(m)
	m.Lsh(m, 1)
	if m.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return decimal.NewFromBigInt(q, int32(-scale)) //nolint:gosec
}

// floorRat returns the largest integer not greater than r.
func floorRat(r *big.Rat) *big.Int {
	// Euclidean division by a positive denominator rounds toward -Inf.
	return new(big.Int).Div(r.Num(), r.Denom())
}

// ceilRat returns the smallest integer not less than r.
func ceilRat(r *big.Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return q
}

// ratFromFloat64 returns the simplest fraction within half a unit in the last
// place of f.
// Every fraction in that interval converts back to the same float, so the
// result is the value the float was most likely meant to hold:
// 1.0/12 becomes 1/12 and 0.33 becomes 33/100.
//
// ratFromFloat64 returns an error if the float is NaN or an infinity.
func ratFromFloat64(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	if f < 0 {
		r, err := ratFromFloat64(-f)
		if err != nil {
			return nil, err
		}
		return r.Neg(r), nil
	}
	x := new(big.Rat).SetFloat64(f)
	_, exp := math.Frexp(f)
	if f == 0 || exp >= 53 {
		return x, nil
	}
	// Half a unit in the last place is 2^(exp-54).
	half := new(big.Rat).SetFrac(bigOne, new(big.Int).Lsh(bigOne, uint(54-exp))) //nolint:gosec
	lo := new(big.Rat).Sub(x, half)
	hi := new(big.Rat).Add(x, half)
	return simplestRat(lo, hi), nil
}

// simplestRat returns the fraction with the smallest denominator in the
// interval [a, b], where 0 <= a <= b.
// The search walks the continued fraction expansions of both ends.
func simplestRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return new(big.Rat).Set(a)
	}
	a, b = new(big.Rat).Set(a), new(big.Rat).Set(b)
	p0, p1 := big.NewInt(0), big.NewInt(1)
	q0, q1 := big.NewInt(1), big.NewInt(0)
	for {
		c := ceilRat(a)
		if new(big.Rat).SetInt(c).Cmp(b) < 0 {
			p := new(big.Int).Mul(c, p1)
			p.Add(p, p0)
			q := new(big.Int).Mul(c, q1)
			q.Add(q, q0)
			return new(big.Rat).SetFrac(p, q)
		}
		k := new(big.Int).Sub(c, bigOne)
		p2 := new(big.Int).Mul(k, p1)
		p2.Add(p2, p0)
		q2 := new(big.Int).Mul(k, q1)
		q2.Add(q2, q0)
		kr := new(big.Rat).SetInt(k)
		t := new(big.Rat).Sub(b, kr)
		t.Inv(t)
		b.Sub(a, kr)
		b.Inv(b)
		a = t
		p0, p1 = p1, p2
		q0, q1 = q1, q2
	}
}
