package penny

import (
	"fmt"
	"math/big"
)

var ratOne = big.NewRat(1, 1)

// Allocate distributes the amount among parties according to the given
// weights, without losing or creating a single cent.
// Weights are read exactly, see [Float] for how floats are read.
//
// The allocated total is the amount multiplied by the sum of the weights,
// rounded to cents.
// With weights summing up to 1 the whole amount is allocated:
// 1.00 allocated by [1/3 1/3 1/3] is [0.34 0.33 0.33].
// With a smaller sum only a part of the amount is allocated:
// 1.00 allocated by [0.25 0.25] is [0.25 0.25].
//
// Every party first receives its exact share rounded down to a cent.
// The cents left over are then handed out one at a time, in input order,
// to the parties whose exact share was not a whole number of cents.
// Parties with an exact share, a zero weight among them, receive nothing
// extra.
// The sign of the amount is applied to every share.
//
// Allocate returns an error if:
//   - a weight is nil, an amount, or cannot be converted to a fraction;
//   - the sum of the weights is greater than 1.
func (m Money) Allocate(weights ...Operand) ([]Money, error) {
	r, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", m, weights, err)
	}
	return r, nil
}

func (m Money) allocate(weights []Operand) ([]Money, error) {
	ws := make([]*big.Rat, len(weights))
	sum := new(big.Rat)
	for i, w := range weights {
		if _, ok := w.(Money); ok {
			return nil, fmt.Errorf("weight %v is an amount: %w", i, ErrIncompatibleOperand)
		}
		r, err := toRat(w)
		if err != nil {
			return nil, fmt.Errorf("weight %v: %w", i, err)
		}
		ws[i] = r
		sum.Add(sum, r)
	}
	if sum.Cmp(ratOne) > 0 {
		return nil, fmt.Errorf("weights sum up to %v, more than 1: %w", sum.RatString(), ErrInvalidArgument)
	}
	units := allocateUnits(m.BigMinorUnits(), ws)
	res := make([]Money, len(units))
	for i, u := range units {
		res[i] = newMoneyFromMinorUnits(u)
	}
	return res, nil
}

// allocateUnits distributes total minor units by weights.
// The result sums up to total multiplied by the sum of the weights,
// rounded half away from zero.
func allocateUnits(total *big.Int, weights []*big.Rat) []*big.Int {
	t := new(big.Rat).SetInt(new(big.Int).Abs(total))
	res := make([]*big.Int, len(weights))
	exact := new(big.Rat)
	placed := new(big.Int)
	inexact := make([]int, 0, len(weights))

	// Floor of every share
	for i, w := range weights {
		share := new(big.Rat).Mul(t, w)
		exact.Add(exact, share)
		res[i] = floorRat(share)
		placed.Add(placed, res[i])
		if !share.IsInt() {
			inexact = append(inexact, i)
		}
	}

	// Leftover distribution
	left := roundRat(exact, 0).BigInt()
	left.Sub(left, placed)
	for i := 0; left.Sign() > 0 && len(inexact) > 0; i++ {
		j := inexact[i%len(inexact)]
		res[j].Add(res[j], bigOne)
		left.Sub(left, bigOne)
	}

	if total.Sign() < 0 {
		for _, u := range res {
			u.Neg(u)
		}
	}
	return res
}

// AllocateMaxAmounts distributes the amount among parties in proportion to
// their maximum amounts, never giving a party more than its maximum.
// The whole amount is allocated when it does not exceed the sum of the
// maxima: 30.75 allocated with maxima [26.00 4.75] is [26.00 4.75].
// Otherwise every party receives exactly its maximum and the rest of the
// amount is not allocated: 10.00 with maxima [1.00 2.00] is [1.00 2.00].
// If all maxima are zero, every party receives 0.00.
//
// Shares are first computed as in [Money.Allocate] with weights
// max / sum(maxima) and capped at the maxima.
// The cents freed by capping are then handed out one at a time, in input
// order, to the parties still below their maximum.
// For a negative amount shares are negative and never reach a maximum.
//
// AllocateMaxAmounts returns an error if a maximum is negative.
func (m Money) AllocateMaxAmounts(maxima ...Money) ([]Money, error) {
	r, err := m.allocateMaxAmounts(maxima)
	if err != nil {
		return nil, fmt.Errorf("allocating %v with maxima %v: %w", m, maxima, err)
	}
	return r, nil
}

func (m Money) allocateMaxAmounts(maxima []Money) ([]Money, error) {
	caps := make([]*big.Int, len(maxima))
	sum := new(big.Int)
	for i, c := range maxima {
		if c.IsNeg() {
			return nil, fmt.Errorf("maximum %v is negative: %w", i, ErrInvalidArgument)
		}
		caps[i] = c.BigMinorUnits()
		sum.Add(sum, caps[i])
	}

	res := make([]Money, len(maxima))
	if sum.Sign() == 0 {
		return res, nil
	}

	ws := make([]*big.Rat, len(caps))
	for i, c := range caps {
		ws[i] = new(big.Rat).SetFrac(c, sum)
	}
	total := m.BigMinorUnits()
	units := allocateUnits(total, ws)

	// Capping
	left := new(big.Int).Set(total)
	for i, u := range units {
		if u.Cmp(caps[i]) > 0 {
			u.Set(caps[i])
		}
		left.Sub(left, u)
	}

	// Leftover distribution
	for left.Sign() > 0 {
		placed := false
		for i, u := range units {
			if left.Sign() == 0 {
				break
			}
			if u.Cmp(caps[i]) < 0 {
				u.Add(u, bigOne)
				left.Sub(left, bigOne)
				placed = true
			}
		}
		if !placed {
			break
		}
	}

	for i, u := range units {
		res[i] = newMoneyFromMinorUnits(u)
	}
	return res, nil
}
