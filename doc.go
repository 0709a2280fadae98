/*
Package penny implements immutable monetary amounts with exactly 2 digits
after the decimal point, and splits and allocates them across parties
without ever losing or creating a cent.

# Features

  - Immutable amounts, safe for concurrent use by multiple goroutines
  - Exact arithmetic with integers, floats, fractions and decimals
  - Rounding half away from zero, never banker's rounding
  - Leak-free allocation by weights, by maximum amounts, and equal splits
  - Pluggable parsers for plain and accounting notations
  - JSON, text, binary, BSON and SQL encodings

# Representation

An amount is represented by the [Money] type, which holds an
arbitrary-precision decimal rounded to cents.
There is no currency: all amounts share one implicit unit.
The zero value of [Money] is 0.00 and amounts are never negative zero.

The [Decimal] type is an exact decimal number without a fixed scale.
It is used as an intermediate value and as an operand.

# Operands

Arithmetic and comparison accept any [Operand]: [Money], [Decimal], [Int],
[Float] or [Ratio].
The package functions [Add], [Sub], [Mul] and [Cmp] accept operands in
either position, so that Add(m, Int(1)) and Add(Int(1), m) agree.

Products are computed exactly and then rounded to cents.
A [Float] factor is read as the simplest fraction that rounds to the same
float, so multiplying by 1.0/12 gives the same result as multiplying by
the exact fraction 1/12.

Division of an amount is ambiguous and is not supported, see [Money.Quo].
Use [Money.Split], [Money.Allocate], [Money.AllocateMaxAmounts] or
[Money.Fraction] instead.

# Allocation

[Money.Split] divides an amount into equal parts.
[Money.Allocate] divides an amount by weights that sum up to at most 1.
[Money.AllocateMaxAmounts] divides an amount in proportion to maximum amounts
and never exceeds them.
In all cases the cents that cannot be divided evenly go to the parties
that come first, so results are deterministic and sum up exactly.

# Parsing

Text is converted to amounts by a [Parser].
[Parse] uses the strict [NumericParser]; pass another parser, such as
[AccountingParser], to [ParseWith].
Parsers are values, not global state, so each caller chooses its own.

# Errors

Operations return errors wrapping one of the sentinel errors, such as
[ErrIncompatibleOperand] or [ErrInvalidArgument], which can be tested with
[errors.Is].
Functions with the Must prefix panic instead.
*/
package penny
