package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/penny"
	"github.com/spf13/cobra"
)

func splitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split AMOUNT PARTS",
		Short: "Split an amount into equal parts",
		Long: `Split an amount into the given number of parts that are as equal as possible.
Cents that cannot be divided evenly go to the first parts.`,
		Example: "  penny split 100.00 3",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			parts, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of parts %q: %w", args[1], err)
			}
			a.log.Debug().Stringer("amount", m).Int("parts", parts).Msg("splitting")
			res, err := m.Split(parts)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func allocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate AMOUNT WEIGHT...",
		Short: "Allocate an amount by weights",
		Long: `Allocate an amount by weights that sum up to at most 1.
Weights are decimals, such as 0.25, or fractions, such as 1/3.`,
		Example: "  penny allocate 100.00 1/3 1/3 1/3\n  penny allocate 0.05 0.3 0.7",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			weights, err := parseOperands(args[1:])
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("amount", m).Strs("weights", args[1:]).Msg("allocating")
			res, err := m.Allocate(weights...)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func allocateMaxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate-max AMOUNT MAX...",
		Short: "Allocate an amount in proportion to maximum amounts",
		Long: `Allocate an amount in proportion to maximum amounts.
No party receives more than its maximum, what cannot be placed is dropped.`,
		Example: "  penny allocate-max 30.75 26.00 4.74",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			maxima := make([]penny.Money, 0, len(args)-1)
			for _, s := range args[1:] {
				c, err := a.parseAmount(s)
				if err != nil {
					return err
				}
				maxima = append(maxima, c)
			}
			a.log.Debug().Stringer("amount", m).Strs("maxima", args[1:]).Msg("allocating up to maxima")
			res, err := m.AllocateMaxAmounts(maxima...)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func fractionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "fraction AMOUNT RATE",
		Short:   "Remove an included rate from an amount",
		Long:    `Compute AMOUNT / (1 + RATE) rounded to cents, for example a price before tax.`,
		Example: "  penny fraction 10.00 0.065",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			rate, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("amount", m).Str("rate", args[1]).Msg("computing fraction")
			res, err := m.Fraction(rate)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func mulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mul AMOUNT FACTOR",
		Short:   "Multiply an amount by a factor",
		Long:    `Multiply an amount by a decimal or fractional factor and round the product to cents.`,
		Example: "  penny mul 3.30 1/12",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			e, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("amount", m).Str("factor", args[1]).Msg("multiplying")
			res, err := m.Mul(e)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add AMOUNT AMOUNT",
		Short:   "Add two amounts",
		Example: "  penny add 1.10 2.20",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.binary(args, penny.Add)
		},
	}
}

func subCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "sub AMOUNT AMOUNT",
		Short:   "Subtract the second amount from the first",
		Example: "  penny sub 10.00 0.61",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.binary(args, penny.Sub)
		},
	}
}

func roundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "round AMOUNT [DIGITS]",
		Short: "Round an amount half away from zero",
		Long: `Round an amount to the given number of digits after the decimal point
using rounding half away from zero. DIGITS defaults to 0.`,
		Example: "  penny round 54.50",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.parseAmount(args[0])
			if err != nil {
				return err
			}
			digits := 0
			if len(args) > 1 {
				digits, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid number of digits %q: %w", args[1], err)
				}
			}
			a.log.Debug().Stringer("amount", m).Int("digits", digits).Msg("rounding")
			return a.print(m.Round(digits))
		},
	}
}

// binary applies a two-amount operation to the command arguments.
func (a *app) binary(args []string, op func(x, y penny.Operand) (penny.Money, error)) error {
	x, err := a.parseAmount(args[0])
	if err != nil {
		return err
	}
	y, err := a.parseAmount(args[1])
	if err != nil {
		return err
	}
	res, err := op(x, y)
	if err != nil {
		return err
	}
	return a.print(res)
}

// parseAmount parses an amount with the configured parser.
func (a *app) parseAmount(s string) (penny.Money, error) {
	p, err := a.parser()
	if err != nil {
		return penny.Money{}, err
	}
	m, err := penny.ParseWith(p, s)
	if err != nil {
		return penny.Money{}, err
	}
	return m, nil
}

// parseOperand parses a fraction, such as "1/3", or a decimal, such as "0.25".
func parseOperand(s string) (penny.Operand, error) {
	if strings.Contains(s, "/") {
		r, err := penny.ParseRatio(s)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	d, err := penny.ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func parseOperands(ss []string) ([]penny.Operand, error) {
	res := make([]penny.Operand, 0, len(ss))
	for _, s := range ss {
		e, err := parseOperand(s)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// print writes a single amount or a list of amounts in the configured
// output format.
func (a *app) print(v any) error {
	switch format := a.v.GetString("output"); format {
	case "text":
		switch v := v.(type) {
		case []penny.Money:
			for _, m := range v {
				if _, err := fmt.Fprintln(a.out, m); err != nil {
					return err
				}
			}
		default:
			if _, err := fmt.Fprintln(a.out, v); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return json.NewEncoder(a.out).Encode(v)
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}
