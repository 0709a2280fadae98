package penny

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Parser converts text to an amount.
// Implementations must be safe for concurrent use.
// Errors returned by a parser are expected to match [ErrParse].
type Parser interface {
	Parse(text string) (Money, error)
}

var (
	_ Parser = NumericParser{}
	_ Parser = AccountingParser{}
)

var (
	numericLiteral    = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	accountingLiteral = regexp.MustCompile(`^([+-]?)\$?((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d*)?|\.\d+)$`)
)

// NumericParser parses plain decimal literals such as "1.00", "-5", "+0.5"
// or ".25".
// Leading and trailing spaces are ignored.
// Digits beyond the second fractional digit are rounded half away from zero,
// so "1.005" is 1.01.
// Exponents, currency symbols and separators are rejected.
// NumericParser is the default parser, see [Parse].
type NumericParser struct{}

// Parse implements the [Parser] interface.
func (NumericParser) Parse(text string) (Money, error) {
	s := strings.TrimSpace(text)
	if !numericLiteral.MatchString(s) {
		return Money{}, fmt.Errorf("parsing amount %q: %w", text, ErrParse)
	}
	d, err := parseLiteral(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w: %w", text, ErrParse, err)
	}
	return newMoney(d), nil
}

// parseLiteral converts a literal accepted by numericLiteral.
func parseLiteral(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(s, "+")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// AccountingParser parses amounts written the way accounting reports
// write them.
// In addition to the literals accepted by [NumericParser], it accepts
// a leading dollar sign, comma thousands separators and parentheses for
// negative amounts: "($1,234.50)" is -1234.50.
// Separators must group exactly 3 digits.
type AccountingParser struct{}

// Parse implements the [Parser] interface.
func (AccountingParser) Parse(text string) (Money, error) {
	s := strings.TrimSpace(text)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	match := accountingLiteral.FindStringSubmatch(s)
	if match == nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", text, ErrParse)
	}
	if neg && match[1] != "" {
		return Money{}, fmt.Errorf("parsing amount %q: sign inside parentheses: %w", text, ErrParse)
	}
	d, err := parseLiteral(match[1] + strings.ReplaceAll(match[2], ",", ""))
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w: %w", text, ErrParse, err)
	}
	m := newMoney(d)
	if neg {
		m = m.Neg()
	}
	return m, nil
}

// ParserByName returns the parser registered under the given name:
// "numeric" (or an empty name) for [NumericParser] and "accounting" for
// [AccountingParser].
func ParserByName(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return NumericParser{}, nil
	case "accounting":
		return AccountingParser{}, nil
	}
	return nil, fmt.Errorf("unknown parser %q: %w", name, ErrInvalidArgument)
}

// Parse converts a string to an amount using [NumericParser].
// Use [ParseWith] to choose another parser.
func Parse(s string) (Money, error) {
	return ParseWith(NumericParser{}, s)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// ParseWith converts a string to an amount using the given parser.
// A nil parser means [NumericParser].
// Errors of the parser that do not match [ErrParse] are wrapped with it.
func ParseWith(p Parser, s string) (Money, error) {
	if p == nil {
		p = NumericParser{}
	}
	m, err := p.Parse(s)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			return Money{}, fmt.Errorf("parsing amount %q: %w: %w", s, ErrParse, err)
		}
		return Money{}, err
	}
	return m, nil
}
