package penny

import (
	"fmt"
	"strings"
)

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                 | Description           |
//	| ------ | ----------------------- | --------------------- |
//	| %s, %v | 5.67                    | Amount                |
//	| %q     | "5.67"                  | Quoted amount         |
//	| %f     | 5.67                    | Amount                |
//	| %d     | 567                     | Amount in minor units |
//	| %#v    | penny.MustParse("5.67") | Go syntax             |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %#v.
//
// Precision is only supported for the %f verb.
// Precisions below 2 are ignored, since cents are never dropped.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (m Money) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		//nolint:errcheck
		state.Write([]byte(m.GoString()))
		return
	}

	units := m.BigMinorUnits()
	neg := units.Sign() < 0
	digs := units.Abs(units).String()

	// Trailing zeros
	tzeros := 0
	if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') && p > scaleMoney {
		tzeros = p - scaleMoney
	}

	// Integer and fractional digits
	intdigs, fracdigs := len(digs), 0
	if verb != 'd' && verb != 'D' {
		if pad := scaleMoney + 1 - len(digs); pad > 0 {
			digs = strings.Repeat("0", pad) + digs // leading 0
		}
		fracdigs = scaleMoney
		intdigs = len(digs) - fracdigs
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1
	dpos := len(digs) - 1

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for i := 0; i < tzeros; i++ {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	for i := 0; i < fracdigs; i++ {
		buf[pos] = digs[dpos]
		pos--
		dpos--
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for i := 0; i < intdigs; i++ {
		buf[pos] = digs[dpos]
		pos--
		dpos--
	}

	// Leading zeros
	for i := 0; i < lzeros; i++ {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		switch {
		case neg:
			buf[pos] = '-'
		case state.Flag(' '):
			buf[pos] = ' '
		default:
			buf[pos] = '+'
		}
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(penny.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// GoString implements the [fmt.GoStringer] interface and returns a Go
// expression that evaluates to the amount, for example
// penny.MustParse("-1.00").
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (m Money) GoString() string {
	return fmt.Sprintf("penny.MustParse(%q)", m.String())
}
