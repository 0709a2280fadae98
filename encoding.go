package penny

import (
	"database/sql/driver"
	"fmt"
	"math"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings, such as "1.00", and JSON numbers, such as 1.5e3,
// are accepted and rounded to cents.
// The JSON null value leaves the amount unchanged.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var err error
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		*m, err = Parse(string(text[1 : len(text)-1]))
	} else {
		*m, err = parseNumber(string(text))
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}

// parseNumber converts a number in any notation accepted by [ParseDecimal]
// to a (possibly rounded) amount.
func parseNumber(s string) (Money, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	return NewFromDecimal(d), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string in the canonical form, such as
// "1.00", so that no precision is lost by JSON decoders that use floats.
// See also method [Money.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	s := m.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	var err error
	*m, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Money.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (m Money) AppendText(text []byte) ([]byte, error) {
	return append(text, m.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Money.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is the canonical text.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (m *Money) UnmarshalBinary(data []byte) error {
	var err error
	*m, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// See also method [Money.String].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (m Money) AppendBinary(data []byte) ([]byte, error) {
	return append(data, m.String()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// See also method [Money.String].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (m Money) MarshalBinary() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// BSON strings, doubles, 32-bit and 64-bit integers are accepted.
// The BSON null value leaves the amount unchanged.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (m *Money) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 1:
		*m, err = parseBSONDouble(data)
	case 2:
		*m, err = parseBSONString(data)
	case 10:
		// null, do nothing
	case 16:
		*m, err = parseBSONInt32(data)
	case 18:
		*m, err = parseBSONInt64(data)
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Money{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string in the canonical form.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (m Money) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, m.bsonString(), nil
}

// leUint64 decodes n little-endian bytes.
func leUint64(data []byte, n int) uint64 {
	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(data[i])
	}
	return u
}

// parseBSONDouble parses a BSON double to an amount.
// The byte order of the input data must be little-endian.
func parseBSONDouble(data []byte) (Money, error) {
	if len(data) != 8 {
		return Money{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidAmount, len(data))
	}
	return NewFromFloat64(math.Float64frombits(leUint64(data, 8)))
}

// parseBSONInt32 parses a BSON int32 to an amount.
// The byte order of the input data must be little-endian.
func parseBSONInt32(data []byte) (Money, error) {
	if len(data) != 4 {
		return Money{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidAmount, len(data))
	}
	return NewFromInt64(int64(int32(leUint64(data, 4)))), nil //nolint:gosec
}

// parseBSONInt64 parses a BSON int64 to an amount.
// The byte order of the input data must be little-endian.
func parseBSONInt64(data []byte) (Money, error) {
	if len(data) != 8 {
		return Money{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidAmount, len(data))
	}
	return NewFromInt64(int64(leUint64(data, 8))), nil //nolint:gosec
}

// parseBSONString parses a BSON string to an amount.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Money, error) {
	if len(data) < 4 {
		return Money{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidAmount, len(data))
	}
	l := int(int32(leUint64(data, 4))) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Money{}, fmt.Errorf("%w: invalid string length %v", ErrInvalidAmount, l)
	}
	if data[l+4-1] != 0 {
		return Money{}, fmt.Errorf("%w: invalid null terminator %v", ErrInvalidAmount, data[l+4-1])
	}
	return Parse(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the amount.
// The byte order of the result is little-endian.
func (m Money) bsonString() []byte {
	s := m.String()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings are read with [Parse], numbers are rounded to cents.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*m, err = Parse(value)
	case []byte:
		*m, err = Parse(string(value))
	case int64:
		*m = NewFromInt64(value)
	case float64:
		*m, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Money{}, NullMoney{}, Money{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the canonical string, see [Money.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// NullMoney represents an amount that can be null.
// Its zero value is null.
// NullMoney is not thread-safe.
type NullMoney struct {
	Money Money
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Money.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullMoney) Scan(value any) error {
	if value == nil {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Money.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Money.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Money.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullMoney) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Money.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Money.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Money.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullMoney) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	if typ == 10 {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Money.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Money.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullMoney) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Money.MarshalBSONValue()
}
