package penny

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		m, want string
	}{
		{"0", `"0.00"`},
		{"1", `"1.00"`},
		{"-1.5", `"-1.50"`},
		{"1234567.891", `"1234567.89"`},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		got, err := json.Marshal(m)
		if err != nil {
			t.Errorf("json.Marshal(%q) failed: %v", m, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%q) = %s, want %s", m, got, tt.want)
		}
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{`"1.00"`, "1.00"},
			{`"-0.50"`, "-0.50"},
			{`1.5`, "1.50"},
			{`1.005`, "1.01"},
			{`-2`, "-2.00"},
			{`1.5e3`, "1500.00"},
			{`null`, "7.00"},
		}
		for _, tt := range tests {
			got := MustParse("7.00")
			err := json.Unmarshal([]byte(tt.s), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("json.Unmarshal(%s) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`"abc"`, `"1e3"`, `""`, `true`, `{}`, `"$5.00"`,
			`1e2000000000`, `-1e-2000000000`, `1e1001`,
		}
		for _, s := range tests {
			var got Money
			err := json.Unmarshal([]byte(s), &got)
			if err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", s)
			}
		}
	})
}

func TestMoney_JSON_struct(t *testing.T) {
	type invoice struct {
		Total Money     `json:"total"`
		Tax   NullMoney `json:"tax"`
	}
	in := invoice{Total: MustParse("10.00"), Tax: NullMoney{Money: MustParse("0.61"), Valid: true}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal(%+v) failed: %v", in, err)
	}
	want := `{"total":"10.00","tax":"0.61"}`
	if string(data) != want {
		t.Errorf("json.Marshal(%+v) = %s, want %s", in, data, want)
	}
	var out invoice
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
	}
	if !out.Total.Equal(in.Total) || !out.Tax.Valid || !out.Tax.Money.Equal(in.Tax.Money) {
		t.Errorf("json.Unmarshal(%s) = %+v, want %+v", data, out, in)
	}

	data = []byte(`{"total":"1.00","tax":null}`)
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
	}
	if out.Tax.Valid {
		t.Errorf("json.Unmarshal(%s) = %+v, want null tax", data, out)
	}
	data, err = json.Marshal(out)
	if err != nil {
		t.Fatalf("json.Marshal(%+v) failed: %v", out, err)
	}
	want = `{"total":"1.00","tax":null}`
	if string(data) != want {
		t.Errorf("json.Marshal(%+v) = %s, want %s", out, data, want)
	}
}

func TestMoney_Text(t *testing.T) {
	m := MustParse("-12.30")
	text, err := m.MarshalText()
	if err != nil {
		t.Fatalf("%q.MarshalText() failed: %v", m, err)
	}
	if string(text) != "-12.30" {
		t.Errorf("%q.MarshalText() = %s, want %s", m, text, "-12.30")
	}
	text, err = m.AppendText([]byte("x="))
	if err != nil {
		t.Fatalf("%q.AppendText() failed: %v", m, err)
	}
	if string(text) != "x=-12.30" {
		t.Errorf("%q.AppendText() = %s, want %s", m, text, "x=-12.30")
	}

	var got Money
	if err := got.UnmarshalText([]byte("4.5")); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", "4.5", err)
	}
	if got.String() != "4.50" {
		t.Errorf("UnmarshalText(%q) = %q, want %q", "4.5", got, "4.50")
	}
	if err := got.UnmarshalText([]byte("four")); !errors.Is(err, ErrParse) {
		t.Errorf("UnmarshalText(%q) = %v, want %v", "four", err, ErrParse)
	}
}

func TestMoney_Binary(t *testing.T) {
	for _, s := range []string{"0.00", "1.01", "-99999999999999999999.99"} {
		m := MustParse(s)
		data, err := m.MarshalBinary()
		if err != nil {
			t.Errorf("%q.MarshalBinary() failed: %v", m, err)
			continue
		}
		var got Money
		if err := got.UnmarshalBinary(data); err != nil {
			t.Errorf("UnmarshalBinary(%v) failed: %v", data, err)
			continue
		}
		if !got.Equal(m) {
			t.Errorf("UnmarshalBinary(%v) = %q, want %q", data, got, m)
		}
		data, err = m.AppendBinary([]byte{0xff})
		if err != nil {
			t.Errorf("%q.AppendBinary() failed: %v", m, err)
			continue
		}
		if data[0] != 0xff || string(data[1:]) != s {
			t.Errorf("%q.AppendBinary() = %v, want %v", m, data[1:], s)
		}
	}
}

func bsonString(s string) []byte {
	data := binary.LittleEndian.AppendUint32(nil, uint32(len(s)+1)) //nolint:gosec
	data = append(data, s...)
	return append(data, 0)
}

func TestMoney_UnmarshalBSONValue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			typ  byte
			data []byte
			want string
		}{
			{1, binary.LittleEndian.AppendUint64(nil, math.Float64bits(1.005)), "1.01"},
			{2, bsonString("-5.25"), "-5.25"},
			{10, nil, "7.00"},
			{16, binary.LittleEndian.AppendUint32(nil, uint32(0xffffffff)), "-1.00"},
			{18, binary.LittleEndian.AppendUint64(nil, 42), "42.00"},
		}
		for _, tt := range tests {
			got := MustParse("7.00")
			err := got.UnmarshalBSONValue(tt.typ, tt.data)
			if err != nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", tt.typ, tt.data, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("UnmarshalBSONValue(%v, %v) = %q, want %q", tt.typ, tt.data, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			typ  byte
			data []byte
		}{
			"type":       {19, nil},
			"double":     {1, []byte{1, 2, 3}},
			"nan":        {1, binary.LittleEndian.AppendUint64(nil, math.Float64bits(math.NaN()))},
			"length":     {2, []byte{1, 0}},
			"terminator": {2, []byte{2, 0, 0, 0, '1', '1'}},
			"string":     {2, bsonString("one")},
			"int32":      {16, []byte{1}},
			"int64":      {18, []byte{1, 2, 3, 4}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Money
				err := got.UnmarshalBSONValue(tt.typ, tt.data)
				if err == nil {
					t.Errorf("UnmarshalBSONValue(%v, %v) did not fail", tt.typ, tt.data)
				}
			})
		}
	})
}

func TestMoney_MarshalBSONValue(t *testing.T) {
	m := MustParse("-5.25")
	typ, data, err := m.MarshalBSONValue()
	if err != nil {
		t.Fatalf("%q.MarshalBSONValue() failed: %v", m, err)
	}
	if typ != 2 || string(data) != string(bsonString("-5.25")) {
		t.Errorf("%q.MarshalBSONValue() = [%v %v], want [%v %v]", m, typ, data, 2, bsonString("-5.25"))
	}
}

func TestMoney_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"1.23", "1.23"},
			{[]byte("-4.5"), "-4.50"},
			{int64(7), "7.00"},
			{float64(0.125), "0.13"},
		}
		for _, tt := range tests {
			var got Money
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, "abc", true, int32(5), math.NaN()}
		for _, value := range tests {
			var got Money
			err := got.Scan(value)
			if err == nil {
				t.Errorf("Scan(%v) did not fail", value)
			}
		}
	})
}

func TestMoney_Value(t *testing.T) {
	m := MustParse("-0.10")
	got, err := m.Value()
	if err != nil {
		t.Fatalf("%q.Value() failed: %v", m, err)
	}
	if got != "-0.10" {
		t.Errorf("%q.Value() = %v, want %v", m, got, "-0.10")
	}
}

func TestNullMoney_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullMoney
		}{
			{nil, NullMoney{}},
			{"1.00", NullMoney{Money: MustParse("1.00"), Valid: true}},
		}
		for _, tt := range tests {
			got := NullMoney{Money: MustParse("9.99"), Valid: true}
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.Valid != tt.want.Valid || !got.Money.Equal(tt.want.Money) {
				t.Errorf("Scan(%v) = %+v, want %+v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		got := NullMoney{}
		err := got.Scan([]byte("UUU"))
		if err == nil {
			t.Errorf("Scan(%q) did not fail", "UUU")
		}
	})
}

func TestNullMoney_Value(t *testing.T) {
	got, err := NullMoney{}.Value()
	if err != nil || got != nil {
		t.Errorf("NullMoney{}.Value() = [%v %v], want [<nil> <nil>]", got, err)
	}
	n := NullMoney{Money: MustParse("3"), Valid: true}
	got, err = n.Value()
	if err != nil || got != "3.00" {
		t.Errorf("%+v.Value() = [%v %v], want [3.00 <nil>]", n, got, err)
	}
}

func TestNullMoney_BSONValue(t *testing.T) {
	var n NullMoney
	if err := n.UnmarshalBSONValue(2, bsonString("2.50")); err != nil {
		t.Fatalf("UnmarshalBSONValue failed: %v", err)
	}
	if !n.Valid || n.Money.String() != "2.50" {
		t.Errorf("UnmarshalBSONValue = %+v, want 2.50", n)
	}
	if err := n.UnmarshalBSONValue(10, nil); err != nil {
		t.Fatalf("UnmarshalBSONValue failed: %v", err)
	}
	if n.Valid {
		t.Errorf("UnmarshalBSONValue = %+v, want null", n)
	}
	typ, data, err := n.MarshalBSONValue()
	if err != nil || typ != 10 || data != nil {
		t.Errorf("MarshalBSONValue() = [%v %v %v], want [10 [] <nil>]", typ, data, err)
	}
}
