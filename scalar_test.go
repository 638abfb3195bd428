package jsonwriter

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func integerString[T constraints.Integer](v T) string {
	w := New(WithPretty(false))
	WriteInteger(w, v)
	return w.String()
}

func floatString[T constraints.Float](v T) string {
	w := New(WithPretty(false))
	WriteFloat(w, v)
	return w.String()
}

func TestWriteIntegerLimits(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{integerString(int8(math.MinInt8)), "-128"},
		{integerString(int8(math.MaxInt8)), "127"},
		{integerString(int16(math.MinInt16)), "-32768"},
		{integerString(int16(math.MaxInt16)), "32767"},
		{integerString(int32(math.MinInt32)), "-2147483648"},
		{integerString(int32(math.MaxInt32)), "2147483647"},
		{integerString(int64(math.MinInt64)), "-9223372036854775808"},
		{integerString(int64(math.MaxInt64)), "9223372036854775807"},
		{integerString(uint8(math.MaxUint8)), "255"},
		{integerString(uint16(math.MaxUint16)), "65535"},
		{integerString(uint32(math.MaxUint32)), "4294967295"},
		{integerString(uint64(math.MaxUint64)), "18446744073709551615"},
		{integerString(uint(0)), "0"},
		{integerString(0), "0"},
		{integerString(-42), "-42"},
		{integerString(42), "42"},
		{integerString(int(math.MinInt)), strconv.Itoa(math.MinInt)},
		{integerString(uint(math.MaxUint)), strconv.FormatUint(math.MaxUint, 10)},
	} {
		assert.Equal(t, tc.want, tc.got)
	}
}

func TestWriteIntegerNamedType(t *testing.T) {
	type port uint16
	require.Equal(t, "8080", integerString(port(8080)))
}

func TestWriteFloat(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{floatString(3.14), "3.14"},
		{floatString(float32(3.14)), "3.14"},
		{floatString(float32(0.1)), "0.1"},
		{floatString(175.6), "175.6"},
		{floatString(0.0), "0"},
		{floatString(-0.5), "-0.5"},
		{floatString(2.0), "2"},
		{floatString(123456.0), "123456"},
		{floatString(100000.0), "1e+05"},
		{floatString(1e20), "1e+20"},
		{floatString(0.001), "0.001"},
		{floatString(1e-7), "1e-07"},
		{floatString(1.5e-7), "1.5e-07"},
		{floatString(math.MaxFloat64), "1.7976931348623157e+308"},
		{floatString(-math.MaxFloat64), "-1.7976931348623157e+308"},
		{floatString(math.SmallestNonzeroFloat64), "5e-324"},
		{floatString(float32(math.MaxFloat32)), "3.4028235e+38"},
	} {
		assert.Equal(t, tc.want, tc.got)
	}
}

func TestWriteFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{3.14, 1.0 / 3, 2.0 / 3, 1e300, 12345.6789, 0.1 + 0.2, -7.25e-12} {
		out := floatString(v)
		parsed, err := strconv.ParseFloat(out, 64)
		require.NoError(t, err)
		require.Equal(t, v, parsed, out)
	}
}

func TestWriteFloatNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Equal(t, "null", floatString(v))
	}

	w := New(WithColors(true))
	WriteFloat(w, math.NaN())
	require.Equal(t, "\x1b[0;35mnull\x1b[0m", w.String())
}

func TestScalarColors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		write func(*Writer)
		plain string
		color string
	}{
		{"null", (*Writer).WriteNull, "null", "\x1b[0;35mnull\x1b[0m"},
		{"true", func(w *Writer) { w.WriteBool(true) }, "true", "\x1b[0;31mtrue\x1b[0m"},
		{"false", func(w *Writer) { w.WriteBool(false) }, "false", "\x1b[0;31mfalse\x1b[0m"},
		{"string", func(w *Writer) { w.WriteString("hi") }, `"hi"`, "\x1b[0;32m\"hi\"\x1b[0m"},
		{"integer", func(w *Writer) { w.WriteInt(42) }, "42", "\x1b[0;33m42\x1b[0m"},
		{"unsigned", func(w *Writer) { w.WriteUint(42) }, "42", "\x1b[0;33m42\x1b[0m"},
		{"float64", func(w *Writer) { w.WriteFloat64(3.14) }, "3.14", "\x1b[0;33m3.14\x1b[0m"},
		{"float32", func(w *Writer) { w.WriteFloat32(3.14) }, "3.14", "\x1b[0;33m3.14\x1b[0m"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := New()
			tc.write(w)
			require.Equal(t, tc.plain, w.String())

			w = New(WithColors(true))
			tc.write(w)
			require.Equal(t, tc.color, w.String())
		})
	}
}

func TestCustomNumberColor(t *testing.T) {
	w := New(WithColors(true))
	w.Palette().Number = "1;2"
	w.WriteFloat64(3.14)
	w.WriteInt(42)
	require.Equal(t, "\x1b[0;1;2m3.14\x1b[0m\x1b[0;1;2m42\x1b[0m", w.String())
}

func TestFieldCombinators(t *testing.T) {
	for _, tc := range []struct {
		name   string
		pretty bool
		write  func(*Writer)
		want   string
	}{
		{"null pretty", true, func(w *Writer) { w.WriteNullField("") }, "\"\": null,\n"},
		{"null compact", false, func(w *Writer) { w.WriteNullField("") }, "\"\":null,"},
		{"bool", true, func(w *Writer) { w.WriteBoolField("b", true) }, "\"b\": true,\n"},
		{"string", true, func(w *Writer) { w.WriteStringField("s", "v") }, "\"s\": \"v\",\n"},
		{"integer", true, func(w *Writer) { WriteIntegerField(w, "i", uint8(7)) }, "\"i\": 7,\n"},
		{"float", true, func(w *Writer) { WriteFloatField(w, "foo", 3.14) }, "\"foo\": 3.14,\n"},
		{"escaped name", true, func(w *Writer) { w.WriteNullField("foo\nbar") }, "\"foo\\nbar\": null,\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := New(WithPretty(tc.pretty))
			tc.write(w)
			require.Equal(t, tc.want, w.String())
		})
	}
}

func TestFieldColors(t *testing.T) {
	w := New(WithColors(true))
	w.WriteNullField("")
	require.Equal(t, "\x1b[0;36m\"\":\x1b[0m \x1b[0;35mnull\x1b[0m,\n", w.String())

	w = New(WithColors(true), WithPretty(false))
	w.Palette().Field = "1;2"
	w.WriteNullField("")
	require.Equal(t, "\x1b[0;1;2m\"\":\x1b[0m\x1b[0;35mnull\x1b[0m,", w.String())
}

func TestScalarWritesDoNotAllocate(t *testing.T) {
	w := New(WithPretty(false), WithColors(true))
	w.buf = make([]byte, 0, 1024)
	allocs := testing.AllocsPerRun(100, func() {
		w.Reset()
		WriteInteger(w, int64(math.MinInt64))
		WriteInteger(w, uint64(math.MaxUint64))
		WriteFloat(w, 3.14)
		WriteFloat(w, float32(-1.5e-7))
	})
	require.Zero(t, allocs)
}
