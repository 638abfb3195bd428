package jsonwriter

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	// 20 digits covers both math.MaxUint64 and math.MinInt64, plus a sign.
	intBufSize = 20 + 1
	// Sign, 17 significant digits, a decimal point and "e-308", with slack.
	floatBufSize = 5 + 17 + 3
)

// WriteNull writes the literal null in the null color.
func (w *Writer) WriteNull() {
	w.setColor(TokenNull)
	w.buf = append(w.buf, "null"...)
	w.resetColor()
}

// WriteBool writes true or false in the boolean color.
func (w *Writer) WriteBool(v bool) {
	w.setColor(TokenBoolean)
	if v {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
	w.resetColor()
}

// WriteString writes v as a quoted, escaped JSON string.
func (w *Writer) WriteString(v string) {
	w.setColor(TokenString)
	w.buf = appendQuoted(w.buf, v)
	w.resetColor()
}

// WriteInt is the method form of WriteInteger for int64.
func (w *Writer) WriteInt(v int64) { WriteInteger(w, v) }

// WriteUint is the method form of WriteInteger for uint64.
func (w *Writer) WriteUint(v uint64) { WriteInteger(w, v) }

// WriteFloat64 is the method form of WriteFloat for float64.
func (w *Writer) WriteFloat64(v float64) { WriteFloat(w, v) }

// WriteFloat32 is the method form of WriteFloat for float32. The digits are
// the shortest ones that round-trip at 32-bit precision, so float32(3.14)
// is written as 3.14.
func (w *Writer) WriteFloat32(v float32) { WriteFloat(w, v) }

// WriteInteger writes v in base 10. The digits are produced in a fixed-size
// stack buffer, so nothing is allocated beyond the growth of the output.
func WriteInteger[T constraints.Integer](w *Writer, v T) {
	var scratch [intBufSize]byte
	var digits []byte
	if v < 0 {
		digits = strconv.AppendInt(scratch[:0], int64(v), 10)
	} else {
		digits = strconv.AppendUint(scratch[:0], uint64(v), 10)
	}
	w.writeNumber(digits)
}

// WriteFloat writes the shortest decimal that parses back to exactly v at
// v's own precision. Fixed notation is used unless scientific notation is
// strictly shorter, so 3.14 is written as "3.14" and 1e20 as "1e+20".
// NaN and infinities have no JSON form and are written as null.
func WriteFloat[T constraints.Float](w *Writer, v T) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		w.WriteNull()
		return
	}
	var scratch [floatBufSize]byte
	bits := int(unsafe.Sizeof(v)) * 8
	w.writeNumber(appendShortestFloat(scratch[:0], f, bits))
}

func (w *Writer) writeNumber(text []byte) {
	w.setColor(TokenNumber)
	w.buf = append(w.buf, text...)
	w.resetColor()
}

// appendShortestFloat formats f with the minimal round-trip digit count,
// choosing between fixed and scientific layout by length. The fixed form is
// only rendered once it is known not to exceed the scientific one, which
// keeps the result within floatBufSize.
func appendShortestFloat(dst []byte, f float64, bits int) []byte {
	sci := strconv.AppendFloat(dst, f, 'e', -1, bits)
	body := sci[len(dst):]
	if body[0] == '-' {
		body = body[1:]
	}

	e := 0
	for body[e] != 'e' {
		e++
	}
	digits := e
	if digits > 1 {
		digits-- // decimal point
	}

	exp := 0
	for _, c := range body[e+2:] {
		exp = exp*10 + int(c-'0')
	}
	if body[e+1] == '-' {
		exp = -exp
	}

	var fixed int
	switch {
	case exp < 0:
		fixed = digits + 1 - exp // "0." then -exp-1 zeros then the digits
	case digits > exp+1:
		fixed = digits + 1
	default:
		fixed = exp + 1
	}
	if fixed <= len(body) {
		return strconv.AppendFloat(dst, f, 'f', -1, bits)
	}
	return sci
}

// WriteNullField writes an object member whose value is null.
func (w *Writer) WriteNullField(name string) {
	w.BeginField(name)
	w.WriteNull()
	w.EndField()
}

// WriteBoolField writes an object member with a boolean value.
func (w *Writer) WriteBoolField(name string, v bool) {
	w.BeginField(name)
	w.WriteBool(v)
	w.EndField()
}

// WriteStringField writes an object member with a string value.
func (w *Writer) WriteStringField(name, v string) {
	w.BeginField(name)
	w.WriteString(v)
	w.EndField()
}

// WriteIntegerField writes an object member whose value is formatted by
// WriteInteger.
func WriteIntegerField[T constraints.Integer](w *Writer, name string, v T) {
	w.BeginField(name)
	WriteInteger(w, v)
	w.EndField()
}

// WriteFloatField writes an object member whose value is formatted by
// WriteFloat.
func WriteFloatField[T constraints.Float](w *Writer, name string, v T) {
	w.BeginField(name)
	WriteFloat(w, v)
	w.EndField()
}

// WriteArray writes items as a JSON array, calling fn once per element
// between BeginArrayItem and EndArrayItem. fn may open nested aggregates.
func WriteArray[T any](w *Writer, items []T, fn func(*Writer, T)) {
	w.BeginArray()
	for _, item := range items {
		w.BeginArrayItem()
		fn(w, item)
		w.EndArrayItem()
	}
	w.EndArray()
}
