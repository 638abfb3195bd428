package jsonwriter

import (
	"strconv"
	"strings"

	"github.com/amterp/color"
)

// TokenClass identifies one of the independently colorable kinds of JSON token.
type TokenClass int

const (
	// TokenField colors an object member name together with its colon.
	TokenField TokenClass = iota
	// TokenString colors a quoted string value.
	TokenString
	// TokenBoolean colors the literals true and false.
	TokenBoolean
	// TokenNull colors the literal null, including non-finite floats.
	TokenNull
	// TokenNumber colors integer and floating-point literals.
	TokenNumber
)

// String returns the lowercase name of the class, e.g. "field".
func (c TokenClass) String() string {
	switch c {
	case TokenField:
		return "field"
	case TokenString:
		return "string"
	case TokenBoolean:
		return "boolean"
	case TokenNull:
		return "null"
	case TokenNumber:
		return "number"
	}
	return "TokenClass(" + strconv.Itoa(int(c)) + ")"
}

// Palette maps each token class to an SGR parameter string such as "36" or "1;2".
// The code is placed after "\x1b[0;" when a token is colored, so a palette entry
// never needs to carry the escape prefix or the trailing 'm'.
type Palette struct {
	// Field is the code for object member names. Default is cyan (36).
	Field string
	// String is the code for string values. Default is green (32).
	String string
	// Boolean is the code for true and false. Default is red (31).
	Boolean string
	// Null is the code for null. Default is magenta (35).
	Null string
	// Number is the code for numbers. Default is yellow (33).
	Number string
}

// Default color attributes for each token class.
var (
	// DefaultFieldColor is the attribute set behind Palette.Field.
	DefaultFieldColor = []color.Attribute{color.FgCyan}
	// DefaultStringColor is the attribute set behind Palette.String.
	DefaultStringColor = []color.Attribute{color.FgGreen}
	// DefaultBooleanColor is the attribute set behind Palette.Boolean.
	DefaultBooleanColor = []color.Attribute{color.FgRed}
	// DefaultNullColor is the attribute set behind Palette.Null.
	DefaultNullColor = []color.Attribute{color.FgMagenta}
	// DefaultNumberColor is the attribute set behind Palette.Number.
	DefaultNumberColor = []color.Attribute{color.FgYellow}
)

// DefaultPalette returns the palette a new Writer starts with:
// cyan fields, green strings, red booleans, magenta nulls and yellow numbers.
func DefaultPalette() Palette {
	return Palette{
		Field:   Code(DefaultFieldColor...),
		String:  Code(DefaultStringColor...),
		Boolean: Code(DefaultBooleanColor...),
		Null:    Code(DefaultNullColor...),
		Number:  Code(DefaultNumberColor...),
	}
}

// Code renders color attributes as a palette entry, e.g.
// Code(color.FgBlue, color.Bold) == "34;1".
func Code(attrs ...color.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = strconv.Itoa(int(a))
	}
	return strings.Join(parts, ";")
}

// Get returns the code configured for class c.
func (p *Palette) Get(c TokenClass) string {
	switch c {
	case TokenField:
		return p.Field
	case TokenString:
		return p.String
	case TokenBoolean:
		return p.Boolean
	case TokenNull:
		return p.Null
	case TokenNumber:
		return p.Number
	}
	return ""
}

// Set overrides the code for class c. Unknown classes are ignored.
func (p *Palette) Set(c TokenClass, code string) {
	switch c {
	case TokenField:
		p.Field = code
	case TokenString:
		p.String = code
	case TokenBoolean:
		p.Boolean = code
	case TokenNull:
		p.Null = code
	case TokenNumber:
		p.Number = code
	}
}

const (
	colorPrefix = "\x1b[0;"
	colorSuffix = "m"
	colorReset  = "\x1b[0m"
)

// setColor opens the color sequence for class c. No-op when colors are off.
func (w *Writer) setColor(c TokenClass) {
	if !w.useColors {
		return
	}
	w.buf = append(w.buf, colorPrefix...)
	w.buf = append(w.buf, w.palette.Get(c)...)
	w.buf = append(w.buf, colorSuffix...)
}

func (w *Writer) resetColor() {
	if !w.useColors {
		return
	}
	w.buf = append(w.buf, colorReset...)
}
