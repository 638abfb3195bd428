package jsonwriter

// Writer builds a JSON document in memory from a sequence of begin/end and
// write calls. It does not check that the calls are balanced; an unbalanced
// sequence produces malformed output rather than an error.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf       []byte
	palette   Palette
	indent    int
	pretty    bool
	useColors bool
}

// Option configures a Writer created by New.
type Option func(*Writer)

// WithPretty selects the indented (true) or compact (false) layout.
func WithPretty(on bool) Option {
	return func(w *Writer) { w.pretty = on }
}

// WithColors enables or disables ANSI color sequences around tokens.
func WithColors(on bool) Option {
	return func(w *Writer) { w.useColors = on }
}

// WithPalette replaces the default palette.
func WithPalette(p Palette) Option {
	return func(w *Writer) { w.palette = p }
}

// New returns a pretty, uncolored Writer using DefaultPalette, then applies opts.
func New(opts ...Option) *Writer {
	w := &Writer{
		palette: DefaultPalette(),
		pretty:  true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Bytes returns the output written so far. The slice aliases the internal
// buffer and is only valid until the next write.
func (w *Writer) Bytes() []byte { return w.buf }

// String returns a copy of the output written so far.
func (w *Writer) String() string { return string(w.buf) }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reset empties the buffer and the nesting depth, keeping the configuration.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.indent = 0
}

// SetPretty switches between the indented layout (two spaces per level,
// newlines after openers and separators) and the compact one. It may be
// called at any point; only output written afterwards is affected.
func (w *Writer) SetPretty(on bool) { w.pretty = on }

// Pretty reports whether the indented layout is selected.
func (w *Writer) Pretty() bool { return w.pretty }

// SetUseColors enables or disables the ANSI sequences wrapped around tokens.
func (w *Writer) SetUseColors(on bool) { w.useColors = on }

// UseColors reports whether tokens are wrapped in ANSI sequences.
func (w *Writer) UseColors() bool { return w.useColors }

// SetPalette replaces the palette consulted when colors are enabled.
func (w *Writer) SetPalette(p Palette) { w.palette = p }

// Palette returns the writer's palette for in-place modification.
func (w *Writer) Palette() *Palette { return &w.palette }

// BeginObject writes '{' (plus a newline when pretty) and enters one level
// of nesting.
func (w *Writer) BeginObject() { w.open('{') }

// EndObject strips the separator left by the last member, leaves the current
// nesting level and writes '}' at the parent's indentation.
func (w *Writer) EndObject() { w.close('}') }

// BeginArray writes '[' (plus a newline when pretty) and enters one level
// of nesting.
func (w *Writer) BeginArray() { w.open('[') }

// EndArray strips the separator left by the last element, leaves the current
// nesting level and writes ']' at the parent's indentation.
func (w *Writer) EndArray() { w.close(']') }

// BeginArrayItem starts an array element. It only emits indentation.
func (w *Writer) BeginArrayItem() { w.writeIndent() }

// EndArrayItem terminates an array element with a separator.
func (w *Writer) EndArrayItem() { w.writeComma() }

// BeginField writes the quoted name of an object member followed by a colon.
// The field color covers the name and the colon but not the space after it.
func (w *Writer) BeginField(name string) {
	w.writeIndent()

	w.setColor(TokenField)
	w.buf = appendQuoted(w.buf, name)
	w.buf = append(w.buf, ':')
	w.resetColor()

	if w.pretty {
		w.buf = append(w.buf, ' ')
	}
}

// EndField terminates an object member with a separator.
func (w *Writer) EndField() { w.writeComma() }

func (w *Writer) open(delim byte) {
	w.buf = append(w.buf, delim)
	if w.pretty {
		w.buf = append(w.buf, '\n')
	}
	w.indent++
}

func (w *Writer) close(delim byte) {
	w.removeTrailingComma()

	w.indent--
	w.writeIndent()
	w.buf = append(w.buf, delim)
}

func (w *Writer) writeIndent() {
	if !w.pretty {
		return
	}
	for i := 0; i < w.indent; i++ {
		w.buf = append(w.buf, ' ', ' ')
	}
}

func (w *Writer) writeComma() {
	w.buf = append(w.buf, ',')
	if w.pretty {
		w.buf = append(w.buf, '\n')
	}
}

// removeTrailingComma drops the separator left by the last item of an
// aggregate. Buffers of two bytes or fewer are never touched so that an
// opening delimiter cannot be eaten.
func (w *Writer) removeTrailingComma() {
	n := len(w.buf)
	if n <= 2 {
		return
	}
	switch {
	case w.buf[n-2] == ',' && w.buf[n-1] == '\n':
		w.buf[n-2] = '\n'
		w.buf = w.buf[:n-1]
	case w.buf[n-1] == ',':
		w.buf = w.buf[:n-1]
	}
}
