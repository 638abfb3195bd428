package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Marshal encodes v with encoding/json and re-emits the result through a
// new Writer configured by opts, so the output gets the Writer's layout and
// colors.
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	w := New(opts...)
	if err := w.WriteValue(v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// WriteValue writes the JSON encoding of v at the current position, as if
// it had been produced by the equivalent sequence of Writer calls. It is
// meant for embedding arbitrary Go values, e.g. from a WriteArray callback.
func (w *Writer) WriteValue(v interface{}) error {
	plainJSONBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("jsonwriter: failed to marshal input to standard JSON: %w", err)
	}
	return w.Format(plainJSONBytes)
}

// frame is one level of nesting seen while replaying a JSON document.
type frame struct {
	object bool // inside {...}
	array  bool // inside [...]
	field  bool // in an object, a key has been written and its value is next
}

func (f *frame) inArray() bool {
	if f == nil {
		return false
	}
	return f.array
}

func (f *frame) inObject() bool {
	if f == nil {
		return false
	}
	return f.object
}

// expectsKey reports whether the next string token is an object key.
func (f *frame) expectsKey() bool {
	return f.inObject() && !f.field
}

// formatterState replays decoder tokens as Writer calls.
type formatterState struct {
	w      *Writer
	frames []*frame
}

// frame returns the innermost open aggregate, or nil at the top level.
func (fs *formatterState) frame() *frame {
	if len(fs.frames) == 0 {
		return nil
	}
	return fs.frames[len(fs.frames)-1]
}

// beginValue emits whatever must precede a value in the current context.
func (fs *formatterState) beginValue() {
	if fs.frame().inArray() {
		fs.w.BeginArrayItem()
	}
}

// endValue emits the separator after a value and, inside an object, flips
// back to expecting a key.
func (fs *formatterState) endValue() {
	f := fs.frame()
	switch {
	case f.inArray():
		fs.w.EndArrayItem()
	case f.inObject():
		fs.w.EndField()
		f.field = false
	}
}

func (fs *formatterState) formatToken(t json.Token) error {
	switch value := t.(type) {
	case json.Delim:
		switch value {
		case '{', '[':
			fs.beginValue()
			if value == '{' {
				fs.w.BeginObject()
			} else {
				fs.w.BeginArray()
			}
			fs.frames = append(fs.frames, &frame{object: value == '{', array: value == '['})
		case '}', ']':
			fs.frames = fs.frames[:len(fs.frames)-1]
			if value == '}' {
				fs.w.EndObject()
			} else {
				fs.w.EndArray()
			}
			fs.endValue()
		}
		return nil
	case string:
		if f := fs.frame(); f.expectsKey() {
			fs.w.BeginField(value)
			f.field = true
			return nil
		}
		fs.beginValue()
		fs.w.WriteString(value)
	case json.Number:
		fs.beginValue()
		fs.w.writeNumber([]byte(value))
	case bool:
		fs.beginValue()
		fs.w.WriteBool(value)
	case nil:
		fs.beginValue()
		fs.w.WriteNull()
	default:
		return fmt.Errorf("jsonwriter: unknown token type %T encountered", t)
	}
	fs.endValue()
	return nil
}

// Format re-emits the single JSON value in src through w's structural calls.
// Numbers keep their original literal text; strings and keys go through the
// Writer's own escaping. Anything but whitespace after the first complete
// value is an error. On a decode error, the output written so far is left in
// the buffer.
func (w *Writer) Format(src []byte) error {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	fs := &formatterState{w: w}
	for {
		token, err := dec.Token()
		if err == io.EOF {
			if len(fs.frames) > 0 {
				return fmt.Errorf("jsonwriter: error decoding input JSON: %w", io.ErrUnexpectedEOF)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("jsonwriter: error decoding input JSON: %w", err)
		}
		if err := fs.formatToken(token); err != nil {
			return err
		}
		// The top-level value is complete.
		if len(fs.frames) == 0 {
			break
		}
	}

	switch token, err := dec.Token(); {
	case err == io.EOF:
		return nil
	case err != nil:
		return fmt.Errorf("jsonwriter: error decoding input JSON: %w", err)
	default:
		return fmt.Errorf("jsonwriter: error decoding input JSON: unexpected %v after top-level value", token)
	}
}
