// Package jsonwriter builds JSON text incrementally in memory.
//
// A Writer is driven through calls that mirror the JSON grammar:
//
//	w := jsonwriter.New()
//	w.BeginObject()
//	w.WriteStringField("name", "Bob")
//	jsonwriter.WriteIntegerField(w, "age", 42)
//	w.EndObject()
//	fmt.Println(w.String())
//
// Every member and array element is followed by a separator; closing an
// aggregate removes the last one. Output is pretty-printed with two spaces per
// level by default and may be decorated with ANSI colors per token class (see
// Palette). The Writer trusts its caller: unbalanced begin/end calls produce
// malformed output, not errors.
package jsonwriter
