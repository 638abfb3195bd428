// Command jsonwriter-demo prints a small sample document built with a Writer.
// Colors are used when stdout is a terminal and NO_COLOR is not set.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amterp/color"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"

	"github.com/amterp/jsonwriter"
)

type child struct {
	name  string
	age   int
	adult bool
}

func buildDocument(w *jsonwriter.Writer) {
	w.BeginObject()

	w.WriteStringField("name", "Bob")
	jsonwriter.WriteIntegerField(w, "age", 42)
	w.WriteBoolField("is_adult", true)
	jsonwriter.WriteFloatField(w, "height", 175.6)

	w.BeginField("children")
	jsonwriter.WriteArray(w, []child{
		{name: "Alice", age: 10},
		{name: "Charlie", age: 8},
	}, func(w *jsonwriter.Writer, c child) {
		w.BeginObject()
		w.WriteStringField("name", c.name)
		jsonwriter.WriteIntegerField(w, "age", c.age)
		w.WriteBoolField("is_adult", c.adult)
		w.EndObject()
	})
	w.EndField()

	w.WriteNullField("extra")

	w.EndObject()
}

// colorsWanted reports whether stdout should get ANSI colors. color.NoColor
// is already false only for a terminal stdout without NO_COLOR or TERM=dumb.
func colorsWanted() bool {
	return !color.NoColor
}

func run(out io.Writer, useColors bool) error {
	w := jsonwriter.New(jsonwriter.WithColors(useColors))
	buildDocument(w)
	if _, err := fmt.Fprintln(out, w.String()); err != nil {
		return fmt.Errorf("jsonwriter-demo: failed to write output: %w", err)
	}
	return nil
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := run(colorable.NewColorableStdout(), colorsWanted()); err != nil {
		log.WithError(err).Fatal("demo failed")
	}
}
