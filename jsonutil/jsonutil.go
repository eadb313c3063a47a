package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/src-bin/gatewayfixtures/ui"
)

// Marshal is json.Marshal without HTML escaping, optionally indented with
// tabs. The result has no trailing newline.
func Marshal(document interface{}, indent bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "\t")
	}
	if err := enc.Encode(document); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func PrettyPrint(w io.Writer, i interface{}) {
	b, err := Marshal(i, true)
	if err != nil {
		ui.Fatal(err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		ui.Fatal(err)
	}
}
