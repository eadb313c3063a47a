package cmdutil

import (
	"encoding/json"
	"os"

	"github.com/src-bin/gatewayfixtures/jsonutil"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Extension is the filename extension of documents in the given format.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatText:
		return ".txt"
	}
	return ".json"
}

// IsTerminal reports whether standard output is a terminal, in which case
// JSON is worth indenting.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Serialize renders a JSON document, given either as a value or already
// encoded as a json.RawMessage, in the given format. YAML is converted from
// the JSON encoding so that it uses the same field names.
func Serialize(document interface{}, format Format, indent bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return jsonutil.Marshal(document, indent)
	case FormatYAML:
		b, err := jsonutil.Marshal(document, false)
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	}
	return nil, FormatFlagError(format)
}
