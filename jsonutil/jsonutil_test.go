package jsonutil

import (
	"bytes"
	"testing"
)

func TestMarshal(t *testing.T) {
	document := map[string]interface{}{"body": "<span>hi there</span>", "statusCode": 200}

	b, err := Marshal(document, false)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != `{"body":"<span>hi there</span>","statusCode":200}` {
		t.Error(s)
	}

	b, err = Marshal(document, true)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != "{\n\t\"body\": \"<span>hi there</span>\",\n\t\"statusCode\": 200\n}" {
		t.Error(s)
	}
}

func TestPrettyPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	PrettyPrint(buf, []interface{}{"howdy"})
	if s := buf.String(); s != "[\n\t\"howdy\"\n]\n" {
		t.Errorf("%q", s)
	}
}
