// Package schema describes, in JSON Schema, what a well-formed handler
// response looks like in each gateway generation and validates response
// fixtures against those descriptions.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/src-bin/gatewayfixtures/gateway"
)

const baseURL = "https://src-bin.com/gatewayfixtures/schemas/"

//go:embed schemas/*.json
var fs embed.FS

var (
	compileOnce sync.Once
	compiled    map[gateway.Generation]*jsonschema.Schema
	compileErr  error
)

// Source returns the JSON Schema document for responses of the given
// generation.
func Source(g gateway.Generation) ([]byte, error) {
	name, err := filename(g)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile("schemas/" + name)
}

// Validate checks a response fixture against its generation's schema. It
// returns a *ValidationError if the response is malformed.
func Validate(r gateway.Response) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return ValidateJSON(r.Generation, b)
}

// ValidateJSON checks an encoded handler response against the schema of the
// given generation.
func ValidateJSON(g gateway.Generation, b []byte) error {
	sch, err := load(g)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	err = sch.Validate(v)
	var vErr *jsonschema.ValidationError
	if errors.As(err, &vErr) {
		return newValidationError(g, vErr)
	}
	return err
}

type ValidationError struct {
	Generation gateway.Generation
	Problems   []Problem
}

func newValidationError(g gateway.Generation, err *jsonschema.ValidationError) *ValidationError {
	vErr := &ValidationError{Generation: g}
	var walk func(*jsonschema.ValidationError)
	walk = func(err *jsonschema.ValidationError) {
		if len(err.Causes) == 0 {
			vErr.Problems = append(vErr.Problems, Problem{
				InstanceLocation: err.InstanceLocation,
				Message:          err.Message,
			})
		}
		for _, cause := range err.Causes {
			walk(cause)
		}
	}
	walk(err)
	sort.Slice(vErr.Problems, func(i, j int) bool {
		return vErr.Problems[i].InstanceLocation < vErr.Problems[j].InstanceLocation
	})
	return vErr
}

func (err *ValidationError) Error() string {
	ss := make([]string, len(err.Problems))
	for i, p := range err.Problems {
		ss[i] = p.String()
	}
	return fmt.Sprintf("invalid %s response: %s", err.Generation, strings.Join(ss, "; "))
}

// InstanceLocations lists the JSON pointers of every offending value.
func (err *ValidationError) InstanceLocations() []string {
	ss := make([]string, len(err.Problems))
	for i, p := range err.Problems {
		ss[i] = p.InstanceLocation
	}
	return ss
}

type Problem struct {
	InstanceLocation string // JSON pointer, "" for the document itself
	Message          string
}

func (p Problem) String() string {
	location := p.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, p.Message)
}

func filename(g gateway.Generation) (string, error) {
	switch g {
	case gateway.Legacy:
		return "legacy.json", nil
	case gateway.V1:
		return "v1.json", nil
	case gateway.V2:
		return "v2.json", nil
	}
	return "", gateway.GenerationError(g.String())
}

func load(g gateway.Generation) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compile()
	})
	if compileErr != nil {
		return nil, compileErr
	}
	sch, ok := compiled[g]
	if !ok {
		return nil, gateway.GenerationError(g.String())
	}
	return sch, nil
}

func compile() (map[gateway.Generation]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	generations := []gateway.Generation{gateway.Legacy, gateway.V1, gateway.V2}
	for _, g := range generations {
		b, err := Source(g)
		if err != nil {
			return nil, err
		}
		name, _ := filename(g)
		if err := c.AddResource(baseURL+name, bytes.NewReader(b)); err != nil {
			return nil, err
		}
	}
	m := make(map[gateway.Generation]*jsonschema.Schema, len(generations))
	for _, g := range generations {
		name, _ := filename(g)
		sch, err := c.Compile(baseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", name, err)
		}
		m[g] = sch
	}
	return m, nil
}
