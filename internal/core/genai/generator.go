// Package genai models the "prompt + schema in, validated JSON out" capability
// of a generative-language provider.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Schema is a JSON Schema document.
type Schema map[string]any

// Prompt is one structured generation request.
type Prompt struct {
	// Name identifies the request in logs and in provider schema metadata.
	Name   string
	System string
	User   string
	Schema Schema
}

// Generator sends a prompt to a model and returns the raw JSON it produced.
// Implementations report remote failures as *TransportError.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (json.RawMessage, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Structured runs p on g and decodes the answer into T, enforcing both the JSON
// shape and any `validate` tags on T.
func Structured[T any](ctx context.Context, g Generator, p Prompt) (T, error) {
	var out T
	raw, err := g.Generate(ctx, p)
	if err != nil {
		var te *TransportError
		var ve *ValidationError
		if errors.As(err, &te) || errors.As(err, &ve) {
			return out, err
		}
		return out, &TransportError{Op: p.Name, Err: err}
	}
	if err := Decode(p.Name, raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Decode unmarshals raw into out and validates it. Markdown code fences around
// the JSON are tolerated.
func Decode(op string, raw []byte, out any) error {
	body := StripFences(raw)
	if len(body) == 0 {
		return &ValidationError{Op: op, Err: errors.New("empty response")}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ValidationError{Op: op, Err: err}
	}

	v := reflect.Indirect(reflect.ValueOf(out))
	switch v.Kind() {
	case reflect.Struct:
		if err := validate.Struct(v.Interface()); err != nil {
			return &ValidationError{Op: op, Err: err}
		}
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return &ValidationError{Op: op, Err: fmt.Errorf("expected %s, got null", v.Kind())}
		}
	}
	return nil
}

// StripFences removes a surrounding ```json ... ``` block, if any.
func StripFences(raw []byte) []byte {
	b := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	b = bytes.TrimPrefix(b, []byte("```"))
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[i+1:]
	} else {
		b = bytes.TrimPrefix(b, []byte("json"))
	}
	b = bytes.TrimSpace(b)
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
