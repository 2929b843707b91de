package tools

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/llmutils"
	"github.com/effective-security/safeagents/pkg/schema"
)

// FuncTool is a Tool backed by a plain function with a typed input and output.
// The parameter schema is reflected from the input type.
type FuncTool[I any, O any] struct {
	name        string
	description string
	funcParams  any
	fn          func(context.Context, *I) (*O, error)
}

// NewTool creates a tool from the given function. The input type's schema
// is derived from its jsonschema struct tags.
func NewTool[I any, O any](name, description string, fn func(context.Context, *I) (*O, error)) (*FuncTool[I, O], error) {
	var def I
	sc, err := schema.New(reflect.TypeOf(def))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &FuncTool[I, O]{
		name:        name,
		description: description,
		funcParams:  sc.Parameters,
		fn:          fn,
	}
	return t, nil
}

var _ ITool = (*FuncTool[any, any])(nil)

func (t *FuncTool[I, O]) Name() string {
	return t.name
}

func (t *FuncTool[I, O]) Description() string {
	return t.description
}

func (t *FuncTool[I, O]) Parameters() any {
	return t.funcParams
}

// Call parses the JSON input, runs the function and returns the result as JSON.
func (t *FuncTool[I, O]) Call(ctx context.Context, input string) (string, error) {
	var tin I
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &tin); err != nil {
		return "", errors.WithStack(ErrFailedUnmarshalInput)
	}
	out, err := t.Run(ctx, &tin)
	if err != nil {
		return "", err
	}
	return llmutils.ToJSON(out), nil
}

// Run executes the tool with the typed input.
func (t *FuncTool[I, O]) Run(ctx context.Context, req *I) (*O, error) {
	return t.fn(ctx, req)
}
