package orchestrator

import (
	"context"
	"teens-language/internal/core/comic"
	"teens-language/internal/core/interpret"
	"teens-language/internal/core/locale"
)

type Interpreter interface {
	Interpret(ctx context.Context, query string, lang locale.Language) (interpret.Result, error)
}

type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

type Illustrator interface {
	Illustrate(ctx context.Context, req comic.Request) (comic.Image, error)
}

// SearchResult pairs an interpretation with its related terms.
type SearchResult struct {
	Interpretation interpret.Result `json:"interpretation"`
	RelatedTerms   []string         `json:"relatedTerms"`
}

// Outcome is the {data, error} shape handed to the presentation layer.
// Exactly one of the two fields is set.
type Outcome[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
}

func outcome[T any](data T, err error) Outcome[T] {
	if err != nil {
		msg := err.Error()
		if le, ok := AsLocalized(err); ok {
			msg = le.Message
		}
		return Outcome[T]{Error: &msg}
	}
	return Outcome[T]{Data: &data}
}
