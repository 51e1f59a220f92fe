// Package suggest asks the generative model for terms related to a query.
package suggest

import (
	"context"
	"fmt"
	"teens-language/config"
	"teens-language/internal/core/genai"
	"teens-language/pkg/logger"
)

const promptName = "suggest_related_terms"

var schema = genai.Schema{
	"type":        "array",
	"description": "Related terms, phrases, or emojis.",
	"items":       map[string]any{"type": "string", "description": "A related term, phrase, or emoji."},
}

type Service struct {
	gen genai.Generator
}

func NewService(gen genai.Generator) *Service {
	return &Service{gen: gen}
}

// Suggest returns related terms in the order the model produced them. An
// empty list is a valid answer.
func (s *Service) Suggest(ctx context.Context, query string) ([]string, error) {
	terms, err := genai.Structured[[]string](ctx, s.gen, BuildPrompt(query))
	if err != nil {
		logger.Error(err, "%v: suggest %q failed", config.ModuleSuggester, query)
		return nil, err
	}
	return terms, nil
}

func BuildPrompt(query string) genai.Prompt {
	return genai.Prompt{
		Name: promptName,
		User: fmt.Sprintf("Suggest related terms, phrases, or emojis for the following search query. "+
			"Respond with JSON matching the schema: an array of strings, one term per item.\n\nSearch Query: %s", query),
		Schema: schema,
	}
}
