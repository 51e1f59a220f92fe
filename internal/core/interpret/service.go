// Package interpret asks the generative model to explain a youth-language
// term, phrase, abbreviation or emoji.
package interpret

import (
	"context"
	"fmt"
	"strings"
	"teens-language/config"
	"teens-language/internal/core/genai"
	"teens-language/internal/core/locale"
	"teens-language/pkg/logger"
)

const promptName = "interpret_youth_language"

func stringField(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func stringList(desc string) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": map[string]any{"type": "string"}}
}

var schema = genai.Schema{
	"type": "object",
	"properties": map[string]any{
		"termPhrase":         stringField("The entered term or phrase."),
		"platform":           stringField("The platform where the term is commonly used (e.g., Instagram, TikTok, WhatsApp)."),
		"meaning":            stringField("A brief description of the meaning of the term."),
		"linguisticCategory": stringField("The linguistic category of the term (e.g., Emoji, Abbreviation, Slang)."),
		"socialCategory":     stringField("The social category of the term (e.g., Social Communication, Emotional Expression)."),
		"explanation":        stringField("A detailed explanation of the term and its usage."),
		"exampleSentences":   stringList("Example sentences showing how the term is used in daily conversation."),
		"references":         stringList("Links to references for further reading."),
	},
	"required": []string{
		"termPhrase", "platform", "meaning", "linguisticCategory",
		"socialCategory", "explanation", "exampleSentences", "references",
	},
	"additionalProperties": false,
}

// Service interprets queries through a genai.Generator.
type Service struct {
	gen genai.Generator
}

func NewService(gen genai.Generator) *Service {
	return &Service{gen: gen}
}

// Interpret returns the interpretation of query written in lang. It fails with
// *genai.TransportError or *genai.ValidationError.
func (s *Service) Interpret(ctx context.Context, query string, lang locale.Language) (Result, error) {
	if !lang.Valid() {
		return Result{}, fmt.Errorf("%w: %q", locale.ErrUnsupportedLanguage, lang)
	}
	p, err := genai.Structured[payload](ctx, s.gen, BuildPrompt(query, lang))
	if err != nil {
		logger.Error(err, "%v: interpret %q failed", config.ModuleInterpreter, query)
		return Result{}, err
	}
	return p.result(), nil
}

// BuildPrompt renders the interpretation prompt for query in lang.
func BuildPrompt(query string, lang locale.Language) genai.Prompt {
	name := lang.Name()

	var b strings.Builder
	b.WriteString("You are an expert in modern youth language and culture. Given a keyword, phrase, abbreviation, or emoji, ")
	b.WriteString("you will provide a detailed interpretation of its meaning and usage.\n\n")
	fmt.Fprintf(&b, "Your entire response, including all fields, must be in %s (language code %q).\n", name, string(lang))
	b.WriteString("Platform names stay as they are. Reference URLs are never translated.\n\n")
	b.WriteString("Fill in:\n")
	b.WriteString("- termPhrase: the entered term or phrase.\n")
	fmt.Fprintf(&b, "- platform: where the term is commonly used (e.g., Instagram, TikTok, WhatsApp); any description in %s.\n", name)
	fmt.Fprintf(&b, "- meaning: a brief description of the meaning, in %s.\n", name)
	fmt.Fprintf(&b, "- linguisticCategory: e.g. Emoji, Abbreviation, Slang, in %s.\n", name)
	fmt.Fprintf(&b, "- socialCategory: e.g. Social Communication, Emotional Expression, in %s.\n", name)
	fmt.Fprintf(&b, "- explanation: a detailed explanation of the term and its usage, in %s.\n", name)
	fmt.Fprintf(&b, "- exampleSentences: 2-3 sentences showing the term in daily conversation, in %s.\n", name)
	b.WriteString("- references: links for further reading.\n")
	b.WriteString("If you do not know the term, return an empty meaning.\n")
	b.WriteString("Respond with ONLY a JSON object matching the schema.")

	return genai.Prompt{
		Name:   promptName,
		System: b.String(),
		User:   fmt.Sprintf("Analyze the following input:\n%s", query),
		Schema: schema,
	}
}
