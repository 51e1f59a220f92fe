package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"teens-language/config"
	"teens-language/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// wrapKey holds non-object schemas; providers in structured-output mode only
// accept an object at the root.
const wrapKey = "result"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonSchemaFormat struct {
	Name   string `json:"name"`
	Strict bool   `json:"strict"`
	Schema Schema `json:"schema"`
}

type responseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *jsonSchemaFormat `json:"json_schema,omitempty"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
		Refusal string `json:"refusal"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// OpenAIGenerator implements Generator on any OpenAI-compatible chat
// completions endpoint. Automatic retries are disabled.
type OpenAIGenerator struct {
	client      openai.Client
	model       string
	temperature float64
}

type OpenAIOptions struct {
	Key         string
	Model       string
	BaseURL     string
	Temperature float64
}

func NewOpenAIGenerator(o OpenAIOptions) *OpenAIGenerator {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if o.Key != "" {
		opts = append(opts, option.WithAPIKey(o.Key))
	}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	return &OpenAIGenerator{
		client:      openai.NewClient(opts...),
		model:       o.Model,
		temperature: o.Temperature,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, p Prompt) (json.RawMessage, error) {
	schema, wrapped := objectRoot(p.Schema)

	msgs := make([]chatMessage, 0, 2)
	if p.System != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: p.System})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: p.User})

	req := chatRequest{
		Model:       g.model,
		Messages:    msgs,
		Temperature: g.temperature,
	}
	if schema != nil {
		req.ResponseFormat = &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchemaFormat{
				Name:   p.Name,
				Strict: true,
				Schema: schema,
			},
		}
	}

	var out chatResponse
	if err := g.client.Post(ctx, "/chat/completions", req, &out); err != nil {
		logger.Error(err, "%v: chat completion %s failed", config.ModuleOpenAI, p.Name)
		return nil, &TransportError{Op: p.Name, Err: err}
	}
	if len(out.Choices) == 0 {
		return nil, &TransportError{Op: p.Name, Err: errors.New("no choices returned")}
	}
	msg := out.Choices[0].Message
	if msg.Refusal != "" {
		return nil, &ValidationError{Op: p.Name, Err: errors.New("model refused: " + msg.Refusal)}
	}

	content := StripFences([]byte(strings.TrimSpace(msg.Content)))
	// Providers that ignore response_format answer with the bare array.
	if !wrapped || bytes.HasPrefix(content, []byte("[")) {
		return content, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(content, &envelope); err != nil {
		return nil, &ValidationError{Op: p.Name, Err: err}
	}
	inner, ok := envelope[wrapKey]
	if !ok {
		return nil, &ValidationError{Op: p.Name, Err: errors.New("missing " + wrapKey + " property")}
	}
	return inner, nil
}

// Ping checks that the provider accepts our credentials.
func (g *OpenAIGenerator) Ping(ctx context.Context) error {
	if _, err := g.client.Models.List(ctx); err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	return nil
}

func objectRoot(s Schema) (Schema, bool) {
	if s == nil {
		return nil, false
	}
	if t, _ := s["type"].(string); t == "object" {
		return s, false
	}
	return Schema{
		"type":                 "object",
		"properties":           map[string]any{wrapKey: s},
		"required":             []string{wrapKey},
		"additionalProperties": false,
	}, true
}
