// Package comic renders a four-panel comic for a term through an external
// image-generation endpoint.
package comic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"teens-language/config"
	"teens-language/internal/core/genai"
	"teens-language/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

// DefaultMimeType is the label put on every image unless detection is on.
const DefaultMimeType = "image/jpeg"

const opName = "generate_comic_strip"

type Options struct {
	BaseURL        string
	Width          int
	Height         int
	Model          string
	NoLogo         bool
	UserAgent      string
	DetectMimeType bool
}

// Illustrator calls the image endpoint once per request. The http.Client has
// no timeout unless the caller configured one.
type Illustrator struct {
	client *http.Client
	opts   Options
}

func NewIllustrator(client *http.Client, opts Options) *Illustrator {
	if client == nil {
		client = &http.Client{}
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Illustrator{client: client, opts: opts}
}

// Illustrate fetches the rendered comic. Network failures and non-2xx answers
// are reported as *genai.TransportError. An empty body yields a zero Image.
func (il *Illustrator) Illustrate(ctx context.Context, req Request) (Image, error) {
	prompt := BuildPrompt(req.TermPhrase, req.ExampleSentences)
	endpoint := il.endpoint(prompt)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Image{}, &genai.TransportError{Op: opName, Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("User-Agent", il.opts.UserAgent)

	resp, err := il.client.Do(httpReq)
	if err != nil {
		logger.Error(err, "%v: image request failed", config.ModuleIllustrator)
		return Image{}, &genai.TransportError{Op: opName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("failed to fetch image: %d", resp.StatusCode)
		logger.Error(err, "%v: image endpoint rejected request", config.ModuleIllustrator)
		return Image{}, &genai.TransportError{Op: opName, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, &genai.TransportError{Op: opName, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) == 0 {
		return Image{}, nil
	}

	logger.WithFields(map[string]interface{}{
		"module":       config.ModuleIllustrator,
		"bytes":        len(body),
		"content_type": resp.Header.Get("Content-Type"),
	}).Debug("comic image fetched")

	return Image{MimeType: il.mimeOf(body), Data: body}, nil
}

func (il *Illustrator) mimeOf(body []byte) string {
	if !il.opts.DetectMimeType {
		return DefaultMimeType
	}
	if m := mimetype.Detect(body); strings.HasPrefix(m.String(), "image/") {
		return m.String()
	}
	return DefaultMimeType
}

func (il *Illustrator) endpoint(prompt string) string {
	q := url.Values{}
	q.Set("width", strconv.Itoa(il.opts.Width))
	q.Set("height", strconv.Itoa(il.opts.Height))
	q.Set("nologo", strconv.FormatBool(il.opts.NoLogo))
	q.Set("model", il.opts.Model)
	return il.opts.BaseURL + "/prompt/" + EscapePrompt(prompt) + "?" + q.Encode()
}

// EscapePrompt percent-encodes prompt as a single path segment.
func EscapePrompt(prompt string) string {
	return strings.ReplaceAll(url.QueryEscape(prompt), "+", "%20")
}

// BuildPrompt describes the comic for term using its example sentences as the
// scene.
func BuildPrompt(term string, sentences []string) string {
	scene := strings.Join(lo.Map(sentences, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), " ")
	return fmt.Sprintf("Minimalist 4-panel comic strip illustration, simple line art style, black and white cartoon. "+
		"Theme: \"%s\". Scene description: %s. Clean, expressive characters. "+
		"No text, no speech bubbles, visual storytelling only.", term, scene)
}
