package comic

import (
	"encoding/base64"
	"fmt"
	"strings"
	"teens-language/internal/core/locale"
)

// Request describes the comic to draw for a term.
type Request struct {
	TermPhrase       string          `json:"termPhrase"`
	ExampleSentences []string        `json:"exampleSentences"`
	Language         locale.Language `json:"language"`
}

// Image is a rendered comic held in memory.
type Image struct {
	MimeType string
	Data     []byte
}

func (i Image) IsZero() bool {
	return len(i.Data) == 0
}

// DataURI encodes the image as data:<mime>;base64,<payload>.
func (i Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MimeType, base64.StdEncoding.EncodeToString(i.Data))
}

// ParseDataURI is the inverse of Image.DataURI.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, fmt.Errorf("not a data uri")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("data uri without payload")
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return Image{}, fmt.Errorf("data uri is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode payload: %w", err)
	}
	return Image{MimeType: mime, Data: data}, nil
}
