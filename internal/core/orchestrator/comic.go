package orchestrator

import (
	"context"
	"errors"
	"teens-language/config"
	"teens-language/internal/core/comic"
	"teens-language/internal/core/locale"
	"teens-language/pkg/logger"
)

var errEmptyImage = errors.New("illustrator returned no image")

// Comic renders the illustration for req and returns it as a data URI.
func (s *Service) Comic(ctx context.Context, req comic.Request) (string, error) {
	if !req.Language.Valid() {
		return "", newLocalized(locale.English, locale.UnsupportedLanguage, locale.ErrUnsupportedLanguage)
	}

	img, err := s.illustrator.Illustrate(ctx, req)
	if err != nil {
		logger.Error(err, "%v: comic for %q failed", config.ModuleComic, req.TermPhrase)
		return "", newLocalized(req.Language, locale.Unexpected, err)
	}
	if img.IsZero() {
		logger.Warn("%v: empty comic for %q", config.ModuleComic, req.TermPhrase)
		return "", newLocalized(req.Language, locale.ComicGenerationFailed, errEmptyImage)
	}
	return img.DataURI(), nil
}

// GenerateComic is Comic in the {data, error} shape.
func (s *Service) GenerateComic(ctx context.Context, req comic.Request) Outcome[string] {
	uri, err := s.Comic(ctx, req)
	return outcome(uri, err)
}
