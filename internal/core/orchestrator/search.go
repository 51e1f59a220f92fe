// Package orchestrator is the entry point used by the presentation layer. It
// fans out to the remote collaborators and turns every failure into a fixed,
// localized message.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"teens-language/config"
	"teens-language/internal/core/interpret"
	"teens-language/internal/core/locale"
	"teens-language/pkg/logger"

	"golang.org/x/sync/errgroup"
)

var errNoMeaning = errors.New("interpretation has no meaning")

type Service struct {
	interpreter Interpreter
	suggester   Suggester
	illustrator Illustrator
}

func NewService(interpreter Interpreter, suggester Suggester, illustrator Illustrator) *Service {
	return &Service{
		interpreter: interpreter,
		suggester:   suggester,
		illustrator: illustrator,
	}
}

// Search interprets query and collects related terms. Both remote calls run
// concurrently and are always awaited; a failure in one does not cancel the
// other. Every error returned is a *LocalizedError.
func (s *Service) Search(ctx context.Context, query string, lang locale.Language) (SearchResult, error) {
	if !lang.Valid() {
		return SearchResult{}, newLocalized(locale.English, locale.UnsupportedLanguage, locale.ErrUnsupportedLanguage)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, newLocalized(lang, locale.EmptyQuery, nil)
	}

	var (
		interpretation interpret.Result
		related        []string
		g              errgroup.Group
	)
	g.Go(func() error {
		var err error
		interpretation, err = s.interpreter.Interpret(ctx, query, lang)
		return err
	})
	g.Go(func() error {
		var err error
		related, err = s.suggester.Suggest(ctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error(err, "%v: search %q failed", config.ModuleSearch, query)
		return SearchResult{}, newLocalized(lang, locale.Unexpected, err)
	}

	if strings.TrimSpace(interpretation.Meaning) == "" {
		logger.Warn("%v: no interpretation for %q", config.ModuleSearch, query)
		return SearchResult{}, newLocalized(lang, locale.NoInterpretation, errNoMeaning)
	}

	return SearchResult{Interpretation: interpretation, RelatedTerms: related}, nil
}

// PerformSearch is Search in the {data, error} shape.
func (s *Service) PerformSearch(ctx context.Context, query string, lang locale.Language) Outcome[SearchResult] {
	res, err := s.Search(ctx, query, lang)
	return outcome(res, err)
}
