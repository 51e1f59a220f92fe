package orchestrator

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync/atomic"
	"teens-language/internal/core/comic"
	"teens-language/internal/core/genai"
	"teens-language/internal/core/interpret"
	"teens-language/internal/core/locale"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type interpreterFunc func(ctx context.Context, query string, lang locale.Language) (interpret.Result, error)

func (f interpreterFunc) Interpret(ctx context.Context, query string, lang locale.Language) (interpret.Result, error) {
	return f(ctx, query, lang)
}

type suggesterFunc func(ctx context.Context, query string) ([]string, error)

func (f suggesterFunc) Suggest(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}

type illustratorFunc func(ctx context.Context, req comic.Request) (comic.Image, error)

func (f illustratorFunc) Illustrate(ctx context.Context, req comic.Request) (comic.Image, error) {
	return f(ctx, req)
}

var lol = interpret.Result{
	TermPhrase:         "lol",
	Platform:           "WhatsApp",
	Meaning:            "Laughing out loud.",
	LinguisticCategory: "Abbreviation",
	SocialCategory:     "Emotional Expression",
	Explanation:        "Used to show something is funny.",
	ExampleSentences:   []string{"lol that's wild", "I was lol-ing"},
	References:         []string{"https://en.wikipedia.org/wiki/LOL"},
}

func staticInterpreter(res interpret.Result, err error, calls *atomic.Int32) Interpreter {
	return interpreterFunc(func(context.Context, string, locale.Language) (interpret.Result, error) {
		if calls != nil {
			calls.Add(1)
		}
		return res, err
	})
}

func staticSuggester(terms []string, err error, calls *atomic.Int32) Suggester {
	return suggesterFunc(func(context.Context, string) ([]string, error) {
		if calls != nil {
			calls.Add(1)
		}
		return terms, err
	})
}

func requireLocalized(t *testing.T, err error, lang locale.Language, key locale.Key) *LocalizedError {
	t.Helper()
	le, ok := AsLocalized(err)
	require.True(t, ok, "expected *LocalizedError, got %v", err)
	assert.Equal(t, key, le.Key)
	assert.Equal(t, locale.Message(lang, key), le.Message)
	return le
}

func TestSearch_EmptyQueryMakesNoCalls(t *testing.T) {
	var ic, sc atomic.Int32
	svc := NewService(staticInterpreter(lol, nil, &ic), staticSuggester(nil, nil, &sc), nil)

	for _, q := range []string{"", " ", "\t\n "} {
		for _, lang := range locale.Supported() {
			_, err := svc.Search(context.Background(), q, lang)
			requireLocalized(t, err, lang, locale.EmptyQuery)
		}
	}
	assert.Zero(t, ic.Load())
	assert.Zero(t, sc.Load())
}

func TestSearch_UnsupportedLanguage(t *testing.T) {
	var ic atomic.Int32
	svc := NewService(staticInterpreter(lol, nil, &ic), staticSuggester(nil, nil, nil), nil)

	_, err := svc.Search(context.Background(), "lol", locale.Language("fr"))
	requireLocalized(t, err, locale.English, locale.UnsupportedLanguage)
	assert.ErrorIs(t, err, locale.ErrUnsupportedLanguage)
	assert.Zero(t, ic.Load())
}

func TestSearch_Success(t *testing.T) {
	related := []string{"lmao", "😂"}
	svc := NewService(staticInterpreter(lol, nil, nil), staticSuggester(related, nil, nil), nil)

	res, err := svc.Search(context.Background(), "lol", locale.English)
	require.NoError(t, err)
	assert.Equal(t, lol, res.Interpretation)
	assert.Equal(t, related, res.RelatedTerms)
}

func TestSearch_EmptyRelatedTermsStillSucceeds(t *testing.T) {
	svc := NewService(staticInterpreter(lol, nil, nil), staticSuggester([]string{}, nil, nil), nil)

	res, err := svc.Search(context.Background(), "lol", locale.Indonesian)
	require.NoError(t, err)
	assert.Equal(t, lol, res.Interpretation)
	assert.Empty(t, res.RelatedTerms)
}

func TestSearch_EmptyMeaning(t *testing.T) {
	blank := lol
	blank.Meaning = "  "
	svc := NewService(staticInterpreter(blank, nil, nil), staticSuggester([]string{"x"}, nil, nil), nil)

	_, err := svc.Search(context.Background(), "qwzx", locale.Indonesian)
	le := requireLocalized(t, err, locale.Indonesian, locale.NoInterpretation)
	var te *genai.TransportError
	assert.False(t, errors.As(le, &te))
}

func TestSearch_RemoteFailuresAreCollapsed(t *testing.T) {
	secret := "dial tcp 10.0.0.1:443: connection refused"
	cases := map[string]*Service{
		"interpreter transport": NewService(
			staticInterpreter(interpret.Result{}, &genai.TransportError{Op: "i", Err: errors.New(secret)}, nil),
			staticSuggester([]string{"x"}, nil, nil), nil),
		"suggester validation": NewService(
			staticInterpreter(lol, nil, nil),
			staticSuggester(nil, &genai.ValidationError{Op: "s", Err: errors.New(secret)}, nil), nil),
		"both": NewService(
			staticInterpreter(interpret.Result{}, errors.New(secret), nil),
			staticSuggester(nil, errors.New(secret), nil), nil),
	}
	for name, svc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), "lol", locale.English)
			requireLocalized(t, err, locale.English, locale.Unexpected)
			assert.NotContains(t, err.Error(), secret)

			out := svc.PerformSearch(context.Background(), "lol", locale.English)
			assert.Nil(t, out.Data)
			require.NotNil(t, out.Error)
			assert.Equal(t, locale.Message(locale.English, locale.Unexpected), *out.Error)
		})
	}
}

func TestSearch_FailureDoesNotAbandonOtherCall(t *testing.T) {
	var suggesterDone atomic.Bool
	svc := NewService(
		staticInterpreter(interpret.Result{}, errors.New("boom"), nil),
		suggesterFunc(func(ctx context.Context, _ string) ([]string, error) {
			time.Sleep(50 * time.Millisecond)
			if ctx.Err() == nil {
				suggesterDone.Store(true)
			}
			return []string{"x"}, nil
		}),
		nil,
	)

	_, err := svc.Search(context.Background(), "lol", locale.English)
	requireLocalized(t, err, locale.English, locale.Unexpected)
	assert.True(t, suggesterDone.Load())
}

func TestSearch_CallsRunConcurrently(t *testing.T) {
	interpStarted := make(chan struct{})
	suggestStarted := make(chan struct{})
	waitFor := func(ch chan struct{}) error {
		select {
		case <-ch:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("peer call never started")
		}
	}

	svc := NewService(
		interpreterFunc(func(context.Context, string, locale.Language) (interpret.Result, error) {
			close(interpStarted)
			if err := waitFor(suggestStarted); err != nil {
				return interpret.Result{}, err
			}
			return lol, nil
		}),
		suggesterFunc(func(context.Context, string) ([]string, error) {
			close(suggestStarted)
			if err := waitFor(interpStarted); err != nil {
				return nil, err
			}
			return []string{"lmao"}, nil
		}),
		nil,
	)

	res, err := svc.Search(context.Background(), "lol", locale.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"lmao"}, res.RelatedTerms)
}

func TestSearch_LatencyIsTheSlowerCall(t *testing.T) {
	const unit = 100 * time.Millisecond
	svc := NewService(
		interpreterFunc(func(context.Context, string, locale.Language) (interpret.Result, error) {
			time.Sleep(3 * unit)
			return lol, nil
		}),
		suggesterFunc(func(context.Context, string) ([]string, error) {
			time.Sleep(unit)
			return nil, nil
		}),
		nil,
	)

	start := time.Now()
	_, err := svc.Search(context.Background(), "lol", locale.English)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 3*unit)
	assert.Less(t, elapsed, 4*unit)
}

func TestPerformSearch_Success(t *testing.T) {
	svc := NewService(staticInterpreter(lol, nil, nil), staticSuggester([]string{"lmao"}, nil, nil), nil)

	out := svc.PerformSearch(context.Background(), "lol", locale.English)
	assert.Nil(t, out.Error)
	require.NotNil(t, out.Data)
	assert.Equal(t, lol, out.Data.Interpretation)
}

func friendRequest() comic.Request {
	return comic.Request{
		TermPhrase:       "Meeting a friend",
		ExampleSentences: []string{"Hi there!", "Long time no see.", "How have you been?", "Great, thanks!"},
		Language:         locale.English,
	}
}

func TestComic_Success(t *testing.T) {
	bytes := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	var got comic.Request
	svc := NewService(nil, nil, illustratorFunc(func(_ context.Context, req comic.Request) (comic.Image, error) {
		got = req
		return comic.Image{MimeType: comic.DefaultMimeType, Data: bytes}, nil
	}))

	uri, err := svc.Comic(context.Background(), friendRequest())
	require.NoError(t, err)
	assert.Equal(t, friendRequest(), got)
	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, bytes, decoded)
}

func TestComic_EmptyImage(t *testing.T) {
	svc := NewService(nil, nil, illustratorFunc(func(context.Context, comic.Request) (comic.Image, error) {
		return comic.Image{}, nil
	}))

	req := friendRequest()
	req.Language = locale.Indonesian
	out := svc.GenerateComic(context.Background(), req)
	assert.Nil(t, out.Data)
	require.NotNil(t, out.Error)
	assert.Equal(t, locale.Message(locale.Indonesian, locale.ComicGenerationFailed), *out.Error)
}

func TestComic_IllustratorFailure(t *testing.T) {
	svc := NewService(nil, nil, illustratorFunc(func(context.Context, comic.Request) (comic.Image, error) {
		return comic.Image{}, &genai.TransportError{Op: "comic", Err: errors.New("failed to fetch image: 500")}
	}))

	_, err := svc.Comic(context.Background(), friendRequest())
	le := requireLocalized(t, err, locale.English, locale.Unexpected)
	assert.NotContains(t, le.Message, "500")
	var te *genai.TransportError
	assert.ErrorAs(t, err, &te)
}

func TestComic_UnsupportedLanguage(t *testing.T) {
	var calls atomic.Int32
	svc := NewService(nil, nil, illustratorFunc(func(context.Context, comic.Request) (comic.Image, error) {
		calls.Add(1)
		return comic.Image{}, nil
	}))

	req := friendRequest()
	req.Language = "de"
	_, err := svc.Comic(context.Background(), req)
	requireLocalized(t, err, locale.English, locale.UnsupportedLanguage)
	assert.Zero(t, calls.Load())
}
