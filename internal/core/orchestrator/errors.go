package orchestrator

import (
	"errors"
	"teens-language/internal/core/locale"
)

// LocalizedError is the only error shape that leaves the orchestrator. Message
// is safe to show to users; Err is for logs.
type LocalizedError struct {
	Key      locale.Key
	Language locale.Language
	Message  string
	Err      error
}

func newLocalized(lang locale.Language, key locale.Key, cause error) *LocalizedError {
	return &LocalizedError{
		Key:      key,
		Language: lang,
		Message:  locale.Message(lang, key),
		Err:      cause,
	}
}

func (e *LocalizedError) Error() string { return e.Message }

func (e *LocalizedError) Unwrap() error { return e.Err }

func AsLocalized(err error) (*LocalizedError, bool) {
	var le *LocalizedError
	ok := errors.As(err, &le)
	return le, ok
}
