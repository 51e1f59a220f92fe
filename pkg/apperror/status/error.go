package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   1000-1999: Search
//   2000-2999: Comic
//   9000-9999: Platform

const (
	SearchBase ErrorCode = 1000
	ComicBase  ErrorCode = 2000
)

// Search client errors start at 1000, upstream failures at 1500
const (
	SearchInvalidRequestBody   ErrorCode = SearchBase + iota // 1000
	SearchEmptyQuery                                         // 1001
	SearchUnsupportedLanguage                                // 1002
	SearchNoInterpretation                                   // 1003
)

const (
	SearchUnexpected ErrorCode = SearchBase + 500 // 1500
)

// Comic client errors start at 2000, upstream failures at 2500
const (
	ComicInvalidRequestBody  ErrorCode = ComicBase + iota // 2000
	ComicUnsupportedLanguage                              // 2001
)

const (
	ComicGenerationFailed ErrorCode = ComicBase + 500 + iota // 2500
	ComicUnexpected                                          // 2501
)

const (
	ErrorCodeInternal    ErrorCode = 9000
	ErrorCodeUnavailable ErrorCode = 9001
)

// CodedError represents an error with an associated ErrorCode
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

type codedError struct {
	code ErrorCode
	err  error
}

func (e codedError) Error() string        { return e.err.Error() }
func (e codedError) Unwrap() error        { return e.err }
func (e codedError) ErrorCode() ErrorCode { return e.code }

// New creates a new CodedError with the given code and underlying error
func New(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return codedError{code: code, err: err}
}
