package search

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"teens-language/config"
	"teens-language/internal/core/locale"
	"teens-language/internal/core/orchestrator"
	"teens-language/pkg/apperror"
	"teens-language/pkg/apperror/status"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type Searcher interface {
	Search(ctx context.Context, query string, lang locale.Language) (orchestrator.SearchResult, error)
}

type searchRequest struct {
	Query    string `json:"query" validate:"max=500"`
	Language string `json:"language"`
}

var validate = validator.New()

func HandleSearch(svc Searcher) fiber.Handler {
	return func(c fiber.Ctx) error {
		trackingID := c.Get(fiber.HeaderXRequestID)

		var req searchRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return apperror.BadRequest(config.ModuleSearch, c, status.SearchInvalidRequestBody, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return apperror.BadRequest(config.ModuleSearch, c, status.SearchInvalidRequestBody, "query is too long")
		}

		lang := locale.English
		if strings.TrimSpace(req.Language) != "" {
			parsed, err := locale.Parse(req.Language)
			if err != nil {
				return apperror.WriteError(config.ModuleSearch, c, http.StatusBadRequest, status.SearchUnsupportedLanguage,
					locale.Message(locale.English, locale.UnsupportedLanguage), err)
			}
			lang = parsed
		}

		// No deadline: the remote calls run to completion or to their own failure.
		res, err := svc.Search(context.Background(), req.Query, lang)
		if err != nil {
			return writeSearchError(c, err)
		}

		return apperror.Success(config.ModuleSearch, c, apperror.FiberSuccessMessage{
			Code:       status.OK,
			Message:    "search ok",
			TrackingID: trackingID,
			Data:       res,
		})
	}
}

func writeSearchError(c fiber.Ctx, err error) error {
	le, ok := orchestrator.AsLocalized(err)
	if !ok {
		return apperror.InternalError(config.ModuleSearch, c, status.New(status.SearchUnexpected, err))
	}

	httpStatus, code := http.StatusBadGateway, status.SearchUnexpected
	switch le.Key {
	case locale.EmptyQuery:
		httpStatus, code = http.StatusBadRequest, status.SearchEmptyQuery
	case locale.UnsupportedLanguage:
		httpStatus, code = http.StatusBadRequest, status.SearchUnsupportedLanguage
	case locale.NoInterpretation:
		httpStatus, code = http.StatusNotFound, status.SearchNoInterpretation
	}
	return apperror.WriteError(config.ModuleSearch, c, httpStatus, code, le.Message, le.Err)
}
