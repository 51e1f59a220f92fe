package comic

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"teens-language/config"
	corecomic "teens-language/internal/core/comic"
	"teens-language/internal/core/locale"
	"teens-language/internal/core/orchestrator"
	"teens-language/pkg/apperror"
	"teens-language/pkg/apperror/status"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type Illustrator interface {
	Comic(ctx context.Context, req corecomic.Request) (string, error)
}

type comicRequest struct {
	TermPhrase       string   `json:"termPhrase" validate:"required,max=500"`
	ExampleSentences []string `json:"exampleSentences" validate:"max=10,dive,max=1000"`
	Language         string   `json:"language"`
}

type comicResponse struct {
	Image string `json:"image"`
}

var validate = validator.New()

func HandleComic(svc Illustrator) fiber.Handler {
	return func(c fiber.Ctx) error {
		trackingID := c.Get(fiber.HeaderXRequestID)

		var req comicRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return apperror.BadRequest(config.ModuleComic, c, status.ComicInvalidRequestBody, "invalid request body")
		}
		req.TermPhrase = strings.TrimSpace(req.TermPhrase)
		if err := validate.Struct(req); err != nil {
			return apperror.BadRequest(config.ModuleComic, c, status.ComicInvalidRequestBody, err.Error())
		}

		lang := locale.English
		if strings.TrimSpace(req.Language) != "" {
			parsed, err := locale.Parse(req.Language)
			if err != nil {
				return apperror.WriteError(config.ModuleComic, c, http.StatusBadRequest, status.ComicUnsupportedLanguage,
					locale.Message(locale.English, locale.UnsupportedLanguage), err)
			}
			lang = parsed
		}

		uri, err := svc.Comic(context.Background(), corecomic.Request{
			TermPhrase:       req.TermPhrase,
			ExampleSentences: req.ExampleSentences,
			Language:         lang,
		})
		if err != nil {
			return writeComicError(c, err)
		}

		return apperror.Success(config.ModuleComic, c, apperror.FiberSuccessMessage{
			Code:       status.OK,
			Message:    "comic ok",
			TrackingID: trackingID,
			Data:       comicResponse{Image: uri},
		})
	}
}

func writeComicError(c fiber.Ctx, err error) error {
	le, ok := orchestrator.AsLocalized(err)
	if !ok {
		return apperror.InternalError(config.ModuleComic, c, status.New(status.ComicUnexpected, err))
	}

	httpStatus, code := http.StatusBadGateway, status.ComicUnexpected
	switch le.Key {
	case locale.UnsupportedLanguage:
		httpStatus, code = http.StatusBadRequest, status.ComicUnsupportedLanguage
	case locale.ComicGenerationFailed:
		code = status.ComicGenerationFailed
	}
	return apperror.WriteError(config.ModuleComic, c, httpStatus, code, le.Message, le.Err)
}
