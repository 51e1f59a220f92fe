package apperror

import (
	"errors"
	"fmt"
	"teens-language/config"
	"teens-language/pkg/apperror/status"
	"teens-language/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is the standardized HTTP error payload
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

type FiberSuccessMessage struct {
	Code       status.SuccessCode `json:"code"`
	Message    string             `json:"message"`
	TrackingID string             `json:"tracking_id"`
	Data       any                `json:"data"`
}

// Code renders an ErrorCode the way clients see it.
func Code(code status.ErrorCode) string {
	return fmt.Sprintf("TL-%d", code)
}

// WriteError logs a structured warning and returns a standardized JSON error.
// message is what the client sees; cause is logged only.
func WriteError(module config.Module, c fiber.Ctx, httpStatus int, code status.ErrorCode, message string, cause error) error {
	fields := map[string]interface{}{
		"module":        module,
		"status_code":   httpStatus,
		"error_code":    Code(code),
		"error_message": message,
		"http_method":   c.Method(),
		"path":          c.Path(),
		"ip":            c.IP(),
		"request_id":    c.Get(fiber.HeaderXRequestID),
	}
	if cause != nil {
		fields["cause"] = cause.Error()
	}
	logger.WithFields(fields).Warnf("http error")

	return c.Status(httpStatus).JSON(ErrorResponse{
		Error:     message,
		ErrorCode: Code(code),
	})
}

// BadRequest responds 400 with message.
func BadRequest(module config.Module, c fiber.Ctx, code status.ErrorCode, message string) error {
	return WriteError(module, c, fiber.StatusBadRequest, code, message, nil)
}

// InternalError responds without leaking err to the client. A CodedError
// keeps its own code; ErrorCodeUnavailable maps to 503, everything else to 500.
func InternalError(module config.Module, c fiber.Ctx, err error) error {
	code := status.ErrorCodeInternal
	var coded status.CodedError
	if errors.As(err, &coded) {
		code = coded.ErrorCode()
	}
	httpStatus := fiber.StatusInternalServerError
	if code == status.ErrorCodeUnavailable {
		httpStatus = fiber.StatusServiceUnavailable
	}
	return WriteError(module, c, httpStatus, code, "internal server error", err)
}

// Success writes a standardized JSON success response
func Success(module config.Module, c fiber.Ctx, response FiberSuccessMessage) error {
	logger.WithModule(module).Debugf("%s %s ok", c.Method(), c.Path())
	return c.Status(fiber.StatusOK).JSON(response)
}
