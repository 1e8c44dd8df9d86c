package utils

import (
	"errors"
	"fmt"

	"movie_catalog/apperror"
	"movie_catalog/constants"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// CreatedResponse answers 201 with a Location header pointing at the new resource.
func CreatedResponse(c *fiber.Ctx, locationFormat string, id uint, body any) error {
	c.Location(fmt.Sprintf(locationFormat, id))
	return c.Status(fiber.StatusCreated).JSON(body)
}

// ErrorHandler maps errors returned by handlers to HTTP responses. Unknown
// errors are logged and answered with 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			switch appErr.Type {
			case apperror.ErrorTypeNotFound:
				return ErrorResponse(c, fiber.StatusNotFound, appErr.Message, nil)
			case apperror.ErrorTypeBadRequest:
				return ErrorResponse(c, fiber.StatusBadRequest, appErr.Message, nil)
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals(constants.LOCAL_REQUEST_ID)),
			zap.Error(err),
		)
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}
}
