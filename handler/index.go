package handler

import (
	"errors"

	"movie_catalog/apperror"
	"movie_catalog/constants"
	"movie_catalog/model"
	"movie_catalog/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves the catalog endpoints. Each request runs in its own unit of work.
type Handler struct {
	uow *repository.UnitOfWork
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{
		uow: repository.NewUnitOfWork(db),
		log: log,
	}
}

var errLocals = errors.New(constants.ERROR_PARSE_DATA_TO_LOCALS)

func inputId(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(constants.LOCAL_ID).(uint)
	if !ok {
		return 0, errLocals
	}
	return id, nil
}

func localInput[T any](c *fiber.Ctx, key string) (T, error) {
	input, ok := c.Locals(key).(T)
	if !ok {
		var zero T
		return zero, errLocals
	}
	return input, nil
}

func assignIds(c *fiber.Ctx) (uint, []uint, error) {
	id, err := inputId(c)
	if err != nil {
		return 0, nil, err
	}
	ids, err := localInput[model.ArrayId](c, constants.LOCAL_ASSIGN_INPUT)
	if err != nil {
		return 0, nil, err
	}
	return id, ids, nil
}

// bodyReference reports an unknown id that came from the request body as a
// bad request rather than a missing resource.
func bodyReference(err error) error {
	if appErr, ok := apperror.As(err); ok && appErr.Type == apperror.ErrorTypeNotFound {
		return apperror.BadRequest("%s", appErr.Message)
	}
	return err
}
