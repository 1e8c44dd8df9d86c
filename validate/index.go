package validate

import (
	"errors"
	"fmt"
	"strconv"

	"movie_catalog/constants"
	"movie_catalog/model"
	"movie_catalog/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator registers notblank so required text rejects whitespace-only values.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func parseID(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.Atoi(c.Params(key))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s %q is not a positive integer", key, c.Params(key))
	}
	return uint(id), nil
}

// GetById parses the path parameter key and stores it under constants.LOCAL_ID.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		c.Locals(constants.LOCAL_ID, id)
		return c.Next()
	}
}

// CreateBody parses and validates a create payload of type T.
func CreateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals(constants.LOCAL_CREATE_INPUT, input)
		return c.Next()
	}
}

// UpdateBody parses the path id and a full replacement payload of type T.
// The id carried by the body must equal the path id.
func UpdateBody[T any](key string, idOf func(T) uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}
		if bodyID := idOf(input); bodyID != id {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_MISMATCH,
				fmt.Errorf("path id %d, body id %d", id, bodyID))
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals(constants.LOCAL_ID, id)
		c.Locals(constants.LOCAL_UPDATE_INPUT, input)
		return c.Next()
	}
}

// AssignIds parses the path id and a JSON array of positive ids.
func AssignIds(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var ids model.ArrayId
		if err := c.BodyParser(&ids); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}
		if ids == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, errors.New("expected a JSON array of ids"))
		}
		if err := validate.Var([]uint(ids), "dive,gt=0"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ids must be positive integers", err)
		}

		c.Locals(constants.LOCAL_ID, id)
		c.Locals(constants.LOCAL_ASSIGN_INPUT, ids)
		return c.Next()
	}
}
