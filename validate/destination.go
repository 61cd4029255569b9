package validate

import (
	"errors"
	"fmt"
	"strconv"

	"tour_manager/constants"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDestination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDestinationInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditDestination(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		destinationId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditDestinationInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		c.Locals("inputId", destinationId)
		c.Locals("input", input)
		return c.Next()
	}
}
