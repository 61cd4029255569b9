package validate

import (
	"fmt"

	"tour_manager/constants"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func BookTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookTourInput

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

func OrderFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filters model.OrderFilterInput

		if err := c.QueryParser(&filters); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tham số lọc không hợp lệ", err)
		}

		if err := validate.Struct(filters); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tham số lọc không hợp lệ", err)
		}

		c.Locals("filters", filters)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput

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

func UpdateTransactionStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateTransactionStatusInput

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
