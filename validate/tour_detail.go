package validate

import (
	"fmt"

	"tour_manager/constants"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTourDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTourDetailInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		// ngày về không được trước ngày đi
		if input.DayStart.Time.After(input.DayReturn.Time) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditTourDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTourDetailInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		// chỉ kiểm tra được khi cả hai ngày cùng có mặt, phần còn lại handler
		// phải đối chiếu với bản ghi hiện tại
		if input.DayStart != nil && input.DayReturn != nil && input.DayStart.Time.After(input.DayReturn.Time) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
