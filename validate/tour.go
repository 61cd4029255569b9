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

// TourFilter parse các tham số lọc từ query string, tất cả đều optional
func TourFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filters model.TourFilterInput

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

func CreateTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTourInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		// Mỗi đợt khởi hành gửi kèm cũng phải thỏa ngày đi <= ngày về
		for _, detail := range input.TourDetails {
			if detail.DayStart.After(detail.DayReturn.Time) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditTour(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		tourId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditTourInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		c.Locals("inputId", tourId)
		c.Locals("input", input)
		return c.Next()
	}
}
