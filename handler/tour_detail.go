package handler

import (
	"tour_manager/cache"
	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateTourDetail(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTourDetailInput)

	db := database.DB

	var tour model.Tour
	if err := db.Where("deleted = false").First(&tour, input.TourId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TOUR_NOT_FOUND, err)
	}

	detail := model.TourDetail{
		TourId:                    tour.ID,
		AdultPrice:                input.AdultPrice,
		ChildrenPrice:             input.ChildrenPrice,
		ChildPrice:                input.ChildPrice,
		BabyPrice:                 input.BabyPrice,
		SingleRoomSupplementPrice: input.SingleRoomSupplementPrice,
		Stock:                     input.Stock,
		DayStart:                  input.DayStart,
		DayReturn:                 input.DayReturn,
		Discount:                  input.Discount,
	}
	if err := db.Create(&detail).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đợt khởi hành", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusCreated, detail)
}

func EditTourDetail(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditTourDetailInput)

	db := database.DB

	var detail model.TourDetail
	if err := db.First(&detail, input.TourDetailId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_DETAIL_NOT_FOUND, err)
	}

	// validate chỉ chặn được khi cả hai ngày cùng gửi lên, ở đây đối chiếu
	// ngày mới với ngày đang lưu
	dayStart := detail.DayStart
	dayReturn := detail.DayReturn
	if input.DayStart != nil {
		dayStart = *input.DayStart
	}
	if input.DayReturn != nil {
		dayReturn = *input.DayReturn
	}
	if dayStart.Time.After(dayReturn.Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
	}

	copier.Copy(&detail, &input)

	if err := db.Save(&detail).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật đợt khởi hành", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func DeleteTourDetails(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Where("id IN ?", input.IDs).Delete(&model.TourDetail{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá đợt khởi hành", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(input.IDs),
	})
}
