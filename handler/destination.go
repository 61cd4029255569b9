package handler

import (
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetDestinationTree trả về cây điểm đến lồng nhau cho client
func GetDestinationTree(c *fiber.Ctx) error {
	var destinations []model.Destination
	if err := database.DB.Where("deleted = false").Order("id").Find(&destinations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải điểm đến", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.BuildDestinationTree(destinations))
}

func GetDestinations(c *fiber.Ctx) error {
	var destinations []model.Destination
	if err := database.DB.Where("deleted = false").Order("id").Find(&destinations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải điểm đến", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, destinations)
}

func CreateDestination(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateDestinationInput)

	db := database.DB

	// parentId phải trỏ tới điểm đến còn tồn tại
	if input.ParentId != nil {
		var parent model.Destination
		if err := db.Where("deleted = false").First(&parent, *input.ParentId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Điểm đến cha không tồn tại", err)
		}
	}

	destination := model.Destination{
		Title:    input.Title,
		Slug:     helper.GenerateUniqueDestinationSlug(db, input.Title),
		Image:    input.Image,
		ParentId: input.ParentId,
	}
	if err := db.Create(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo điểm đến", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, destination)
}

func EditDestination(c *fiber.Ctx) error {
	destinationId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditDestinationInput)

	db := database.DB

	var destination model.Destination
	if err := db.Where("deleted = false").First(&destination, destinationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy điểm đến", err)
	}

	if input.ParentId != nil {
		if *input.ParentId == destination.ID {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Điểm đến không thể là cha của chính nó", nil)
		}
		var parent model.Destination
		if err := db.Where("deleted = false").First(&parent, *input.ParentId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Điểm đến cha không tồn tại", err)
		}
	}

	copier.Copy(&destination, &input)

	if input.Title != nil {
		destination.Slug = helper.GenerateUniqueDestinationSlug(db, *input.Title)
	}

	if err := db.Save(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật điểm đến", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, destination)
}

// DeleteDestinations soft delete nhiều điểm đến theo danh sách id
func DeleteDestinations(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Destination{}).
		Where("id IN ?", input.IDs).
		Update("deleted", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá điểm đến", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(input.IDs),
	})
}
