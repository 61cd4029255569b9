package handler

import (
	"log"
	"time"

	"tour_manager/cache"
	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// resolveDestinationIds tính closure điểm đến (gốc + toàn bộ con cháu) trong
// bộ nhớ, cho composer nhúng vào mệnh đề IN
func resolveDestinationIds(db *gorm.DB, destinationId *uint) ([]uint, error) {
	if destinationId == nil {
		return nil, nil
	}

	var destinations []model.Destination
	if err := db.Where("deleted = false").Find(&destinations).Error; err != nil {
		return nil, err
	}

	ids := helper.DescendantIDs(destinations, *destinationId)
	if len(ids) == 0 {
		// điểm đến không còn tồn tại, vẫn ràng buộc theo id gốc để không
		// âm thầm bỏ qua bộ lọc
		ids = []uint{*destinationId}
	}
	return ids, nil
}

func paginateTourSummaries(tours []model.TourSummary, limit, page *int) []model.TourSummary {
	if limit == nil || *limit <= 0 {
		return tours
	}

	p := 1
	if page != nil && *page > 1 {
		p = *page
	}

	offset := (p - 1) * (*limit)
	if offset >= len(tours) {
		return []model.TourSummary{}
	}

	end := offset + *limit
	if end > len(tours) {
		end = len(tours)
	}
	return tours[offset:end]
}

// GetTours là endpoint tìm tour phía client: composer -> raw SQL -> gom theo
// code tour, có cache Redis read-through theo hash của bộ lọc
func GetTours(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.TourFilterInput)

	ctx := c.Context()
	cacheKey := cache.TourSearchKey(filters)
	if cached, err := cache.GetTourSearch(ctx, cacheKey); err == nil && cached != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, cached)
	}

	db := database.DB

	destinationIds, err := resolveDestinationIds(db, filters.DestinationId)
	if err != nil {
		log.Printf("Lỗi tải điểm đến với bộ lọc %+v: %v", filters, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	query := helper.BuildTourQuery(filters, destinationIds, time.Now())

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		log.Printf("Lỗi tìm tour với bộ lọc %+v: %v", filters, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	tours := paginateTourSummaries(helper.TransformTours(rows), filters.Limit, filters.Page)

	if err := cache.SetTourSearch(ctx, cacheKey, tours); err != nil {
		log.Printf("Lỗi ghi cache tìm tour: %v", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tours)
}

func GetTourBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	today := time.Now().Format("2006-01-02")

	var tour model.Tour
	if err := database.DB.
		Preload("Destination").
		Preload("Departure").
		Preload("Transportation").
		Preload("Categories", "deleted = false AND status = true").
		Preload("TourDetails", "day_start >= ?", today).
		Where("slug = ? AND deleted = false AND status = true", slugParam).
		First(&tour).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func GetFeaturedTours(c *fiber.Ctx) error {
	db := database.DB

	filters := model.TourFilterInput{IsFeatured: utils.Ptr(true)}
	query := helper.BuildTourQuery(filters, nil, time.Now())

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.TransformTours(rows))
}

// GetFlashSaleTours trả về các tour còn bán được có đợt khởi hành trong 5 ngày tới
func GetFlashSaleTours(c *fiber.Ctx) error {
	db := database.DB

	query := helper.BuildFlashSaleToursQuery(model.TourFilterInput{}, nil, time.Now())

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.TransformTours(rows))
}

// GetAllTours là view duyệt tour cho admin, thấy cả tour inactive
func GetAllTours(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.TourFilterInput)

	db := database.DB

	condition := db.Model(&model.Tour{}).Where("tours.deleted = false")
	if filters.Status != nil {
		condition = condition.Where("tours.status = ?", *filters.Status)
	}
	if filters.IsFeatured != nil {
		condition = condition.Where("tours.is_featured = ?", *filters.IsFeatured)
	}
	if filters.DepartureId != nil {
		condition = condition.Where("tours.departure_id = ?", *filters.DepartureId)
	}
	if filters.TransTypeId != nil {
		condition = condition.Where("tours.transportation_id = ?", *filters.TransTypeId)
	}
	if filters.DestinationId != nil {
		destinationIds, err := resolveDestinationIds(db, filters.DestinationId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
		}
		condition = condition.Where("tours.destination_id IN ?", destinationIds)
	}
	if filters.Title != "" {
		condition = condition.Where("tours.slug LIKE ?", "%"+helper.NormalizeSearchTerm(filters.Title)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	var tours []model.Tour
	condition = utils.ApplyPagination(condition, filters.Limit, filters.Page)
	if err := condition.
		Preload("Destination").
		Preload("Departure").
		Preload("Transportation").
		Preload("Categories").
		Preload("TourDetails").
		Order("tours.id DESC").
		Find(&tours).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       tours,
		Limit:      filters.Limit,
		Page:       filters.Page,
		TotalCount: totalCount,
	})
}

// SearchTours tìm theo tiêu đề đã slug hóa, trả về danh sách phẳng cho admin
func SearchTours(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.TourFilterInput)

	db := database.DB

	destinationIds, err := resolveDestinationIds(db, filters.DestinationId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	query := helper.BuildTourQuery(filters, destinationIds, time.Now())

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		log.Printf("Lỗi tìm tour với bộ lọc %+v: %v", filters, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetExpiredTours trả về các tour không còn đợt khởi hành tương lai nào
func GetExpiredTours(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.TourFilterInput)

	db := database.DB

	destinationIds, err := resolveDestinationIds(db, filters.DestinationId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	query := helper.BuildExpiredToursQuery(filters, destinationIds, time.Now())

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.TransformTours(rows))
}

// GetExpiringSoonTours trả về các tour có đợt khởi hành tương lai sớm nhất
// trong vòng 7 ngày tới, kèm số ngày còn lại
func GetExpiringSoonTours(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.TourFilterInput)

	db := database.DB

	destinationIds, err := resolveDestinationIds(db, filters.DestinationId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	now := time.Now()
	query := helper.BuildExpiringSoonToursQuery(filters, destinationIds, now)

	var rows []model.TourSummaryRow
	if err := db.Raw(query.SQL, query.Args...).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := range rows {
		days := int(rows[i].DayStart.Time.Sub(today).Hours() / 24)
		rows[i].DaysRemaining = &days
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func CreateTour(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTourInput)

	db := database.DB
	tx := db.Begin()

	var destination model.Destination
	if err := tx.Where("deleted = false").First(&destination, input.DestinationId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Điểm đến không tồn tại", err)
	}
	var departure model.Departure
	if err := tx.First(&departure, input.DepartureId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Điểm khởi hành không tồn tại", err)
	}
	var transportation model.Transportation
	if err := tx.First(&transportation, input.TransportationId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Phương tiện không tồn tại", err)
	}
	var category model.Category
	if err := tx.Where("deleted = false").First(&category, input.CategoryId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Danh mục không tồn tại", err)
	}

	tour := model.Tour{
		Title:            input.Title,
		Code:             helper.GenerateTourCode(),
		Slug:             helper.GenerateUniqueTourSlug(tx, input.Title),
		Image:            input.Image,
		Status:           true,
		IsFeatured:       input.IsFeatured,
		DestinationId:    input.DestinationId,
		DepartureId:      input.DepartureId,
		TransportationId: input.TransportationId,
	}
	if err := tx.Create(&tour).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo tour", err)
	}

	if err := tx.Create(&model.TourCategory{TourId: tour.ID, CategoryId: category.ID}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể gán danh mục", err)
	}

	for _, detailInput := range input.TourDetails {
		detail := model.TourDetail{
			TourId:                    tour.ID,
			AdultPrice:                detailInput.AdultPrice,
			ChildrenPrice:             detailInput.ChildrenPrice,
			ChildPrice:                detailInput.ChildPrice,
			BabyPrice:                 detailInput.BabyPrice,
			SingleRoomSupplementPrice: detailInput.SingleRoomSupplementPrice,
			Stock:                     detailInput.Stock,
			DayStart:                  detailInput.DayStart,
			DayReturn:                 detailInput.DayReturn,
			Discount:                  detailInput.Discount,
		}
		if err := tx.Create(&detail).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đợt khởi hành", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit transaction thất bại", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusCreated, tour)
}

func EditTour(c *fiber.Ctx) error {
	tourId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTourInput)

	db := database.DB
	tx := db.Begin()

	var tour model.Tour
	if err := tx.Where("deleted = false").First(&tour, tourId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
	}

	copier.Copy(&tour, &input)

	// đổi tiêu đề thì sinh lại slug unique
	if input.Title != nil {
		tour.Slug = helper.GenerateUniqueTourSlug(tx, *input.Title)
	}

	if err := tx.Save(&tour).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật tour", err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := tx.Where("deleted = false").First(&category, *input.CategoryId).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Danh mục không tồn tại", err)
		}

		// Xóa cũ
		if err := tx.Where("tour_id = ?", tour.ID).Delete(&model.TourCategory{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cập nhật danh mục", err)
		}
		// Thêm mới
		if err := tx.Create(&model.TourCategory{TourId: tour.ID, CategoryId: category.ID}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cập nhật danh mục", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit transaction thất bại", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

// DeleteTours soft delete nhiều tour theo danh sách id
func DeleteTours(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Tour{}).
		Where("id IN ?", input.IDs).
		Update("deleted", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá tour", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(input.IDs),
	})
}

func ToggleTourStatus(c *fiber.Ctx) error {
	tourId := c.Locals("inputId").(int)

	db := database.DB

	var tour model.Tour
	if err := db.Where("deleted = false").First(&tour, tourId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
	}

	if err := db.Model(&tour).Update("status", !tour.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật trạng thái tour", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     tour.ID,
		"status": !tour.Status,
	})
}

func ToggleTourFeatured(c *fiber.Ctx) error {
	tourId := c.Locals("inputId").(int)

	db := database.DB

	var tour model.Tour
	if err := db.Where("deleted = false").First(&tour, tourId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
	}

	if err := db.Model(&tour).Update("is_featured", !tour.IsFeatured).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật tour nổi bật", err)
	}

	cache.InvalidateTourSearch(c.Context())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":         tour.ID,
		"isFeatured": !tour.IsFeatured,
	})
}
