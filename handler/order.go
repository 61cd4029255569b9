package handler

import (
	"log"
	"time"

	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// BookTour tạo đơn đặt tour: Transaction -> Order -> OrderItem trong cùng
// một transaction DB, lock đợt khởi hành để trừ chỗ an toàn khi đặt đồng thời.
func BookTour(c *fiber.Ctx) error {
	input := c.Locals("input").(model.BookTourInput)

	db := database.DB
	tx := db.Begin()

	var tourDetail model.TourDetail
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tourDetail, input.TourDetailId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TOUR_DETAIL_NOT_FOUND, err)
	}

	seats := helper.CountBookingSeats(input)
	if seats > tourDetail.Stock {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OUT_OF_STOCK, nil)
	}

	amount := helper.CalculateBookingAmount(input)

	transaction := model.Transaction{
		Code:          helper.GenerateTransactionCode(),
		Amount:        amount,
		Status:        "pending",
		PaymentMethod: input.PaymentMethod,
	}
	// lỗi ghi DB chỉ log chi tiết nội bộ (không log thông tin liên hệ),
	// client nhận thông điệp chung
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		log.Printf("Lỗi tạo giao dịch (tourDetailId=%d, amount=%d, paymentMethod=%s): %v",
			input.TourDetailId, amount, input.PaymentMethod, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BOOKING_FAILED, nil)
	}

	order := model.Order{
		Code:          helper.GenerateOrderCode(),
		TransactionId: transaction.ID,
		FullName:      input.FullName,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		Status:        "pending",
		UserId:        input.UserId,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Lỗi tạo đơn hàng (tourDetailId=%d, transactionId=%d): %v",
			input.TourDetailId, transaction.ID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BOOKING_FAILED, nil)
	}

	orderItem := model.OrderItem{
		OrderId:                      order.ID,
		TourDetailId:                 tourDetail.ID,
		AdultPrice:                   input.AdultPrice,
		AdultQuantity:                input.AdultQuantity,
		ChildrenPrice:                input.ChildrenPrice,
		ChildrenQuantity:             input.ChildrenQuantity,
		ChildPrice:                   input.ChildPrice,
		ChildQuantity:                input.ChildQuantity,
		BabyPrice:                    input.BabyPrice,
		BabyQuantity:                 input.BabyQuantity,
		SingleRoomSupplementPrice:    input.SingleRoomSupplementPrice,
		SingleRoomSupplementQuantity: input.SingleRoomSupplementQuantity,
		Note:                         input.Note,
	}
	if err := tx.Create(&orderItem).Error; err != nil {
		tx.Rollback()
		log.Printf("Lỗi tạo order item (tourDetailId=%d, orderId=%d): %v",
			input.TourDetailId, order.ID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BOOKING_FAILED, nil)
	}

	if err := tx.Model(&tourDetail).Update("stock", tourDetail.Stock-seats).Error; err != nil {
		tx.Rollback()
		log.Printf("Lỗi trừ chỗ (tourDetailId=%d, seats=%d): %v", input.TourDetailId, seats, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BOOKING_FAILED, nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Lỗi commit đơn đặt tour (tourDetailId=%d): %v", input.TourDetailId, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BOOKING_FAILED, nil)
	}

	// Gửi email xác nhận (async), lỗi gửi mail không ảnh hưởng đơn đã commit
	sendBookingConfirmation(order, transaction, tourDetail)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":       constants.BOOKING_SUCCESS,
		"orderId":       order.ID,
		"orderCode":     order.Code,
		"transactionId": transaction.ID,
		"amount":        transaction.Amount,
	})
}

func sendBookingConfirmation(order model.Order, transaction model.Transaction, tourDetail model.TourDetail) {
	var tour model.Tour
	if err := database.DB.
		Preload("Destination").
		Preload("Departure").
		First(&tour, tourDetail.TourId).Error; err != nil {
		log.Printf("Lỗi tải tour %d cho email đơn %s: %v", tourDetail.TourId, order.Code, err)
		return
	}

	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	orderDate := order.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	data := utils.BookingConfirmationData{
		TourTitle:   tour.Title,
		TourCode:    tour.Code,
		Destination: tour.Destination.Title,
		Departure:   tour.Departure.Title,
		DayStart:    tourDetail.DayStart.String(),
		DayReturn:   tourDetail.DayReturn.String(),
		OrderCode:   order.Code,
		OrderDate:   orderDate.In(loc).Format("02/01/2006 15:04"),
		Amount:      utils.FormatVND(transaction.Amount),
		FullName:    order.FullName,
		Address:     order.Address,
		PhoneNumber: order.PhoneNumber,
		Email:       order.Email,
	}

	utils.SendBookingConfirmationEmail(order.Email, "Xác nhận đặt tour #"+order.Code, data)
}

func GetOrders(c *fiber.Ctx) error {
	filters := c.Locals("filters").(model.OrderFilterInput)

	db := database.DB

	query := db.Model(&model.Order{}).Where("deleted = false")
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query, filters.Limit, filters.Page).
		Preload("Transaction").
		Preload("OrderItems").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_DATA_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filters.Limit,
		Page:       filters.Page,
		TotalCount: totalCount,
	})
}

func GetOrderDetail(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Transaction").
		Preload("OrderItems").
		Preload("OrderItems.TourDetail").
		Preload("OrderItems.TourDetail.Tour").
		Where("code = ? AND deleted = false", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn hàng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus chỉ cập nhật trạng thái đơn, không đụng tới trường tài chính
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateOrderStatusInput)

	db := database.DB

	var order model.Order
	if err := db.Where("deleted = false").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn hàng", err)
	}

	if err := db.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật trạng thái đơn hàng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode": order.Code,
		"status":    input.Status,
	})
}

func UpdateTransactionStatus(c *fiber.Ctx) error {
	transactionId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateTransactionStatusInput)

	db := database.DB

	var transaction model.Transaction
	if err := db.First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy giao dịch", err)
	}

	if err := db.Model(&transaction).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật trạng thái giao dịch", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"transactionCode": transaction.Code,
		"status":          input.Status,
	})
}

// DeleteOrders soft delete nhiều đơn theo danh sách id
func DeleteOrders(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Order{}).
		Where("id IN ?", input.IDs).
		Update("deleted", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá đơn hàng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": len(input.IDs),
	})
}
