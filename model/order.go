package model

import "time"

// Transaction là bản ghi thanh toán, luôn được tạo trước Order trong cùng transaction DB.
// Các trường tài chính không bao giờ được sửa sau khi tạo, chỉ status được cập nhật
// bởi thao tác đối soát riêng.
type Transaction struct {
	DTO
	Code          string `gorm:"uniqueIndex;size:20" json:"code"` // TRANS-XXXXXXXX
	Amount        int    `gorm:"not null" json:"amount"`          // tổng tiền = Σ(giá × số lượng)
	Status        string `gorm:"not null;default:pending" validate:"oneof=pending completed failed" json:"status"`
	PaymentMethod string `gorm:"not null" validate:"required,oneof=cash bank_transfer zalo_pay momo" json:"paymentMethod"`
}

type Order struct {
	DTO
	Code          string      `gorm:"uniqueIndex;size:20" json:"code"` // ORDER-XXXXXXXX
	TransactionId uint        `gorm:"not null;uniqueIndex" json:"transactionId"`
	Transaction   Transaction `gorm:"foreignKey:TransactionId" json:"transaction"`
	FullName      string      `gorm:"not null" json:"fullName"`
	Email         string      `gorm:"not null" json:"email"`
	PhoneNumber   string      `gorm:"not null" json:"phoneNumber"`
	Address       string      `json:"address"`
	OrderDate     time.Time   `gorm:"autoCreateTime" json:"orderDate"`
	Status        string      `gorm:"not null;default:pending" validate:"oneof=pending confirmed cancelled" json:"status"`
	UserId        *uint       `json:"userId,omitempty"` // null nếu khách vãng lai
	Deleted       bool        `gorm:"not null;default:false" json:"-"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderId" json:"orderItems"`
}

type OrderItem struct {
	DTO
	OrderId      uint       `gorm:"not null;index" json:"orderId"`
	Order        Order      `gorm:"foreignKey:OrderId" json:"order"`
	TourDetailId uint       `gorm:"not null;index" json:"tourDetailId"`
	TourDetail   TourDetail `gorm:"foreignKey:TourDetailId" json:"tourDetail"`

	AdultPrice                   int    `gorm:"not null" json:"adultPrice"`
	AdultQuantity                int    `gorm:"not null" json:"adultQuantity"`
	ChildrenPrice                int    `gorm:"not null;default:0" json:"childrenPrice"`
	ChildrenQuantity             int    `gorm:"not null;default:0" json:"childrenQuantity"`
	ChildPrice                   int    `gorm:"not null;default:0" json:"childPrice"`
	ChildQuantity                int    `gorm:"not null;default:0" json:"childQuantity"`
	BabyPrice                    int    `gorm:"not null;default:0" json:"babyPrice"`
	BabyQuantity                 int    `gorm:"not null;default:0" json:"babyQuantity"`
	SingleRoomSupplementPrice    int    `gorm:"not null;default:0" json:"singleRoomSupplementPrice"`
	SingleRoomSupplementQuantity int    `gorm:"not null;default:0" json:"singleRoomSupplementQuantity"`
	Note                         string `gorm:"type:text" json:"note"`
}

// BookTourInput là body của POST /orders/book-tour.
// Các cặp (giá, số lượng) ngoài người lớn đều optional, vắng mặt được coi là 0.
// Số lượng 0 gửi lên tường minh vẫn hợp lệ.
type BookTourInput struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash bank_transfer zalo_pay momo"`
	TourDetailId  uint   `json:"tourDetailId" validate:"required"`
	UserId        *uint  `json:"userId"`

	AdultPrice                   int    `json:"adultPrice" validate:"required,gt=0"`
	AdultQuantity                int    `json:"adultQuantity" validate:"required,gte=1"`
	ChildrenPrice                int    `json:"childrenPrice" validate:"gte=0"`
	ChildrenQuantity             int    `json:"childrenQuantity" validate:"gte=0"`
	ChildPrice                   int    `json:"childPrice" validate:"gte=0"`
	ChildQuantity                int    `json:"childQuantity" validate:"gte=0"`
	BabyPrice                    int    `json:"babyPrice" validate:"gte=0"`
	BabyQuantity                 int    `json:"babyQuantity" validate:"gte=0"`
	SingleRoomSupplementPrice    int    `json:"singleRoomSupplementPrice" validate:"gte=0"`
	SingleRoomSupplementQuantity int    `json:"singleRoomSupplementQuantity" validate:"gte=0"`
	Note                         string `json:"note"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type UpdateTransactionStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed"`
}

type OrderFilterInput struct {
	Pagination
	Status string `query:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}
