package model

import (
	"tour_manager/utils"
)

type Tour struct {
	DTO
	Title      string `gorm:"not null;index" validate:"required" json:"title"` // Tên tour
	Code       string `gorm:"uniqueIndex;size:20" json:"code"`                 // Mã tour công khai (TOUR-XXXXXXXX)
	Slug       string `gorm:"uniqueIndex" json:"slug"`
	Image      string `gorm:"type:varchar(255)" json:"image"`
	Status     bool   `gorm:"not null;default:true" json:"status"` // active / inactive
	IsFeatured bool   `gorm:"not null;default:false" json:"isFeatured"`
	Deleted    bool   `gorm:"not null;default:false" json:"-"` // soft delete

	DestinationId    uint           `gorm:"not null;index" validate:"required" json:"destinationId"`
	DepartureId      uint           `gorm:"not null;index" validate:"required" json:"departureId"`
	TransportationId uint           `gorm:"not null;index" validate:"required" json:"transportationId"`
	Destination      Destination    `gorm:"foreignKey:DestinationId" json:"destination"`
	Departure        Departure      `gorm:"foreignKey:DepartureId" json:"departure"`
	Transportation   Transportation `gorm:"foreignKey:TransportationId" json:"transportation"`

	Categories  []Category   `gorm:"many2many:tour_categories;" json:"categories"`
	TourDetails []TourDetail `gorm:"foreignKey:TourId" json:"tourDetails"`
}

type TourCategory struct {
	TourId     uint     `gorm:"primaryKey" json:"tourId"`
	CategoryId uint     `gorm:"primaryKey" json:"categoryId"`
	Tour       Tour     `gorm:"foreignKey:TourId" json:"tour"`
	Category   Category `gorm:"foreignKey:CategoryId" json:"category"`
}

// TourDetail là một đợt khởi hành của tour: khoảng ngày + giá + số chỗ
type TourDetail struct {
	DTO
	TourId                    uint             `gorm:"not null;index" validate:"required" json:"tourId"`
	Tour                      Tour             `gorm:"foreignKey:TourId" json:"tour"`
	AdultPrice                int              `gorm:"not null" validate:"required,gt=0" json:"adultPrice"`
	ChildrenPrice             int              `gorm:"not null;default:0" json:"childrenPrice"`
	ChildPrice                int              `gorm:"not null;default:0" json:"childPrice"`
	BabyPrice                 int              `gorm:"not null;default:0" json:"babyPrice"`
	SingleRoomSupplementPrice int              `gorm:"not null;default:0" json:"singleRoomSupplementPrice"`
	Stock                     int              `gorm:"not null" validate:"gte=0" json:"stock"` // số chỗ còn lại
	DayStart                  utils.CustomDate `gorm:"type:date;not null" validate:"required" json:"dayStart"`
	DayReturn                 utils.CustomDate `gorm:"type:date;not null" validate:"required" json:"dayReturn"`
	Discount                  int              `gorm:"not null;default:0" json:"discount"` // %
}

type CreateTourInput struct {
	Title            string                  `json:"title" validate:"required"`
	Image            string                  `json:"image"`
	IsFeatured       bool                    `json:"isFeatured"`
	DestinationId    uint                    `json:"destinationId" validate:"required"`
	DepartureId      uint                    `json:"departureId" validate:"required"`
	TransportationId uint                    `json:"transportationId" validate:"required"`
	CategoryId       uint                    `json:"categoryId" validate:"required"`
	TourDetails      []CreateTourDetailInput `json:"tourDetails" validate:"omitempty,dive"`
}

type EditTourInput struct {
	Title            *string `json:"title"`
	Image            *string `json:"image"`
	Status           *bool   `json:"status"`
	IsFeatured       *bool   `json:"isFeatured"`
	DestinationId    *uint   `json:"destinationId"`
	DepartureId      *uint   `json:"departureId"`
	TransportationId *uint   `json:"transportationId"`
	CategoryId       *uint   `json:"categoryId"`
}

type CreateTourDetailInput struct {
	TourId                    uint             `json:"tourId"`
	AdultPrice                int              `json:"adultPrice" validate:"required,gt=0"`
	ChildrenPrice             int              `json:"childrenPrice" validate:"gte=0"`
	ChildPrice                int              `json:"childPrice" validate:"gte=0"`
	BabyPrice                 int              `json:"babyPrice" validate:"gte=0"`
	SingleRoomSupplementPrice int              `json:"singleRoomSupplementPrice" validate:"gte=0"`
	Stock                     int              `json:"stock" validate:"gte=0"`
	DayStart                  utils.CustomDate `json:"dayStart" validate:"required"`
	DayReturn                 utils.CustomDate `json:"dayReturn" validate:"required"`
	Discount                  int              `json:"discount" validate:"gte=0,lte=100"`
}

type EditTourDetailInput struct {
	TourDetailId              uint              `json:"tourDetailId" validate:"required"`
	AdultPrice                *int              `json:"adultPrice" validate:"omitempty,gt=0"`
	ChildrenPrice             *int              `json:"childrenPrice" validate:"omitempty,gte=0"`
	ChildPrice                *int              `json:"childPrice" validate:"omitempty,gte=0"`
	BabyPrice                 *int              `json:"babyPrice" validate:"omitempty,gte=0"`
	SingleRoomSupplementPrice *int              `json:"singleRoomSupplementPrice" validate:"omitempty,gte=0"`
	Stock                     *int              `json:"stock" validate:"omitempty,gte=0"`
	DayStart                  *utils.CustomDate `json:"dayStart"`
	DayReturn                 *utils.CustomDate `json:"dayReturn"`
	Discount                  *int              `json:"discount" validate:"omitempty,gte=0,lte=100"`
}

// TourFilterInput gom các tham số lọc tour, tất cả đều optional
type TourFilterInput struct {
	Pagination
	DestinationId *uint  `query:"destinationId"`
	DepartureId   *uint  `query:"departureId"`
	TransTypeId   *uint  `query:"transTypeId"`
	CategoryId    *uint  `query:"categoryId"`
	FromDate      string `query:"fromDate" validate:"omitempty,datetime=2006-01-02"`
	Status        *bool  `query:"status"`
	IsFeatured    *bool  `query:"isFeatured"`
	Title         string `query:"title"`
	SortOrder     string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// TourSummaryRow là một dòng kết quả phẳng từ câu truy vấn tìm tour
type TourSummaryRow struct {
	Title          string           `json:"title"`
	Image          string           `json:"image"`
	Code           string           `json:"code"`
	Slug           string           `json:"slug"`
	Status         bool             `json:"status"`
	IsFeatured     bool             `json:"isFeatured"`
	AdultPrice     int              `json:"adultPrice"`
	DayStart       utils.CustomDate `json:"dayStart"`
	DayReturn      utils.CustomDate `json:"dayReturn"`
	Category       string           `json:"category"`
	Destination    string           `json:"destination"`
	Departure      string           `json:"departure"`
	Transportation string           `json:"transportation"`
	DaysRemaining  *int             `json:"daysRemaining,omitempty"`
}

type TourDay struct {
	DayStart  utils.CustomDate `json:"dayStart"`
	DayReturn utils.CustomDate `json:"dayReturn"`
}

// TourSummary là một tour duy nhất (theo code) kèm danh sách các đợt khởi hành
type TourSummary struct {
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	Code           string    `json:"code"`
	Slug           string    `json:"slug"`
	Status         bool      `json:"status"`
	IsFeatured     bool      `json:"isFeatured"`
	AdultPrice     int       `json:"adultPrice"`
	Category       string    `json:"category"`
	Destination    string    `json:"destination"`
	Departure      string    `json:"departure"`
	Transportation string    `json:"transportation"`
	Days           []TourDay `json:"days"`
}
