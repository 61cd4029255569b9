package model

// Category / Departure / Transportation là các bảng tham chiếu phẳng,
// chỉ dùng làm chiều lọc khi tìm tour.

type Category struct {
	DTO
	Title   string `gorm:"not null;index" validate:"required" json:"title"`
	Slug    string `gorm:"uniqueIndex" json:"slug"`
	Status  bool   `gorm:"not null;default:true" json:"status"`
	Deleted bool   `gorm:"not null;default:false" json:"-"`

	Tours []Tour `gorm:"many2many:tour_categories;" json:"tours,omitempty"`
}

type Departure struct {
	DTO
	Title   string `gorm:"not null;index" validate:"required" json:"title"`
	Status  bool   `gorm:"not null;default:true" json:"status"`
	Deleted bool   `gorm:"not null;default:false" json:"-"`
}

type Transportation struct {
	DTO
	Title   string `gorm:"not null;index" validate:"required" json:"title"`
	Status  bool   `gorm:"not null;default:true" json:"status"`
	Deleted bool   `gorm:"not null;default:false" json:"-"`
}
