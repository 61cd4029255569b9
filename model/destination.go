package model

type Destination struct {
	DTO
	Title    string `gorm:"not null;index" validate:"required" json:"title"`
	Slug     string `gorm:"uniqueIndex" json:"slug"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
	ParentId *uint  `gorm:"index" json:"parentId"` // null = node gốc
	Deleted  bool   `gorm:"not null;default:false" json:"-"`
}

type CreateDestinationInput struct {
	Title    string `json:"title" validate:"required"`
	Image    string `json:"image"`
	ParentId *uint  `json:"parentId"`
}

type EditDestinationInput struct {
	Title    *string `json:"title"`
	Image    *string `json:"image"`
	ParentId *uint   `json:"parentId"`
}

// DestinationNode là một node trong cây điểm đến trả về cho client
type DestinationNode struct {
	ID       uint               `json:"id"`
	Title    string             `json:"title"`
	Slug     string             `json:"slug"`
	Image    string             `json:"image"`
	ParentId *uint              `json:"parentId"`
	Children []*DestinationNode `json:"children,omitempty"`
}
