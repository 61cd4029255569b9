package database

import (
	"log"

	"tour_manager/model"
	"tour_manager/utils"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	categories := []model.Category{
		{Title: "Du lịch biển", Slug: "du-lich-bien", Status: true},
		{Title: "Du lịch văn hóa", Slug: "du-lich-van-hoa", Status: true},
		{Title: "Du lịch gia đình", Slug: "du-lich-gia-dinh", Status: true},
		{Title: "Du lịch nghỉ dưỡng", Slug: "du-lich-nghi-duong", Status: true},
	}
	for _, category := range categories {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Title, "error:", err)
		}
	}

	departures := []model.Departure{
		{Title: "Hà Nội", Status: true},
		{Title: "Đà Nẵng", Status: true},
		{Title: "TP. Hồ Chí Minh", Status: true},
	}
	for _, departure := range departures {
		if err := db.Where(model.Departure{Title: departure.Title}).FirstOrCreate(&departure).Error; err != nil {
			log.Println("failed to seed data for departure:", departure.Title, "error:", err)
		}
	}

	transportations := []model.Transportation{
		{Title: "Máy bay", Status: true},
		{Title: "Ô tô", Status: true},
		{Title: "Tàu hỏa", Status: true},
	}
	for _, transportation := range transportations {
		if err := db.Where(model.Transportation{Title: transportation.Title}).FirstOrCreate(&transportation).Error; err != nil {
			log.Println("failed to seed data for transportation:", transportation.Title, "error:", err)
		}
	}

	// Cây điểm đến mẫu: Miền Trung > Đà Nẵng > Bà Nà
	destinations := []model.Destination{
		{Title: "Miền Bắc", Slug: "mien-bac"},
		{Title: "Miền Trung", Slug: "mien-trung"},
		{Title: "Miền Nam", Slug: "mien-nam"},
	}
	for _, destination := range destinations {
		if err := db.Where(model.Destination{Slug: destination.Slug}).FirstOrCreate(&destination).Error; err != nil {
			log.Println("failed to seed data for destination:", destination.Title, "error:", err)
		}
	}

	var mienTrung model.Destination
	if err := db.Where("slug = ?", "mien-trung").First(&mienTrung).Error; err == nil {
		children := []model.Destination{
			{Title: "Đà Nẵng", Slug: "da-nang", ParentId: utils.Ptr(mienTrung.ID)},
			{Title: "Huế", Slug: "hue", ParentId: utils.Ptr(mienTrung.ID)},
		}
		for _, child := range children {
			if err := db.Where(model.Destination{Slug: child.Slug}).FirstOrCreate(&child).Error; err != nil {
				log.Println("failed to seed data for destination:", child.Title, "error:", err)
			}
		}
	}
}
