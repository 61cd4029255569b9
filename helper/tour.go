package helper

import (
	"log"
	"time"

	"tour_manager/database"
	"tour_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var tourScheduler gocron.Scheduler

// AutoUpdateTourStatus tắt các tour active không còn đợt khởi hành tương lai nào
func AutoUpdateTourStatus() {
	log.Println("[CRON] AutoUpdateTourStatus triggered")

	db := database.DB
	loc := time.FixedZone("ICT", 7*3600)
	today := time.Now().In(loc).Format("2006-01-02")

	var tours []model.Tour
	if err := db.Where("deleted = false AND status = true").Find(&tours).Error; err != nil {
		log.Printf("Lỗi khi quét tour: %v", err)
		return
	}

	for _, tour := range tours {
		var futureCount int64
		if err := db.Model(&model.TourDetail{}).
			Where("tour_id = ? AND day_start >= ?", tour.ID, today).
			Count(&futureCount).Error; err != nil {
			log.Printf("Lỗi đếm đợt khởi hành của tour '%s': %v", tour.Title, err)
			continue
		}

		if futureCount == 0 {
			if err := db.Model(&tour).Update("status", false).Error; err != nil {
				log.Printf("Lỗi cập nhật trạng thái tour '%s': %v", tour.Title, err)
			} else {
				log.Printf("Tour '%s' hết đợt khởi hành, chuyển sang inactive", tour.Title)
			}
		}
	}
}

func StartTourStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	tourScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateTourStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Tour status scheduler started (00:05 ICT)")
}

func StopTourStatusScheduler() {
	if tourScheduler != nil {
		if err := tourScheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng tour scheduler: %v", err)
		}
	}
}
