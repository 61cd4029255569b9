package helper

import (
	"tour_manager/model"
)

// TransformTours gộp các dòng kết quả phẳng theo code tour: cùng một tour với
// nhiều đợt khởi hành thành một summary duy nhất kèm danh sách ngày.
// Thứ tự tour giữ nguyên theo lần xuất hiện đầu tiên.
func TransformTours(rows []model.TourSummaryRow) []model.TourSummary {
	byCode := make(map[string]*model.TourSummary, len(rows))
	result := []model.TourSummary{}
	order := []string{}

	for _, row := range rows {
		day := model.TourDay{DayStart: row.DayStart, DayReturn: row.DayReturn}

		if existing, ok := byCode[row.Code]; ok {
			existing.Days = append(existing.Days, day)
			continue
		}

		byCode[row.Code] = &model.TourSummary{
			Title:          row.Title,
			Image:          row.Image,
			Code:           row.Code,
			Slug:           row.Slug,
			Status:         row.Status,
			IsFeatured:     row.IsFeatured,
			AdultPrice:     row.AdultPrice,
			Category:       row.Category,
			Destination:    row.Destination,
			Departure:      row.Departure,
			Transportation: row.Transportation,
			Days:           []model.TourDay{day},
		}
		order = append(order, row.Code)
	}

	for _, code := range order {
		result = append(result, *byCode[code])
	}

	return result
}
