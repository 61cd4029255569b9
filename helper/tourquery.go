package helper

import (
	"strings"
	"time"

	"tour_manager/model"
)

// TourQuery là câu truy vấn đã compose kèm tham số bind, sẵn sàng cho db.Raw
type TourQuery struct {
	SQL  string
	Args []any
}

// tourQueryBuilder gom các mệnh đề WHERE kèm tham số, không bao giờ
// nội suy giá trị người dùng vào chuỗi SQL
type tourQueryBuilder struct {
	conds []string
	args  []any
}

func (b *tourQueryBuilder) add(cond string, args ...any) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

func (b *tourQueryBuilder) where() string {
	return strings.Join(b.conds, "\n  AND ")
}

const tourSummarySelect = `SELECT
  tours.title,
  COALESCE(NULLIF(tours.image, ''), 'default_image.jpg') AS image,
  tours.code,
  tours.slug,
  tours.status,
  tours.is_featured,
  tour_details.adult_price,
  tour_details.day_start,
  tour_details.day_return,
  categories.title AS category,
  destinations.title AS destination,
  departures.title AS departure,
  transportations.title AS transportation
FROM tours
LEFT JOIN tour_categories ON tours.id = tour_categories.tour_id
LEFT JOIN categories ON tour_categories.category_id = categories.id
LEFT JOIN destinations ON tours.destination_id = destinations.id
LEFT JOIN transportations ON transportations.id = tours.transportation_id
LEFT JOIN departures ON departures.id = tours.departure_id
LEFT JOIN tour_details ON tour_details.tour_id = tours.id
WHERE
  `

// applyFilters thêm các điều kiện lọc optional, điều kiện vắng mặt không
// ràng buộc gì. destinationIds là closure của điểm đến đã chọn (gốc + con cháu),
// tính sẵn bằng DescendantIDs.
func applyFilters(b *tourQueryBuilder, filters model.TourFilterInput, destinationIds []uint) {
	if filters.IsFeatured != nil {
		b.add("tours.is_featured = ?", *filters.IsFeatured)
	}
	if filters.CategoryId != nil {
		b.add("categories.id = ?", *filters.CategoryId)
	}
	if filters.DepartureId != nil {
		b.add("tours.departure_id = ?", *filters.DepartureId)
	}
	if filters.TransTypeId != nil {
		b.add("tours.transportation_id = ?", *filters.TransTypeId)
	}
	if len(destinationIds) > 0 {
		b.add("tours.destination_id IN ?", destinationIds)
	}
	if filters.FromDate != "" {
		b.add("tour_details.day_start > ?", filters.FromDate)
	}
	if filters.Title != "" {
		b.add("tours.slug LIKE ?", "%"+NormalizeSearchTerm(filters.Title)+"%")
	}
}

func orderClause(filters model.TourFilterInput) string {
	switch filters.SortOrder {
	case "asc":
		return "\nORDER BY tour_details.adult_price ASC, tours.id"
	case "desc":
		return "\nORDER BY tour_details.adult_price DESC, tours.id"
	default:
		// không yêu cầu sort thì vẫn phải ổn định
		return "\nORDER BY tours.id, tour_details.day_start"
	}
}

// catalogConds là các ràng buộc chung cho mọi view phía client: tour active,
// chưa xóa, category còn hiệu lực, mỗi tour đại diện bởi đợt khởi hành tương lai
// sớm nhất (chọn bằng scalar subquery theo từng tour, không dùng MIN gộp cột).
func catalogConds(b *tourQueryBuilder, filters model.TourFilterInput, today string) {
	b.add("tours.deleted = false")
	b.add("categories.deleted = false")
	b.add("categories.status = true")
	if filters.Status != nil {
		b.add("tours.status = ?", *filters.Status)
	} else {
		b.add("tours.status = true")
	}
	b.add("tour_details.day_start >= ?", today)
	b.add(`tour_details.day_start = (
    SELECT MIN(td2.day_start)
    FROM tour_details td2
    WHERE td2.tour_id = tour_details.tour_id
      AND td2.day_start >= ?
  )`, today)
}

// BuildTourQuery compose câu truy vấn duyệt catalog
func BuildTourQuery(filters model.TourFilterInput, destinationIds []uint, now time.Time) TourQuery {
	today := now.Format("2006-01-02")

	b := &tourQueryBuilder{}
	catalogConds(b, filters, today)
	applyFilters(b, filters, destinationIds)

	return TourQuery{
		SQL:  tourSummarySelect + b.where() + orderClause(filters),
		Args: b.args,
	}
}

// BuildFlashSaleToursQuery compose view flash sale: tour còn bán được với đợt
// khởi hành đại diện rơi vào [0, 5] ngày tới
func BuildFlashSaleToursQuery(filters model.TourFilterInput, destinationIds []uint, now time.Time) TourQuery {
	today := now.Format("2006-01-02")
	horizon := now.AddDate(0, 0, 5).Format("2006-01-02")

	b := &tourQueryBuilder{}
	catalogConds(b, filters, today)
	b.add("tour_details.day_start <= ?", horizon)
	applyFilters(b, filters, destinationIds)

	return TourQuery{
		SQL:  tourSummarySelect + b.where() + orderClause(filters),
		Args: b.args,
	}
}

// BuildExpiredToursQuery compose view bảo trì: tour không còn đợt khởi hành
// tương lai nào. Đợt đại diện là đợt gần nhất đã qua.
func BuildExpiredToursQuery(filters model.TourFilterInput, destinationIds []uint, now time.Time) TourQuery {
	today := now.Format("2006-01-02")

	b := &tourQueryBuilder{}
	b.add("tours.deleted = false")
	if filters.Status != nil {
		b.add("tours.status = ?", *filters.Status)
	}
	b.add(`tour_details.day_start = (
    SELECT MAX(td2.day_start)
    FROM tour_details td2
    WHERE td2.tour_id = tour_details.tour_id
  )`)
	b.add(`NOT EXISTS (
    SELECT 1
    FROM tour_details td3
    WHERE td3.tour_id = tours.id
      AND td3.day_start >= ?
  )`, today)
	applyFilters(b, filters, destinationIds)

	return TourQuery{
		SQL:  tourSummarySelect + b.where() + orderClause(filters),
		Args: b.args,
	}
}

// BuildExpiringSoonToursQuery compose view bảo trì: đợt khởi hành tương lai
// sớm nhất rơi vào [0, 7] ngày tới
func BuildExpiringSoonToursQuery(filters model.TourFilterInput, destinationIds []uint, now time.Time) TourQuery {
	today := now.Format("2006-01-02")
	horizon := now.AddDate(0, 0, 7).Format("2006-01-02")

	b := &tourQueryBuilder{}
	b.add("tours.deleted = false")
	if filters.Status != nil {
		b.add("tours.status = ?", *filters.Status)
	}
	b.add("tour_details.day_start >= ?", today)
	b.add("tour_details.day_start <= ?", horizon)
	b.add(`tour_details.day_start = (
    SELECT MIN(td2.day_start)
    FROM tour_details td2
    WHERE td2.tour_id = tour_details.tour_id
      AND td2.day_start >= ?
  )`, today)
	applyFilters(b, filters, destinationIds)

	return TourQuery{
		SQL:  tourSummarySelect + b.where() + orderClause(filters),
		Args: b.args,
	}
}
