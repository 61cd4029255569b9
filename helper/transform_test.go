package helper

import (
	"testing"
	"time"

	"tour_manager/model"
	"tour_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) utils.CustomDate {
	return utils.NewCustomDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestTransformTours(t *testing.T) {
	t.Run("Gom các dòng cùng code thành một tour nhiều đợt khởi hành", func(t *testing.T) {
		rows := []model.TourSummaryRow{
			{Code: "TOUR-AAAA1111", Title: "Đà Nẵng 3N2Đ", AdultPrice: 2000000, DayStart: day(2026, 9, 10), DayReturn: day(2026, 9, 12)},
			{Code: "TOUR-AAAA1111", Title: "Đà Nẵng 3N2Đ", AdultPrice: 2000000, DayStart: day(2026, 9, 20), DayReturn: day(2026, 9, 22)},
			{Code: "TOUR-BBBB2222", Title: "Huế 2N1Đ", AdultPrice: 1500000, DayStart: day(2026, 9, 15), DayReturn: day(2026, 9, 16)},
		}

		tours := TransformTours(rows)

		require.Len(t, tours, 2)
		assert.Equal(t, "TOUR-AAAA1111", tours[0].Code)
		require.Len(t, tours[0].Days, 2)
		assert.Equal(t, "2026-09-10", tours[0].Days[0].DayStart.String())
		assert.Equal(t, "2026-09-20", tours[0].Days[1].DayStart.String())
		assert.Equal(t, "TOUR-BBBB2222", tours[1].Code)
		require.Len(t, tours[1].Days, 1)
	})

	t.Run("Giữ nguyên thứ tự xuất hiện đầu tiên", func(t *testing.T) {
		rows := []model.TourSummaryRow{
			{Code: "TOUR-CCCC3333", DayStart: day(2026, 10, 1), DayReturn: day(2026, 10, 3)},
			{Code: "TOUR-DDDD4444", DayStart: day(2026, 10, 2), DayReturn: day(2026, 10, 4)},
			{Code: "TOUR-CCCC3333", DayStart: day(2026, 10, 5), DayReturn: day(2026, 10, 7)},
			{Code: "TOUR-EEEE5555", DayStart: day(2026, 10, 3), DayReturn: day(2026, 10, 5)},
		}

		tours := TransformTours(rows)

		require.Len(t, tours, 3)
		assert.Equal(t, "TOUR-CCCC3333", tours[0].Code)
		assert.Equal(t, "TOUR-DDDD4444", tours[1].Code)
		assert.Equal(t, "TOUR-EEEE5555", tours[2].Code)
	})

	t.Run("Không có dòng nào thì trả về rỗng", func(t *testing.T) {
		assert.Empty(t, TransformTours(nil))
	})
}
