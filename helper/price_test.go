package helper

import (
	"testing"

	"tour_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBookingAmount(t *testing.T) {
	t.Run("Tổng tiền gồm đủ các hạng khách", func(t *testing.T) {
		input := model.BookTourInput{
			AdultPrice:                   2000000,
			AdultQuantity:                2,
			ChildrenPrice:                1500000,
			ChildrenQuantity:             1,
			ChildPrice:                   1000000,
			ChildQuantity:                1,
			BabyPrice:                    200000,
			BabyQuantity:                 1,
			SingleRoomSupplementPrice:    500000,
			SingleRoomSupplementQuantity: 1,
		}

		assert.Equal(t, 4000000+1500000+1000000+200000+500000, CalculateBookingAmount(input))
	})

	t.Run("2 người lớn x 1.000.000", func(t *testing.T) {
		input := model.BookTourInput{
			AdultPrice:    1000000,
			AdultQuantity: 2,
		}

		assert.Equal(t, 2000000, CalculateBookingAmount(input))
	})

	t.Run("Hạng khách vắng mặt coi như 0", func(t *testing.T) {
		input := model.BookTourInput{
			AdultPrice:    990000,
			AdultQuantity: 1,
		}

		assert.Equal(t, 990000, CalculateBookingAmount(input))
	})

	t.Run("Số lượng 0 gửi tường minh không đóng góp vào tổng", func(t *testing.T) {
		input := model.BookTourInput{
			AdultPrice:       1200000,
			AdultQuantity:    1,
			ChildrenPrice:    900000,
			ChildrenQuantity: 0,
		}

		assert.Equal(t, 1200000, CalculateBookingAmount(input))
	})

	t.Run("Gọi nhiều lần cho cùng input ra cùng kết quả", func(t *testing.T) {
		input := model.BookTourInput{
			AdultPrice:       1000000,
			AdultQuantity:    2,
			ChildrenPrice:    700000,
			ChildrenQuantity: 3,
		}

		first := CalculateBookingAmount(input)
		assert.Equal(t, first, CalculateBookingAmount(input))
		assert.Equal(t, 4100000, first)
	})
}

func TestCountBookingSeats(t *testing.T) {
	t.Run("Phụ thu phòng đơn không chiếm chỗ", func(t *testing.T) {
		input := model.BookTourInput{
			AdultQuantity:                2,
			ChildrenQuantity:             1,
			ChildQuantity:                1,
			BabyQuantity:                 1,
			SingleRoomSupplementQuantity: 2,
		}

		assert.Equal(t, 5, CountBookingSeats(input))
	})

	t.Run("Chỉ người lớn", func(t *testing.T) {
		input := model.BookTourInput{AdultQuantity: 3}

		assert.Equal(t, 3, CountBookingSeats(input))
	})
}
