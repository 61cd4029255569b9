package helper

import (
	"tour_manager/model"
)

// CalculateBookingAmount tính tổng tiền đơn đặt tour = Σ(giá × số lượng)
// trên mọi hạng khách. Hàm thuần, không I/O; các cặp vắng mặt đã là (0, 0).
func CalculateBookingAmount(input model.BookTourInput) int {
	amount := input.AdultPrice * input.AdultQuantity
	amount += input.ChildrenPrice * input.ChildrenQuantity
	amount += input.ChildPrice * input.ChildQuantity
	amount += input.BabyPrice * input.BabyQuantity
	amount += input.SingleRoomSupplementPrice * input.SingleRoomSupplementQuantity
	return amount
}

// CountBookingSeats đếm số chỗ chiếm dụng của đơn (phụ thu phòng đơn không tính chỗ)
func CountBookingSeats(input model.BookTourInput) int {
	return input.AdultQuantity + input.ChildrenQuantity + input.ChildQuantity + input.BabyQuantity
}
