package constants

const (
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu gửi lên không phải là số"
	NOT_ADMIN                = "Bạn không có quyền truy cập"

	MISSING_REQUIRED_FIELDS = "Vui lòng gửi đủ dữ liệu"
	TOUR_NOT_FOUND          = "Không tìm thấy tour nào."
	TOUR_DETAIL_NOT_FOUND   = "Tour detail không tồn tại!"
	INVALID_DATE_RANGE      = "Ngày bắt đầu không thể lớn hơn ngày kết thúc!"
	OUT_OF_STOCK            = "Số chỗ còn lại không đủ cho yêu cầu đặt tour"
	BOOKING_SUCCESS         = "Đặt hàng thành công!"
	BOOKING_FAILED          = "Có lỗi xảy ra, vui lòng thử lại sau."
	FETCH_DATA_FAILED       = "Lỗi lấy dữ liệu"
)
