package helper

import (
	"strings"

	"github.com/google/uuid"
)

// Mã công khai = prefix + 8 ký tự đầu của uuid, uniqueness do unique index
// của DB đảm bảo.

func GenerateOrderCode() string {
	return "ORDER-" + strings.ToUpper(uuid.New().String()[:8])
}

func GenerateTransactionCode() string {
	return "TRANS-" + strings.ToUpper(uuid.New().String()[:8])
}

func GenerateTourCode() string {
	return "TOUR-" + strings.ToUpper(uuid.New().String()[:8])
}
