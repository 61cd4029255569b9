package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodes(t *testing.T) {
	cases := []struct {
		name     string
		generate func() string
		prefix   string
	}{
		{"Order", GenerateOrderCode, "ORDER-"},
		{"Transaction", GenerateTransactionCode, "TRANS-"},
		{"Tour", GenerateTourCode, "TOUR-"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := tc.generate()

			assert.True(t, strings.HasPrefix(code, tc.prefix))
			suffix := strings.TrimPrefix(code, tc.prefix)
			assert.Len(t, suffix, 8)
			assert.Equal(t, strings.ToUpper(suffix), suffix)

			// hai lần gọi liên tiếp không được trùng nhau
			assert.NotEqual(t, code, tc.generate())
		})
	}
}
