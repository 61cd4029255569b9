package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"tour_manager/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTourApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/tours", validate.TourFilter(), GetTours)
	return app
}

func tourSummaryColumns() []string {
	return []string{
		"title", "image", "code", "slug", "status", "is_featured",
		"adult_price", "day_start", "day_return",
		"category", "destination", "departure", "transportation",
	}
}

func TestGetTours(t *testing.T) {
	t.Run("Gom dòng trùng code thành một tour nhiều đợt", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		rows := sqlmock.NewRows(tourSummaryColumns()).
			AddRow("Đà Nẵng 3N2Đ", "da-nang.jpg", "TOUR-AAAA1111", "da-nang-3n2d", true, false,
				2000000, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				"Tour trong nước", "Đà Nẵng", "Hà Nội", "Máy bay").
			AddRow("Đà Nẵng 3N2Đ", "da-nang.jpg", "TOUR-AAAA1111", "da-nang-3n2d", true, false,
				2000000, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC),
				"Tour trong nước", "Đà Nẵng", "Hà Nội", "Máy bay").
			AddRow("Huế 2N1Đ", "hue.jpg", "TOUR-BBBB2222", "hue-2n1d", true, false,
				1500000, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
				"Tour trong nước", "Huế", "Hà Nội", "Ô tô")

		mock.ExpectQuery(`FROM tours`).WillReturnRows(rows)

		app := newTourApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tours", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload struct {
			Status string `json:"status"`
			Data   []struct {
				Code string `json:"code"`
				Days []struct {
					DayStart  string `json:"dayStart"`
					DayReturn string `json:"dayReturn"`
				} `json:"days"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &payload))

		require.Len(t, payload.Data, 2)
		assert.Equal(t, "TOUR-AAAA1111", payload.Data[0].Code)
		require.Len(t, payload.Data[0].Days, 2)
		assert.Equal(t, "2026-09-10", payload.Data[0].Days[0].DayStart)
		assert.Equal(t, "2026-09-20", payload.Data[0].Days[1].DayStart)
		assert.Equal(t, "TOUR-BBBB2222", payload.Data[1].Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Không có kết quả trả về 404 với thông điệp rõ ràng", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`FROM tours`).
			WillReturnRows(sqlmock.NewRows(tourSummaryColumns()))

		app := newTourApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tours?title=khong-ton-tai", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Không tìm thấy tour nào.")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lỗi truy vấn trả về 500, khác với kết quả rỗng", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`FROM tours`).
			WillReturnError(errors.New("connection refused"))

		app := newTourApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tours", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lọc theo điểm đến expand closure trước khi truy vấn", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT (.+) FROM "destinations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "parent_id", "deleted"}).
				AddRow(1, "Miền Trung", nil, false).
				AddRow(2, "Đà Nẵng", 1, false))

		rows := sqlmock.NewRows(tourSummaryColumns()).
			AddRow("Đà Nẵng 3N2Đ", "da-nang.jpg", "TOUR-AAAA1111", "da-nang-3n2d", true, false,
				2000000, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				"Tour trong nước", "Đà Nẵng", "Hà Nội", "Máy bay")
		mock.ExpectQuery(`tours.destination_id IN`).WillReturnRows(rows)

		app := newTourApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tours?destinationId=1", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Giới hạn trang áp lên danh sách đã gom", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		rows := sqlmock.NewRows(tourSummaryColumns())
		for _, code := range []string{"TOUR-AAAA1111", "TOUR-BBBB2222", "TOUR-CCCC3333"} {
			rows.AddRow("Tour "+code, "default_image.jpg", code, "tour-"+code, true, false,
				1000000, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				"Tour trong nước", "Đà Nẵng", "Hà Nội", "Máy bay")
		}
		mock.ExpectQuery(`FROM tours`).WillReturnRows(rows)

		app := newTourApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tours?limit=2&page=2", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload struct {
			Data []struct {
				Code string `json:"code"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &payload))
		require.Len(t, payload.Data, 1)
		assert.Equal(t, "TOUR-CCCC3333", payload.Data[0].Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
