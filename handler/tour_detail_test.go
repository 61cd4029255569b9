package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"tour_manager/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTourDetailApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/admin/tour-details", validate.CreateTourDetail(), CreateTourDetail)
	app.Put("/api/v1/admin/tour-details", validate.EditTourDetail(), EditTourDetail)
	return app
}

func tourDetailBody(t *testing.T, dayStart, dayReturn string) []byte {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"tourId":     10,
		"adultPrice": 2000000,
		"stock":      20,
		"dayStart":   dayStart,
		"dayReturn":  dayReturn,
	})
	require.NoError(t, err)
	return raw
}

func TestCreateTourDetail(t *testing.T) {
	t.Run("Ngày về trước ngày đi bị chặn trước khi ghi DB", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		app := newTourDetailApp()
		req := httptest.NewRequest("POST", "/api/v1/admin/tour-details",
			bytes.NewReader(tourDetailBody(t, "2026-10-05", "2026-10-01")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Ngày bắt đầu không thể lớn hơn ngày kết thúc!")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Đi về cùng ngày là hợp lệ", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT (.+) FROM "tours"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "deleted"}).AddRow(10, "Đà Nẵng 3N2Đ", false))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "tour_details"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectCommit()

		app := newTourDetailApp()
		req := httptest.NewRequest("POST", "/api/v1/admin/tour-details",
			bytes.NewReader(tourDetailBody(t, "2026-10-01", "2026-10-01")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Tour không tồn tại thì từ chối", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT (.+) FROM "tours"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		app := newTourDetailApp()
		req := httptest.NewRequest("POST", "/api/v1/admin/tour-details",
			bytes.NewReader(tourDetailBody(t, "2026-10-01", "2026-10-03")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEditTourDetail(t *testing.T) {
	t.Run("Chỉ sửa một ngày vẫn đối chiếu với ngày đang lưu", func(t *testing.T) {
		mock, sqlDB := setupMockDB(t)
		defer sqlDB.Close()

		// bản ghi hiện tại đi 2026-10-01, về 2026-10-03
		mock.ExpectQuery(`SELECT (.+) FROM "tour_details"`).
			WillReturnRows(tourDetailRows(10))

		raw, err := json.Marshal(map[string]any{
			"tourDetailId": 1,
			"dayStart":     "2026-10-10",
		})
		require.NoError(t, err)

		app := newTourDetailApp()
		req := httptest.NewRequest("PUT", "/api/v1/admin/tour-details", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
