package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"tour_manager/config"
	"tour_manager/model"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

const tourSearchTTL = 5 * time.Minute

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
}

// TourSearchKey sinh key cache từ bộ lọc đã chuẩn hóa, cùng bộ lọc thì cùng key
func TourSearchKey(filters model.TourFilterInput) string {
	raw, _ := json.Marshal(filters)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("tours:search:%s", hex.EncodeToString(sum[:8]))
}

// GetTourSearch đọc kết quả tìm tour từ cache, miss trả về (nil, nil)
func GetTourSearch(ctx context.Context, key string) ([]model.TourSummary, error) {
	if rdb == nil {
		return nil, nil
	}
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tours []model.TourSummary
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func SetTourSearch(ctx context.Context, key string, tours []model.TourSummary) error {
	if rdb == nil {
		return nil
	}
	payload, err := json.Marshal(tours)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, payload, tourSearchTTL).Err()
}

// InvalidateTourSearch xóa toàn bộ cache tìm tour sau khi admin sửa dữ liệu
func InvalidateTourSearch(ctx context.Context) {
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, "tours:search:*", 100).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
}
