package helper

import (
	"testing"

	"tour_manager/model"
	"tour_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destination(id uint, title string, parentId *uint) model.Destination {
	return model.Destination{
		DTO:      model.DTO{ID: id},
		Title:    title,
		ParentId: parentId,
	}
}

func TestDescendantIDs(t *testing.T) {
	// Miền Trung (1) -> Đà Nẵng (2) -> Bà Nà (3), Huế (4) riêng một nhánh
	destinations := []model.Destination{
		destination(1, "Miền Trung", nil),
		destination(2, "Đà Nẵng", utils.Ptr(uint(1))),
		destination(3, "Bà Nà", utils.Ptr(uint(2))),
		destination(4, "Huế", utils.Ptr(uint(1))),
	}

	t.Run("Closure từ gốc gồm gốc và toàn bộ con cháu", func(t *testing.T) {
		ids := DescendantIDs(destinations, 1)
		assert.ElementsMatch(t, []uint{1, 2, 3, 4}, ids)
	})

	t.Run("Closure từ node giữa chỉ gồm nhánh của nó", func(t *testing.T) {
		ids := DescendantIDs(destinations, 2)
		assert.ElementsMatch(t, []uint{2, 3}, ids)
	})

	t.Run("Node lá chỉ gồm chính nó", func(t *testing.T) {
		ids := DescendantIDs(destinations, 3)
		assert.Equal(t, []uint{3}, ids)
	})

	t.Run("Node không tồn tại trả về rỗng", func(t *testing.T) {
		assert.Empty(t, DescendantIDs(destinations, 99))
	})
}

func TestBuildDestinationTree(t *testing.T) {
	destinations := []model.Destination{
		destination(1, "Miền Bắc", nil),
		destination(2, "Miền Trung", nil),
		destination(3, "Đà Nẵng", utils.Ptr(uint(2))),
		destination(4, "Huế", utils.Ptr(uint(2))),
		destination(5, "Bà Nà", utils.Ptr(uint(3))),
	}

	tree := BuildDestinationTree(destinations)

	require.Len(t, tree, 2)
	assert.Equal(t, "Miền Bắc", tree[0].Title)
	assert.Empty(t, tree[0].Children)

	mienTrung := tree[1]
	require.Len(t, mienTrung.Children, 2)
	assert.Equal(t, "Đà Nẵng", mienTrung.Children[0].Title)
	require.Len(t, mienTrung.Children[0].Children, 1)
	assert.Equal(t, "Bà Nà", mienTrung.Children[0].Children[0].Title)

	t.Run("Node mồ côi được đưa lên gốc", func(t *testing.T) {
		orphaned := append(destinations, destination(6, "Hội An", utils.Ptr(uint(42))))
		tree := BuildDestinationTree(orphaned)

		titles := []string{}
		for _, node := range tree {
			titles = append(titles, node.Title)
		}
		assert.Contains(t, titles, "Hội An")
	})
}
