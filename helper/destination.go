package helper

import (
	"tour_manager/model"
)

// DescendantIDs trả về id của node gốc và mọi node con cháu của nó trong cây
// điểm đến (duyệt BFS trên map cha -> con, không dùng SQL đệ quy).
func DescendantIDs(destinations []model.Destination, rootId uint) []uint {
	children := make(map[uint][]uint, len(destinations))
	exists := make(map[uint]bool, len(destinations))
	for _, d := range destinations {
		exists[d.ID] = true
		if d.ParentId != nil {
			children[*d.ParentId] = append(children[*d.ParentId], d.ID)
		}
	}

	if !exists[rootId] {
		return nil
	}

	result := []uint{}
	queue := []uint{rootId}
	seen := map[uint]bool{rootId: true}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result = append(result, id)
		for _, child := range children[id] {
			if !seen[child] {
				seen[child] = true
				queue = append(queue, child)
			}
		}
	}

	return result
}

// BuildDestinationTree dựng cây lồng nhau từ danh sách phẳng cho client
func BuildDestinationTree(destinations []model.Destination) []*model.DestinationNode {
	nodes := make(map[uint]*model.DestinationNode, len(destinations))
	for _, d := range destinations {
		nodes[d.ID] = &model.DestinationNode{
			ID:       d.ID,
			Title:    d.Title,
			Slug:     d.Slug,
			Image:    d.Image,
			ParentId: d.ParentId,
		}
	}

	tree := []*model.DestinationNode{}
	for _, d := range destinations {
		node := nodes[d.ID]
		if d.ParentId == nil {
			tree = append(tree, node)
			continue
		}
		parent, ok := nodes[*d.ParentId]
		if !ok {
			// cha đã bị soft delete thì coi như node gốc
			tree = append(tree, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return tree
}
