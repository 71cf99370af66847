package repository

import (
	"math"

	"intro_web/internal/models"
)

// ItemRepository 提供唯讀的商品列表
type ItemRepository interface {
	// Slice 回傳 [skip, skip+limit) 區間內的商品，超出範圍只會得到較短或空的結果
	Slice(skip, limit int) []models.Item
}

type itemRepository struct {
	items []models.Item
}

// DefaultItems 是示範服務啟動時載入的固定商品
func DefaultItems() []models.Item {
	return []models.Item{
		{ItemName: "Foo"},
		{ItemName: "Bar"},
		{ItemName: "Baz"},
	}
}

// NewItemRepository 以給定的商品建立 repository，內部會複製一份避免外部修改
func NewItemRepository(items []models.Item) ItemRepository {
	frozen := make([]models.Item, len(items))
	copy(frozen, items)
	return &itemRepository{items: frozen}
}

func (r *itemRepository) Slice(skip, limit int) []models.Item {
	n := len(r.items)
	start := clampIndex(skip, n)

	var end int
	switch {
	case limit > 0 && skip > math.MaxInt-limit:
		end = n
	case limit < 0 && skip < math.MinInt-limit:
		end = 0
	default:
		end = clampIndex(skip+limit, n)
	}

	out := make([]models.Item, 0, max(end-start, 0))
	if start < end {
		out = append(out, r.items[start:end]...)
	}
	return out
}

// clampIndex 將索引轉成 [0, n] 之間，負數從尾端往回算
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
