package models

// Item 表示示範用的商品項目
type Item struct {
	ItemName string `json:"item_name"`
}
