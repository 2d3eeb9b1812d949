package models

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    *int      `json:"category_id,omitempty"`
	ImageURL      string    `json:"image_url"`
	Price         int64     `json:"price"`
	OriginalPrice *int64    `json:"original_price,omitempty"`
	Stock         int       `json:"stock"`
	IsFlashSale   bool      `json:"is_flash_sale"`
	IsFavorite    bool      `json:"is_favorite"`
	IsBuy1Get1    bool      `json:"is_buy1get1"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	ProductTypeFlashSale = "flash_sale"
	ProductTypeBuy1Get1  = "buy1get1"

	// CategoryFavorite selects favorite products instead of a category name.
	CategoryFavorite = "favorite"
)

// ProductFilter is the query of GET /products/filter. Zero values mean "no
// constraint". SortName wins over SortPrice; without either the newest
// products come first.
type ProductFilter struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Type      string `form:"sort" binding:"omitempty,oneof=flash_sale buy1get1"`
	SortName  string `form:"sort_name" binding:"omitempty,oneof=asc desc"`
	SortPrice string `form:"sort_price" binding:"omitempty,oneof=asc desc"`
	MinPrice  int64  `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  int64  `form:"max_price" binding:"omitempty,min=0"`
}
