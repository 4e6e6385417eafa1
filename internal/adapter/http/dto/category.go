package dto

type CategoryItem struct {
	ID           uint64 `json:"id"`
	CategoryName string `json:"category_name"`
	UserID       uint64 `json:"user_id"`
	CreatedAt    string `json:"created_at"`
}

type CategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type CategoryResponse struct {
	Message  string       `json:"message,omitempty"`
	Category CategoryItem `json:"category"`
}

type CategoryListResponse struct {
	Categories []CategoryItem `json:"categories"`
	Count      int            `json:"count"`
}
