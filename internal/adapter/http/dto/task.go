package dto

type TaskItem struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       string  `json:"status"`
	UserID       uint64  `json:"user_id"`
	CategoryID   *uint64 `json:"category_id,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type TaskResponse struct {
	Message string   `json:"message,omitempty"`
	Task    TaskItem `json:"task"`
}

type TaskListResponse struct {
	Tasks []TaskItem `json:"tasks"`
	Count int        `json:"count"`
}
