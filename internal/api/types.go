package api

type CreateTaskRequest struct {
	UserID int64  `json:"user_id"`
	Task   string `json:"task"`
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Task        string `json:"task"`
	IsCompleted bool   `json:"is_completed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
