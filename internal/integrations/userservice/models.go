package userservice

// RoleResponse модель роли пользователя из UserService
type RoleResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // student | teacher
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
