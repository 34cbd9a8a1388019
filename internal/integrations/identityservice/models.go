package identityservice

// Guest профиль гостя из IdentityService
// Ядро доверяет классификации как есть: аутентификация и назначение
// классификаций — забота IdentityService.
type Guest struct {
	ID             int64  `json:"id"`
	Classification string `json:"classification"` // standard | priority | organizational | ...
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
