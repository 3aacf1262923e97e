package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// Error 오류 분류 ("Bad request", "Internal server error" 등)
	Error string `json:"error" example:"Bad request"`

	// Message 상세 오류 메시지
	Message string `json:"message" example:"Subject is required and must be a non-empty string"`
}
