package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 인증 게이트 활성화 여부
	AuthEnabled bool `json:"auth_enabled" example:"true"`
	// 구성 요소별 상태 (키: email_backend, contact_directory)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
