package system

// DependencyStatus 구성 요소별 상태
type DependencyStatus struct {
	// 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 상태 상세 정보 (선택된 메일 백엔드, 연락처 디렉토리 출처 등)
	Message string `json:"message,omitempty" example:"jmap"`
}
