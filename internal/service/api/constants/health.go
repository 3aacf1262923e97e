package constants

// 헬스체크 상태
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// 헬스체크 의존성 ID
const (
	DependencyEmailBackend     = "email_backend"
	DependencyContactDirectory = "contact_directory"
)

// 의존성 상태 메시지
const (
	MsgDepNoContacts = "no contacts configured"
)
