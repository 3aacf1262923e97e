package constants

// 시스템 구동 시 필수 의존성이 누락되었을 때의 패닉 메시지입니다.
const (
	PanicMsgAppConfigRequired         = "AppConfig는 필수입니다"
	PanicMsgNotifierRequired          = "Notifier는 필수입니다"
	PanicMsgBackendSelectorRequired   = "BackendSelector는 필수입니다"
	PanicMsgDirectoryProviderRequired = "DirectoryProvider는 필수입니다"
	PanicMsgAuthGateRequired          = "auth.Gate는 필수입니다"
)
