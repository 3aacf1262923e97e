package log

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  true,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
// 메일 백엔드가 구성되지 않은 개발 모드에서는 발송 내용이 콘솔로 출력되므로 콘솔 로그를 켭니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: DebugLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller: true,
	}
}
