package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// wellKnownEnv 배포 환경에서 사용하는 고정 이름의 환경 변수와 설정 키의 매핑입니다.
var wellKnownEnv = map[string]string{
	"DEBUG": "debug",
	"PORT":  "server.listen_port",

	"AUTH_ENABLED": "auth.enabled",
	"AUTH_TOKEN":   "auth.token",

	"CONTACTS_CONFIG":  "contacts.config_json",
	"CONTACT_PERSONAL": "contacts.personal",
	"CONTACT_WORK":     "contacts.work",
	"CONTACT_URGENT":   "contacts.urgent",

	"FROM_EMAIL":                "email.from_email",
	"FASTMAIL_API_TOKEN":        "email.fastmail.api_token",
	"FASTMAIL_USERNAME":         "email.fastmail.username",
	"FASTMAIL_SESSION_URL":      "email.fastmail.session_url",
	"EMAIL_SERVICE_URL":         "email.service.url",
	"EMAIL_API_KEY":             "email.service.api_key",
	"SMTP_HOST":                 "email.smtp.host",
	"SMTP_USER":                 "email.smtp.user",
	"SMTP_PASS":                 "email.smtp.pass",
	"GMAIL_ACCESS_TOKEN":        "email.gmail.access_token",
	"GMAIL_API_URL":             "email.gmail.api_url",
	"GMAIL_SIMULATE_ON_FAILURE": "email.gmail.simulate_on_failure",
}

// LoadOptions 설정 로드 옵션입니다.
type LoadOptions struct {
	// Filename 설정 파일 경로. 비어 있으면 DefaultFilename을 탐색하며, 없으면 건너뜁니다.
	Filename string

	// Overrides 명령행 플래그 등 최우선으로 적용할 값 (키: "server.listen_port" 형식)
	Overrides map[string]any
}

// Load 기본 옵션으로 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions 다음 순서(뒤가 우선)로 설정을 병합한 뒤 검증합니다.
//
//  1. 구조체 기본값
//  2. JSON 설정 파일
//  3. 고정 이름 환경 변수 (CONTACTS_CONFIG, FASTMAIL_USERNAME 등)
//  4. NOTIFY_RELAY_ 접두사 환경 변수
//  5. Overrides
func LoadWithOptions(opts LoadOptions) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	filename, explicit := opts.Filename, opts.Filename != ""
	if !explicit {
		filename = DefaultFilename
	}
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// 기본 설정 파일은 선택 사항이다.
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return wellKnownEnv[s]
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, "명령행 설정 적용에 실패했습니다")
		}
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       boolToStringHook,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	unmarshalConf.DecoderConfig.Result = &appConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// boolToStringHook JSON 불리언을 문자열 필드에 "true"/"false"로 디코딩합니다.
// WeaklyTypedInput만 적용하면 true가 "1"로 바뀌어 auth.enabled가 비활성으로 해석된다.
func boolToStringHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(data.(bool)), nil
	}
	return data, nil
}
