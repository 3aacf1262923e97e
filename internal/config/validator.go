package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역 Validator 인스턴스입니다. (동시 사용 안전)
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 설정 키(json 태그)를 노출한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("duration", validateDuration); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'duration' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

// validate 설정 로드 직후 각 항목의 정합성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
		}
		return describeFieldError(validationErrors[0])
	}

	return nil
}

// describeFieldError 첫 번째 검증 실패 항목을 설정 키 기준의 메시지로 변환합니다.
func describeFieldError(fieldErr validator.FieldError) error {
	// Namespace: "AppConfig.server.listen_port" → "server.listen_port"
	key := fieldErr.Namespace()
	if idx := strings.Index(key, "."); idx != -1 {
		key = key[idx+1:]
	}

	var msg string
	switch fieldErr.Tag() {
	case "min", "max":
		msg = fmt.Sprintf("'%s' 값이 허용 범위를 벗어났습니다: %v (조건: %s=%s)", key, fieldErr.Value(), fieldErr.Tag(), fieldErr.Param())
	case "required", "required_if":
		msg = fmt.Sprintf("'%s' 설정은 필수입니다", key)
	case "file":
		msg = fmt.Sprintf("'%s'에 지정된 파일을 찾을 수 없습니다: '%v'", key, fieldErr.Value())
	case "url":
		msg = fmt.Sprintf("'%s' 값이 올바른 URL 형식이 아닙니다: '%v'", key, fieldErr.Value())
	case "email":
		msg = fmt.Sprintf("'%s' 값이 올바른 이메일 주소 형식이 아닙니다: '%v'", key, fieldErr.Value())
	case "duration":
		msg = fmt.Sprintf("'%s' 값이 올바른 시간 형식이 아닙니다: '%v' (예: 30s, 1m)", key, fieldErr.Value())
	default:
		msg = fmt.Sprintf("'%s' 설정이 올바르지 않습니다 (조건: %s)", key, fieldErr.Tag())
	}

	return apperrors.New(apperrors.InvalidInput, msg)
}
