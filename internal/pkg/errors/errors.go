// Package errors 릴레이 전역에서 사용하는 타입 기반 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, HTTP 계층은 이 분류에 따라 상태 코드를 결정합니다.
//
//	InvalidInput    → 400 Bad request (요청 본문 검증 실패)
//	Unauthorized    → 401 (인증 게이트 거부)
//	ExecutionFailed → 수신자별 발송 실패 (응답 본문 errors 항목으로 기록)
//	그 외           → 500 Internal server error
//
// 에러 생성과 래핑:
//
//	err := errors.New(errors.InvalidInput, "Subject is required and must be a non-empty string")
//	err = errors.Wrap(cause, errors.ExecutionFailed, "Fastmail session error: 503")
//
// 분류 검사:
//
//	if errors.Is(err, errors.InvalidInput) { ... }
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류 정보와 원인 체인, 생성 위치의 스택을 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 원인 에러를 제외한 에러 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러 생성 시점의 스택 트레이스를 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v 사용 시 에러 체인과 스택 트레이스를 함께 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			// 스택은 체인의 끝(Root)이나 외부 에러와의 경계에서만 출력한다.
			var target *AppError
			if (e.cause == nil || !errors.As(e.cause, &target)) && len(e.stack) > 0 {
				fmt.Fprint(s, "\nStack trace:")
				for _, frame := range e.stack {
					funcName := frame.Function
					if idx := strings.LastIndex(funcName, "/"); idx != -1 {
						funcName = funcName[idx+1:]
					}
					fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if formatter, ok := e.cause.(fmt.Formatter); ok {
					formatter.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf 포맷 문자열을 사용하여 기존 에러를 감쌉니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is 에러 체인에 특정 ErrorType이 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As 표준 errors.As를 그대로 위임합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
// 체인에 AppError가 없으면 Unknown을 반환합니다.
//
//	err := Wrap(New(InvalidInput, "bad body"), Internal, "handle failed")
//	UnderlyingType(err) // InvalidInput
func UnderlyingType(err error) ErrorType {
	found := Unknown

	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			found = appErr.errType
		}
		err = errors.Unwrap(err)
	}

	return found
}

// MessageOf AppError이면 원인을 제외한 메시지를, 그 외에는 Error() 결과를 반환합니다.
// 응답 본문에 분류 접두어([InvalidInput] 등)가 노출되지 않도록 할 때 사용합니다.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.message
	}
	return err.Error()
}

// Describe 분류 접두어 없이 에러 체인의 메시지를 ": "로 이어 붙여 반환합니다.
//
//	Describe(Wrap(io.EOF, ExecutionFailed, "Fastmail session error")) // "Fastmail session error: EOF"
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.cause == nil {
		return appErr.message
	}
	return appErr.message + ": " + Describe(appErr.cause)
}
