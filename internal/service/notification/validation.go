package notification

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

const (
	maxSubjectLength = 200
	maxMessageLength = 10000
)

// 검증 실패 메시지. HTTP 응답 본문에 그대로 노출됩니다.
const (
	msgBodyNotObject       = "Request body must be a JSON object"
	msgSubjectRequired     = "Subject is required and must be a non-empty string"
	msgSubjectTooLong      = "Subject must be 200 characters or less"
	msgMessageRequired     = "Message is required and must be a non-empty string"
	msgMessageTooLong      = "Message must be 10,000 characters or less"
	msgRecipientsNotArray  = "Recipients must be an array"
	msgRecipientsEmpty     = "Recipients array cannot be empty"
	msgRecipientsNotString = "All recipients must be non-empty strings"
)

var (
	validate = validator.New()

	subjectLengthTag = fmt.Sprintf("max=%d", maxSubjectLength)
	messageLengthTag = fmt.Sprintf("max=%d", maxMessageLength)
)

// ValidationResult 요청 본문 검증 결과입니다. Valid가 false이면 Message에 첫 번째 위반 사유가 담깁니다.
type ValidationResult struct {
	Valid   bool
	Message string
}

func invalid(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

// ValidateRequest 알림 요청 본문의 형태와 길이 제한을 검사합니다.
//
// 검사는 본문 → subject → message → recipients 순서로 진행되며, 첫 번째 실패에서 중단합니다.
// 길이는 바이트가 아닌 문자(rune) 수로 계산합니다.
func ValidateRequest(body []byte) ValidationResult {
	if !gjson.ValidBytes(body) {
		return invalid(msgBodyNotObject)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() && !doc.IsArray() {
		return invalid(msgBodyNotObject)
	}

	if msg, ok := checkText(lastField(doc, "subject"), subjectLengthTag, msgSubjectRequired, msgSubjectTooLong); !ok {
		return invalid(msg)
	}
	if msg, ok := checkText(lastField(doc, "message"), messageLengthTag, msgMessageRequired, msgMessageTooLong); !ok {
		return invalid(msg)
	}

	// null도 값이 주어진 것으로 취급한다.
	if recipients := lastField(doc, "recipients"); recipients.Exists() {
		if !recipients.IsArray() {
			return invalid(msgRecipientsNotArray)
		}

		entries := recipients.Array()
		if len(entries) == 0 {
			return invalid(msgRecipientsEmpty)
		}
		for _, entry := range entries {
			if entry.Type != gjson.String || strings.TrimSpace(entry.Str) == "" {
				return invalid(msgRecipientsNotString)
			}
		}
	}

	return ValidationResult{Valid: true}
}

// lastField 객체에서 key에 해당하는 값을 반환합니다. 중복 키가 있으면 encoding/json과 같이 마지막 값을 사용합니다.
func lastField(doc gjson.Result, key string) gjson.Result {
	var field gjson.Result
	if !doc.IsObject() {
		return field
	}

	doc.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			field = v
		}
		return true
	})
	return field
}

func checkText(field gjson.Result, lengthTag, requiredMsg, tooLongMsg string) (string, bool) {
	if field.Type != gjson.String || strings.TrimSpace(field.Str) == "" {
		return requiredMsg, false
	}
	if err := validate.Var(field.Str, lengthTag); err != nil {
		return tooLongMsg, false
	}
	return "", true
}
